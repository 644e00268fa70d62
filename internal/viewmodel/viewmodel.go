// Package viewmodel turns fetched conversation records into story cards.
package viewmodel

import (
	"fmt"
	"strings"

	"github.com/jasperwreed/story-memory/internal/models"
	"github.com/jasperwreed/story-memory/internal/ordinal"
	"github.com/jasperwreed/story-memory/internal/timefmt"
)

const (
	quote = `"`

	// AvatarCount is the number of animal pictures cards rotate through.
	AvatarCount = 3
)

// Build labels records by their position in the list. Input order is kept.
func Build(records []models.ConversationRecord) models.DayView {
	if len(records) == 0 {
		return models.DayView{Empty: true}
	}

	stories := make([]models.DisplayConversation, 0, len(records))
	for i, record := range records {
		stories = append(stories, models.DisplayConversation{
			ConversationRecord: record,
			Order:              ordinal.Label(i + 1),
			FormattedTime:      timefmt.Format(record.CreatedAt),
			DisplayTitle:       DisplayTitle(record.Title),
			Avatar:             Avatar(record.ConversationSeq),
		})
	}

	return models.DayView{Stories: stories}
}

// BuildForDate is Build plus the per-date heading and card links.
func BuildForDate(date, title string, records []models.ConversationRecord) models.DayView {
	view := Build(records)
	view.Date = date
	view.Title = title
	for i := range view.Stories {
		view.Stories[i].Link = Link(date, view.Stories[i].ConversationSeq)
	}
	return view
}

// DisplayTitle trims one leading and one trailing double quote. The two
// sides are trimmed independently, so `"hello` becomes `hello`.
func DisplayTitle(title string) string {
	return strings.TrimSuffix(strings.TrimPrefix(title, quote), quote)
}

// Avatar picks the 1-based animal picture for a conversation.
func Avatar(seq int64) int {
	idx := int(seq % AvatarCount)
	if idx < 0 {
		idx += AvatarCount
	}
	return idx + 1
}

// Link is the route of the conversation detail screen.
func Link(date string, seq int64) string {
	return fmt.Sprintf("/talk/%s/%d", date, seq)
}
