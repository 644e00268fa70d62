package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jasperwreed/story-memory/internal/daterange"
	"github.com/jasperwreed/story-memory/internal/models"
	"github.com/jasperwreed/story-memory/internal/ordinal"
)

const (
	emptyDayText  = "이 날은 대화 목록이 없어요!"
	emptyWeekText = "이 주에는 대화 데이터가 없어요!"
	loadingText   = "불러오는 중..."

	topWordCount = 10
	maxBarWidth  = 40
)

var (
	avatars  = []string{"🐰", "🐻", "🐥"}
	weekdays = []string{"일", "월", "화", "수", "목", "금", "토"}
)

func avatar(n int) string {
	if n < 1 || n > len(avatars) {
		return avatars[0]
	}
	return avatars[n-1]
}

// renderStories lays the day's story cards out two per row.
func renderStories(view models.DayView, width int) string {
	cardWidth := width/2 - 4
	if cardWidth < 20 {
		cardWidth = 20
	}

	cards := make([]string, 0, len(view.Stories))
	for _, s := range view.Stories {
		body := lipgloss.JoinVertical(lipgloss.Left,
			avatar(s.Avatar)+" "+cardTitleStyle.Render(s.DisplayTitle),
			timeStyle.Render(s.FormattedTime),
		)
		cards = append(cards, lipgloss.JoinVertical(lipgloss.Left,
			captionStyle.Render(s.Caption()),
			cardStyle.Width(cardWidth).Render(body),
		))
	}

	rows := make([]string, 0, (len(cards)+1)/2)
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], "  ", cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return strings.Join(rows, "\n")
}

// renderSlide draws the slide at index of the weekly carousel. Slides follow
// the order of tabsync.WeeklyTabs.
func RenderSlide(index int, stats *models.WeeklyStats, window models.DateWindow, width int) string {
	if stats == nil {
		return emptyStyle.Render(emptyWeekText)
	}
	switch index {
	case 0:
		return emotionSlide(stats)
	case 1:
		return vocabularySlide(stats)
	case 2:
		return interestSlide(stats)
	case 3:
		return frequencySlide(stats, window, width)
	default:
		return ""
	}
}

func emotionSlide(stats *models.WeeklyStats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(stats.EmotionSummary))
	b.WriteString("\n\n")
	for _, d := range stats.DayAnalytics {
		fmt.Fprintf(&b, "%s  긍정 %d  부정 %d  중립 %d\n", dayLabel(d.Day), d.Positive, d.Negative, d.Neutral)
	}
	return b.String()
}

func vocabularySlide(stats *models.WeeklyStats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(stats.VocabularySummary))
	b.WriteString("\n\n")
	for _, d := range stats.DayAnalytics {
		fmt.Fprintf(&b, "%s  %.1f점\n", dayLabel(d.Day), d.VocabularyScore)
	}
	return b.String()
}

func interestSlide(stats *models.WeeklyStats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(stats.WordCloudSummary))
	b.WriteString("\n\n")
	for i, w := range stats.TopWords(topWordCount) {
		fmt.Fprintf(&b, "%s  %s ×%d\n", ordinal.Label(i+1), w.Word, w.Count)
	}
	return b.String()
}

// frequencySlide shows one bar per day of the window, including days without
// analytics.
func frequencySlide(stats *models.WeeklyStats, window models.DateWindow, width int) string {
	counts := make(map[string]int, len(stats.DayAnalytics))
	peak := 0
	for _, d := range stats.DayAnalytics {
		counts[d.Day] += d.ConversationCount
		if counts[d.Day] > peak {
			peak = counts[d.Day]
		}
	}

	barWidth := width - 20
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 1 {
		barWidth = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf("이번 주 대화 %d회", stats.TotalConversations())))
	for i := 0; i < window.Days(); i++ {
		day := window.Start.AddDate(0, 0, i)
		n := counts[daterange.Param(day)]
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("█", n*barWidth/peak)
		}
		fmt.Fprintf(&b, "%s %s %d\n", weekdayLabel(day), barStyle.Render(bar), n)
	}
	return b.String()
}

// dayLabel renders a YYYY-MM-DD day as "1/5 (금)", or as-is if it does not
// parse.
func dayLabel(day string) string {
	t, err := daterange.Parse(day)
	if err != nil {
		return day
	}
	return weekdayLabel(t)
}

func weekdayLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d (%s)", int(t.Month()), t.Day(), weekdays[t.Weekday()])
}
