package models

import (
	"time"
)

// ConversationRecord is one recorded conversation as the backend returns it.
// CreatedAt is the [year, month, day, hour, minute, second] tuple.
type ConversationRecord struct {
	UserSeq         int64  `json:"userSeq,omitempty" yaml:"userSeq,omitempty"`
	ConversationSeq int64  `json:"conversationSeq" yaml:"conversationSeq"`
	Title           string `json:"title" yaml:"title"`
	CreatedAt       []int  `json:"createdAt" yaml:"createdAt"`
}

// ConversationList is the payload of the by-date conversation endpoint.
type ConversationList struct {
	ConversationList []ConversationRecord `json:"conversationList"`
}

// DisplayConversation is a record prepared for a story card.
type DisplayConversation struct {
	ConversationRecord
	Order         string `json:"order"`
	FormattedTime string `json:"formattedTime"`
	DisplayTitle  string `json:"displayTitle"`
	Avatar        int    `json:"avatar"`
	Link          string `json:"link"`
}

// Caption is the label shown above a story card.
func (d DisplayConversation) Caption() string {
	return d.Order + " 이야기"
}

// DayView is what the day screen renders. Empty is set when there is nothing
// to show, whether the day had no records or nothing was fetched.
type DayView struct {
	Date    string                `json:"date"`
	Title   string                `json:"title"`
	Stories []DisplayConversation `json:"stories"`
	Empty   bool                  `json:"empty"`
}

// DateWindow is the inclusive span a view covers. For the day view
// Start and End both equal Anchor.
type DateWindow struct {
	Anchor time.Time `json:"anchor"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// Days returns the number of calendar days in the window, inclusive.
func (w DateWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}
