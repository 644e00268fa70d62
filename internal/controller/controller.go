// Package controller drives the day and week views: it resolves the route
// date, issues fetches tagged with the identity that triggered them and
// turns results into view state. Failures never reach the renderer; they are
// logged and the view falls back to an empty state.
//
// Controllers are plain state machines meant to be driven from a single
// goroutine such as a bubbletea Update loop. Fetches themselves may run
// anywhere; their results come back through Apply.
package controller

import (
	"context"
	"errors"

	"github.com/jasperwreed/story-memory/internal/models"
)

// ConversationFetcher loads the conversations recorded on one day.
type ConversationFetcher interface {
	FetchConversationsByDate(ctx context.Context, userSeq int64, day string) (*models.ConversationList, error)
}

// WeeklyStatsFetcher loads the statistics of a window. A nil payload with a
// nil error means there are no statistics for the window.
type WeeklyStatsFetcher interface {
	FetchWeeklyStats(ctx context.Context, userSeq int64, startDay, endDay string) (*models.WeeklyStats, error)
}

// ErrNoFetcher is reported when a request is run without a data source.
var ErrNoFetcher = errors.New("no fetcher configured")

// State is what a view is showing.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateNoData
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateNoData:
		return "no-data"
	default:
		return "unknown"
	}
}

// Identity is what a fetch is for.
type Identity struct {
	UserSeq int64
	Date    string
}

func (i Identity) valid() bool {
	return i.UserSeq > 0 && i.Date != ""
}
