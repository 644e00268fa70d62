// Package daterange turns route date parameters into the windows the day and
// week views display and fetch.
package daterange

import (
	"errors"
	"fmt"
	"time"

	"github.com/jasperwreed/story-memory/internal/models"
)

const (
	// Layout is the only accepted anchor format, also used for fetch parameters.
	Layout = "2006-01-02"

	// WindowDays is the length of the weekly window, inclusive.
	WindowDays = 7
)

var (
	// ErrInvalidDate is returned for a missing or malformed anchor.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidWindow is returned when an explicit start/end pair is not a
	// weekly window.
	ErrInvalidWindow = errors.New("invalid window")
)

// Parse reads a strict YYYY-MM-DD anchor.
func Parse(anchor string) (time.Time, error) {
	if anchor == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	t, err := time.Parse(Layout, anchor)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, anchor)
	}
	return t, nil
}

// Day returns the single-date window for the day view.
func Day(anchor string) (models.DateWindow, error) {
	t, err := Parse(anchor)
	if err != nil {
		return models.DateWindow{}, err
	}
	return models.DateWindow{Anchor: t, Start: t, End: t}, nil
}

// Resolve returns the weekly window that starts on anchor and ends six days
// later. The start is never moved to a week boundary.
func Resolve(anchor string) (models.DateWindow, error) {
	t, err := Parse(anchor)
	if err != nil {
		return models.DateWindow{}, err
	}
	return models.DateWindow{
		Anchor: t,
		Start:  t,
		End:    t.AddDate(0, 0, WindowDays-1),
	}, nil
}

// Window validates an explicit start/end pair, as sent by a client, against
// the weekly window that Resolve would produce for start.
func Window(start, end string) (models.DateWindow, error) {
	w, err := Resolve(start)
	if err != nil {
		return models.DateWindow{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return models.DateWindow{}, err
	}
	if !e.Equal(w.End) {
		return models.DateWindow{}, fmt.Errorf("%w: %s ~ %s is not %d days", ErrInvalidWindow, start, end, WindowDays)
	}
	return w, nil
}

// Shift moves anchor by days, keeping the layout.
func Shift(anchor string, days int) (string, error) {
	t, err := Parse(anchor)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(Layout), nil
}

// Param formats a window boundary as a fetch parameter.
func Param(t time.Time) string {
	return t.Format(Layout)
}

// DayTitle renders the day view heading, e.g. "2024년 01월 05일".
func DayTitle(w models.DateWindow) string {
	return w.Anchor.Format("2006년 01월 02일")
}

// Boundary renders one end of a weekly window, e.g. "1월 5일".
func Boundary(t time.Time) string {
	return t.Format("1월 2일")
}

// WindowTitle renders the week view heading.
func WindowTitle(w models.DateWindow) string {
	return fmt.Sprintf("%s ~ %s 주간 통계", Boundary(w.Start), Boundary(w.End))
}
