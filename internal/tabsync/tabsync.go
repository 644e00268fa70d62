// Package tabsync keeps a tab bar and a carousel pointing at the same slide.
//
// A Sync has exactly two transitions. SelectTab is an intent coming from the
// tab bar: it records the selection and asks the carousel to move.
// OnSlideSettled comes from the carousel once a slide transition completes
// and is the authority on the active index. A settle that confirms a pending
// SelectTab is reported as such and is never treated as a swipe.
package tabsync

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownTab      = errors.New("unknown tab")
	ErrIndexOutOfRange = errors.New("slide index out of range")
	ErrNoTabs          = errors.New("no tabs")
)

// WeeklyTabs are the statistics categories of the week view, in slide order.
var WeeklyTabs = []string{"감정", "어휘력", "관심사", "대화 빈도"}

// Carousel is the part of a slide carousel the sync drives.
type Carousel interface {
	SlideTo(index int)
}

// Origin tells which side started a transition.
type Origin int

const (
	OriginTab Origin = iota
	OriginSwipe
)

func (o Origin) String() string {
	if o == OriginTab {
		return "tab"
	}
	return "swipe"
}

// Transition describes one applied change.
type Transition struct {
	Origin Origin
	Tab    string
	Index  int
}

// Preference remembers the last selected tab for the whole process, so
// re-entering the week view resumes where the user left off. The
// application shell owns one and hands it to every view it creates.
type Preference struct {
	mu  sync.Mutex
	tab string
}

// NewPreference returns a cell holding initial.
func NewPreference(initial string) *Preference {
	return &Preference{tab: initial}
}

func (p *Preference) Tab() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tab
}

func (p *Preference) Set(tab string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tab = tab
}

// Sync is the tab/carousel state machine. It is not safe for concurrent use;
// drive it from the UI loop.
type Sync struct {
	tabs     []string
	pref     *Preference
	carousel Carousel

	selected string
	active   int
	pending  int
}

// New starts at the tab stored in pref, or the first tab when pref is nil or
// holds a name that is not in tabs.
func New(tabs []string, pref *Preference) (*Sync, error) {
	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}
	if pref == nil {
		pref = NewPreference("")
	}

	s := &Sync{
		tabs:    append([]string(nil), tabs...),
		pref:    pref,
		pending: -1,
	}

	s.active = s.IndexOf(pref.Tab())
	if s.active < 0 {
		s.active = 0
	}
	s.selected = s.tabs[s.active]
	pref.Set(s.selected)

	return s, nil
}

// Attach connects the carousel that SelectTab drives.
func (s *Sync) Attach(c Carousel) {
	s.carousel = c
}

// Tabs returns the ordered tab names.
func (s *Sync) Tabs() []string {
	return append([]string(nil), s.tabs...)
}

// Selected is the tab the tab bar highlights.
func (s *Sync) Selected() string {
	return s.selected
}

// ActiveIndex is the slide the carousel last settled on.
func (s *Sync) ActiveIndex() int {
	return s.active
}

// IndexOf returns the position of name in the tab list, or -1.
func (s *Sync) IndexOf(name string) int {
	for i, tab := range s.tabs {
		if tab == name {
			return i
		}
	}
	return -1
}

// Settled reports whether the selection and the active slide agree.
func (s *Sync) Settled() bool {
	return s.IndexOf(s.selected) == s.active
}

// Pending reports whether a SelectTab is waiting for the carousel.
func (s *Sync) Pending() bool {
	return s.pending >= 0
}

// SelectTab selects name and asks the carousel to move to its slide. The
// active index only changes when the carousel settles.
func (s *Sync) SelectTab(name string) (Transition, error) {
	idx := s.IndexOf(name)
	if idx < 0 {
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownTab, name)
	}

	s.selected = name
	s.pref.Set(name)

	// Reselecting the resting slide needs no move, but a slide still in
	// flight has to be sent back.
	if idx == s.active && s.pending < 0 {
		return Transition{Origin: OriginTab, Tab: name, Index: idx}, nil
	}

	s.pending = idx
	if s.carousel != nil {
		s.carousel.SlideTo(idx)
	}
	return Transition{Origin: OriginTab, Tab: name, Index: idx}, nil
}

// OnSwipe applies a slide the user moved to by hand. Any pending SelectTab
// is dropped, so the move is always reported as a swipe.
func (s *Sync) OnSwipe(index int) (Transition, error) {
	if index < 0 || index >= len(s.tabs) {
		return Transition{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.pending = -1
	return s.OnSlideSettled(index)
}

// OnSlideSettled applies the carousel's settled index.
func (s *Sync) OnSlideSettled(index int) (Transition, error) {
	if index < 0 || index >= len(s.tabs) {
		return Transition{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	origin := OriginSwipe
	if s.pending == index {
		origin = OriginTab
	}
	s.pending = -1

	s.active = index
	s.selected = s.tabs[index]
	s.pref.Set(s.selected)

	return Transition{Origin: origin, Tab: s.selected, Index: index}, nil
}
