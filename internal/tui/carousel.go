package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// slideDuration is how long a programmatic slide takes to settle.
const slideDuration = 250 * time.Millisecond

type slideSettledMsg struct {
	index int
	move  uint64
}

// carousel is the week screen's slide strip. SlideTo starts an animated move
// that settles on a later tick; swipes settle immediately.
type carousel struct {
	count  int
	active int
	target int
	move   uint64
	moving bool
}

func newCarousel(count, active int) *carousel {
	return &carousel{count: count, active: active, target: active}
}

// SlideTo implements tabsync.Carousel.
func (c *carousel) SlideTo(index int) {
	if index < 0 || index >= c.count {
		return
	}
	c.target = index
	c.move++
	c.moving = true
}

// transition returns the tick that settles the current move, if any.
func (c *carousel) transition() tea.Cmd {
	if !c.moving {
		return nil
	}
	msg := slideSettledMsg{index: c.target, move: c.move}
	return tea.Tick(slideDuration, func(time.Time) tea.Msg {
		return msg
	})
}

// settle finishes the move msg belongs to. Ticks of superseded moves are
// ignored.
func (c *carousel) settle(msg slideSettledMsg) (int, bool) {
	if !c.moving || msg.move != c.move {
		return 0, false
	}
	c.active = msg.index
	c.moving = false
	return c.active, true
}

// swipe moves one slide by hand, cancelling any move in flight.
func (c *carousel) swipe(delta int) (int, bool) {
	next := c.active + delta
	if next < 0 || next >= c.count {
		return c.active, false
	}
	c.move++
	c.moving = false
	c.active = next
	c.target = next
	return next, true
}

func (c *carousel) dots() string {
	out := make([]rune, 0, c.count*2)
	for i := 0; i < c.count; i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		if i == c.active {
			out = append(out, '●')
		} else {
			out = append(out, '○')
		}
	}
	return string(out)
}
