package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/daterange"
	"github.com/jasperwreed/story-memory/internal/logging"
	"github.com/jasperwreed/story-memory/internal/models"
	"github.com/jasperwreed/story-memory/internal/reqid"
)

// WeekRequest is one statistics fetch issued by a WeekController.
type WeekRequest struct {
	Identity
	Window     models.DateWindow
	Generation uint64
	RequestID  string
}

// StartDay and EndDay are the fetch parameters of the window.
func (r WeekRequest) StartDay() string { return daterange.Param(r.Window.Start) }
func (r WeekRequest) EndDay() string   { return daterange.Param(r.Window.End) }

// WeekResult is the outcome of running a WeekRequest.
type WeekResult struct {
	WeekRequest
	Stats *models.WeeklyStats
	Err   error
}

// Run performs the fetch once.
func (r WeekRequest) Run(ctx context.Context, f WeeklyStatsFetcher) WeekResult {
	if f == nil {
		return WeekResult{WeekRequest: r, Err: ErrNoFetcher}
	}
	stats, err := f.FetchWeeklyStats(reqid.With(ctx, r.RequestID), r.UserSeq, r.StartDay(), r.EndDay())
	return WeekResult{WeekRequest: r, Stats: stats, Err: err}
}

// WeekController holds the state of the weekly statistics view.
type WeekController struct {
	logger     *zap.Logger
	identity   Identity
	generation uint64
	state      State
	window     models.DateWindow
	hasWindow  bool
	stats      *models.WeeklyStats
}

func NewWeekController(logger *zap.Logger) *WeekController {
	return &WeekController{logger: logging.OrNop(logger)}
}

// Navigate points the view at the window starting on start. The previous
// window's statistics are cleared before anything else happens, so they can
// never be shown under the new window's title.
func (c *WeekController) Navigate(userSeq int64, start string) *WeekRequest {
	next := Identity{UserSeq: userSeq, Date: start}
	if next == c.identity && c.state != StateIdle {
		return nil
	}

	c.stats = nil
	c.identity = next
	c.generation++

	window, err := daterange.Resolve(start)
	if err != nil {
		c.window = models.DateWindow{}
		c.hasWindow = false
		c.state = StateNoData
		return nil
	}
	c.window = window
	c.hasWindow = true

	if userSeq <= 0 {
		c.state = StateNoData
		return nil
	}

	c.state = StateLoading
	return &WeekRequest{
		Identity:   c.identity,
		Window:     c.window,
		Generation: c.generation,
		RequestID:  reqid.New(),
	}
}

// Apply folds a result into the view, dropping superseded results.
func (c *WeekController) Apply(res WeekResult) bool {
	if res.Generation != c.generation || res.Identity != c.identity {
		c.logger.Debug("discarding stale weekly stats",
			zap.Int64("user_seq", res.UserSeq),
			zap.String("start_day", res.StartDay()),
			zap.String("request_id", res.RequestID),
		)
		return false
	}

	if res.Err != nil {
		c.logger.Error("failed to fetch weekly stats",
			zap.Int64("user_seq", res.UserSeq),
			zap.String("start_day", res.StartDay()),
			zap.String("end_day", res.EndDay()),
			zap.String("request_id", res.RequestID),
			zap.Error(res.Err),
		)
		c.stats = nil
		c.state = StateNoData
		return true
	}

	c.stats = res.Stats
	if c.stats == nil {
		c.state = StateNoData
	} else {
		c.state = StateReady
	}
	return true
}

// Load runs Navigate, the fetch and Apply in one go.
func (c *WeekController) Load(ctx context.Context, f WeeklyStatsFetcher, userSeq int64, start string) *models.WeeklyStats {
	if req := c.Navigate(userSeq, start); req != nil {
		c.Apply(req.Run(ctx, f))
	}
	return c.stats
}

// Stats is the current payload, nil while loading or when there is none.
func (c *WeekController) Stats() *models.WeeklyStats {
	return c.stats
}

// HasData gates whether the tabbed carousel is rendered.
func (c *WeekController) HasData() bool {
	return c.stats != nil
}

// Window returns the resolved window and whether the anchor parsed.
func (c *WeekController) Window() (models.DateWindow, bool) {
	return c.window, c.hasWindow
}

// Title is the window heading, empty when the anchor did not parse.
func (c *WeekController) Title() string {
	if !c.hasWindow {
		return ""
	}
	return daterange.WindowTitle(c.window)
}

func (c *WeekController) State() State {
	return c.state
}

func (c *WeekController) Identity() Identity {
	return c.identity
}
