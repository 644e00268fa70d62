package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/daterange"
	"github.com/jasperwreed/story-memory/internal/logging"
	"github.com/jasperwreed/story-memory/internal/models"
	"github.com/jasperwreed/story-memory/internal/reqid"
	"github.com/jasperwreed/story-memory/internal/viewmodel"
)

// DayRequest is one conversation fetch issued by a DayController.
type DayRequest struct {
	Identity
	Generation uint64
	RequestID  string
}

// DayResult is the outcome of running a DayRequest.
type DayResult struct {
	DayRequest
	List *models.ConversationList
	Err  error
}

// Run performs the fetch once.
func (r DayRequest) Run(ctx context.Context, f ConversationFetcher) DayResult {
	if f == nil {
		return DayResult{DayRequest: r, Err: ErrNoFetcher}
	}
	list, err := f.FetchConversationsByDate(reqid.With(ctx, r.RequestID), r.UserSeq, r.Date)
	return DayResult{DayRequest: r, List: list, Err: err}
}

// DayController holds the state of the day view.
type DayController struct {
	logger     *zap.Logger
	identity   Identity
	generation uint64
	state      State
	view       models.DayView
}

func NewDayController(logger *zap.Logger) *DayController {
	return &DayController{
		logger: logging.OrNop(logger),
		view:   models.DayView{Empty: true},
	}
}

// Navigate points the view at (userSeq, date). It returns the fetch to run,
// or nil when nothing needs fetching: the identity is unchanged, the user is
// unknown or the date does not parse. Any request still in flight for the
// previous identity is invalidated.
func (c *DayController) Navigate(userSeq int64, date string) *DayRequest {
	next := Identity{UserSeq: userSeq, Date: date}
	if next == c.identity && c.state != StateIdle {
		return nil
	}

	c.identity = next
	c.generation++

	window, err := daterange.Day(date)
	if err != nil || userSeq <= 0 {
		c.state = StateNoData
		c.view = models.DayView{Date: date, Empty: true}
		if err == nil {
			c.view.Title = daterange.DayTitle(window)
		}
		return nil
	}

	c.state = StateLoading
	c.view = models.DayView{Date: date, Title: daterange.DayTitle(window), Empty: true}
	return c.request()
}

// Refresh refetches the current identity. Stories already shown stay on
// screen if the refetch fails.
func (c *DayController) Refresh() *DayRequest {
	if !c.identity.valid() || c.view.Title == "" {
		return nil
	}
	c.generation++
	if c.state == StateNoData {
		c.state = StateLoading
	}
	return c.request()
}

func (c *DayController) request() *DayRequest {
	return &DayRequest{
		Identity:   c.identity,
		Generation: c.generation,
		RequestID:  reqid.New(),
	}
}

// Apply folds a result into the view. Results from superseded requests are
// dropped and Apply reports false.
func (c *DayController) Apply(res DayResult) bool {
	if res.Generation != c.generation || res.Identity != c.identity {
		c.logger.Debug("discarding stale conversation list",
			zap.Int64("user_seq", res.UserSeq),
			zap.String("date", res.Date),
			zap.String("request_id", res.RequestID),
		)
		return false
	}

	if res.Err != nil {
		c.logger.Error("failed to fetch conversations",
			zap.Int64("user_seq", res.UserSeq),
			zap.String("date", res.Date),
			zap.String("request_id", res.RequestID),
			zap.Error(res.Err),
		)
		if c.view.Empty {
			c.state = StateNoData
		} else {
			c.state = StateReady
		}
		return true
	}

	var records []models.ConversationRecord
	if res.List != nil {
		records = res.List.ConversationList
	}
	c.view = viewmodel.BuildForDate(c.identity.Date, c.view.Title, records)
	if c.view.Empty {
		c.state = StateNoData
	} else {
		c.state = StateReady
	}
	return true
}

// Load runs Navigate, the fetch and Apply in one go for callers without an
// event loop.
func (c *DayController) Load(ctx context.Context, f ConversationFetcher, userSeq int64, date string) models.DayView {
	if req := c.Navigate(userSeq, date); req != nil {
		c.Apply(req.Run(ctx, f))
	}
	return c.View()
}

// View returns the current view model. The renderer always gets a valid,
// possibly empty, view.
func (c *DayController) View() models.DayView {
	return c.view
}

func (c *DayController) State() State {
	return c.state
}

func (c *DayController) Identity() Identity {
	return c.identity
}
