package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jasperwreed/story-memory/internal/models"
	"github.com/jasperwreed/story-memory/internal/reqid"
)

type fetcherMock struct {
	mock.Mock
}

func (m *fetcherMock) FetchConversationsByDate(ctx context.Context, userSeq int64, day string) (*models.ConversationList, error) {
	args := m.Called(ctx, userSeq, day)
	list, _ := args.Get(0).(*models.ConversationList)
	return list, args.Error(1)
}

func (m *fetcherMock) FetchWeeklyStats(ctx context.Context, userSeq int64, startDay, endDay string) (*models.WeeklyStats, error) {
	args := m.Called(ctx, userSeq, startDay, endDay)
	stats, _ := args.Get(0).(*models.WeeklyStats)
	return stats, args.Error(1)
}

func list(titles ...string) *models.ConversationList {
	out := &models.ConversationList{}
	for i, title := range titles {
		out.ConversationList = append(out.ConversationList, models.ConversationRecord{
			ConversationSeq: int64(i + 1),
			Title:           title,
			CreatedAt:       []int{2024, 1, 10, 9 + i, 0, 0},
		})
	}
	return out
}

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestDayController_Load(t *testing.T) {
	ctx := context.Background()
	f := &fetcherMock{}
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").
		Return(list(`"공룡"`, "바다"), nil).Once()

	c := NewDayController(nil)
	view := c.Load(ctx, f, 1, "2024-01-10")

	require.Equal(t, StateReady, c.State())
	require.False(t, view.Empty)
	require.Equal(t, "2024년 01월 10일", view.Title)
	require.Len(t, view.Stories, 2)
	require.Equal(t, "첫번째", view.Stories[0].Order)
	require.Equal(t, "공룡", view.Stories[0].DisplayTitle)
	require.Equal(t, "10시 00분", view.Stories[1].FormattedTime)
	f.AssertExpectations(t)
}

func TestDayController_PassesRequestID(t *testing.T) {
	f := &fetcherMock{}
	c := NewDayController(nil)
	req := c.Navigate(1, "2024-01-10")
	require.NotNil(t, req)
	require.NotEmpty(t, req.RequestID)

	f.On("FetchConversationsByDate", mock.MatchedBy(func(ctx context.Context) bool {
		return reqid.From(ctx) == req.RequestID
	}), int64(1), "2024-01-10").Return(list(), nil)

	require.True(t, c.Apply(req.Run(context.Background(), f)))
	f.AssertExpectations(t)
}

func TestDayController_EmptyResult(t *testing.T) {
	f := &fetcherMock{}
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").Return(list(), nil)

	c := NewDayController(nil)
	view := c.Load(context.Background(), f, 1, "2024-01-10")
	require.True(t, view.Empty)
	require.Equal(t, StateNoData, c.State())
	require.Equal(t, "2024년 01월 10일", view.Title)
}

func TestDayController_InvalidInputSkipsFetch(t *testing.T) {
	tests := []struct {
		name    string
		userSeq int64
		date    string
	}{
		{"missing date", 1, ""},
		{"bad date", 1, "2024-13-40"},
		{"missing user", 0, "2024-01-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fetcherMock{}
			logger, logs := observed()
			c := NewDayController(logger)

			require.Nil(t, c.Navigate(tt.userSeq, tt.date))
			view := c.Load(context.Background(), f, tt.userSeq, tt.date)

			require.True(t, view.Empty)
			require.Equal(t, StateNoData, c.State())
			require.Nil(t, c.Refresh())
			f.AssertNotCalled(t, "FetchConversationsByDate", mock.Anything, mock.Anything, mock.Anything)
			require.Zero(t, logs.Len(), "parse failures are not logged")
		})
	}
}

func TestDayController_FetchFailure(t *testing.T) {
	logger, logs := observed()
	f := &fetcherMock{}
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").
		Return(nil, errors.New("connection refused"))

	c := NewDayController(logger)
	view := c.Load(context.Background(), f, 1, "2024-01-10")

	require.True(t, view.Empty)
	require.Equal(t, StateNoData, c.State())
	require.Equal(t, 1, logs.FilterMessage("failed to fetch conversations").Len())
}

func TestDayController_RefreshFailureKeepsPriorStories(t *testing.T) {
	f := &fetcherMock{}
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").
		Return(list("a", "b"), nil).Once()
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").
		Return(nil, errors.New("boom")).Once()

	c := NewDayController(nil)
	c.Load(context.Background(), f, 1, "2024-01-10")

	req := c.Refresh()
	require.NotNil(t, req)
	require.True(t, c.Apply(req.Run(context.Background(), f)))

	require.Equal(t, StateReady, c.State())
	require.Len(t, c.View().Stories, 2)
	f.AssertExpectations(t)
}

func TestDayController_SameIdentityDoesNotRefetch(t *testing.T) {
	f := &fetcherMock{}
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").Return(list("a"), nil).Once()

	c := NewDayController(nil)
	c.Load(context.Background(), f, 1, "2024-01-10")
	require.Nil(t, c.Navigate(1, "2024-01-10"))
	f.AssertExpectations(t)
}

func TestDayController_StaleResultDiscarded(t *testing.T) {
	ctx := context.Background()
	f := &fetcherMock{}
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").Return(list("tenth"), nil)
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-11").Return(list("eleventh", "again"), nil)

	c := NewDayController(nil)
	first := c.Navigate(1, "2024-01-10")
	second := c.Navigate(1, "2024-01-11")
	require.NotNil(t, first)
	require.NotNil(t, second)

	// The 10th resolves while the 11th is pending.
	require.False(t, c.Apply(first.Run(ctx, f)))
	require.Equal(t, StateLoading, c.State())
	require.True(t, c.View().Empty)
	require.Equal(t, "2024-01-11", c.View().Date)

	require.True(t, c.Apply(second.Run(ctx, f)))
	view := c.View()
	require.Equal(t, "2024-01-11", view.Date)
	require.Len(t, view.Stories, 2)
	require.Equal(t, "eleventh", view.Stories[0].Title)
}

func TestDayController_StaleResultAfterNewerResolved(t *testing.T) {
	ctx := context.Background()
	f := &fetcherMock{}
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").Return(list("tenth"), nil)
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-11").Return(list("eleventh"), nil)

	c := NewDayController(nil)
	first := c.Navigate(1, "2024-01-10")
	second := c.Navigate(1, "2024-01-11")

	require.True(t, c.Apply(second.Run(ctx, f)))
	require.False(t, c.Apply(first.Run(ctx, f)))
	require.Equal(t, "eleventh", c.View().Stories[0].Title)
}

func TestDayController_UserChangeInvalidates(t *testing.T) {
	ctx := context.Background()
	f := &fetcherMock{}
	f.On("FetchConversationsByDate", mock.Anything, int64(1), "2024-01-10").Return(list("mine"), nil)

	c := NewDayController(nil)
	req := c.Navigate(1, "2024-01-10")
	require.NotNil(t, c.Navigate(2, "2024-01-10"))

	require.False(t, c.Apply(req.Run(ctx, f)))
	require.True(t, c.View().Empty)
}

func TestDayRequest_NoFetcher(t *testing.T) {
	c := NewDayController(nil)
	req := c.Navigate(1, "2024-01-10")
	res := req.Run(context.Background(), nil)
	require.ErrorIs(t, res.Err, ErrNoFetcher)
	require.True(t, c.Apply(res))
	require.Equal(t, StateNoData, c.State())
}

func TestWeekController_Load(t *testing.T) {
	stats := &models.WeeklyStats{EmotionSummary: "즐거운 한 주"}
	f := &fetcherMock{}
	f.On("FetchWeeklyStats", mock.Anything, int64(1), "2024-01-01", "2024-01-07").Return(stats, nil)

	c := NewWeekController(nil)
	got := c.Load(context.Background(), f, 1, "2024-01-01")

	require.Same(t, stats, got)
	require.True(t, c.HasData())
	require.Equal(t, StateReady, c.State())
	require.Equal(t, "1월 1일 ~ 1월 7일 주간 통계", c.Title())
	f.AssertExpectations(t)
}

func TestWeekController_ClearsBeforeFetch(t *testing.T) {
	ctx := context.Background()
	f := &fetcherMock{}
	f.On("FetchWeeklyStats", mock.Anything, int64(1), "2024-01-01", "2024-01-07").
		Return(&models.WeeklyStats{StartDay: "2024-01-01"}, nil)

	c := NewWeekController(nil)
	c.Load(ctx, f, 1, "2024-01-01")
	require.True(t, c.HasData())

	req := c.Navigate(1, "2024-01-08")
	require.NotNil(t, req)
	require.False(t, c.HasData(), "previous window must be cleared before the fetch")
	require.Nil(t, c.Stats())
	require.Equal(t, StateLoading, c.State())
	require.Equal(t, "1월 8일 ~ 1월 14일 주간 통계", c.Title())
	require.Equal(t, "2024-01-08", req.StartDay())
	require.Equal(t, "2024-01-14", req.EndDay())
}

func TestWeekController_FailureLeavesCleared(t *testing.T) {
	logger, logs := observed()
	f := &fetcherMock{}
	f.On("FetchWeeklyStats", mock.Anything, int64(1), "2024-01-01", "2024-01-07").
		Return(&models.WeeklyStats{}, nil)
	f.On("FetchWeeklyStats", mock.Anything, int64(1), "2024-01-08", "2024-01-14").
		Return(nil, errors.New("503"))

	c := NewWeekController(logger)
	c.Load(context.Background(), f, 1, "2024-01-01")
	c.Load(context.Background(), f, 1, "2024-01-08")

	require.False(t, c.HasData())
	require.Equal(t, StateNoData, c.State())
	require.Equal(t, 1, logs.FilterMessage("failed to fetch weekly stats").Len())
}

func TestWeekController_AbsentPayload(t *testing.T) {
	f := &fetcherMock{}
	f.On("FetchWeeklyStats", mock.Anything, int64(1), "2024-01-01", "2024-01-07").Return(nil, nil)

	c := NewWeekController(nil)
	require.Nil(t, c.Load(context.Background(), f, 1, "2024-01-01"))
	require.Equal(t, StateNoData, c.State())
}

func TestWeekController_InvalidStartSkipsFetch(t *testing.T) {
	f := &fetcherMock{}
	c := NewWeekController(nil)

	require.Nil(t, c.Navigate(1, "not-a-date"))
	require.Equal(t, StateNoData, c.State())
	require.Equal(t, "", c.Title())
	_, ok := c.Window()
	require.False(t, ok)
	f.AssertNotCalled(t, "FetchWeeklyStats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWeekController_StaleResultDiscarded(t *testing.T) {
	ctx := context.Background()
	tenth := &models.WeeklyStats{StartDay: "2024-01-10"}
	eleventh := &models.WeeklyStats{StartDay: "2024-01-11"}
	f := &fetcherMock{}
	f.On("FetchWeeklyStats", mock.Anything, int64(1), "2024-01-10", "2024-01-16").Return(tenth, nil)
	f.On("FetchWeeklyStats", mock.Anything, int64(1), "2024-01-11", "2024-01-17").Return(eleventh, nil)

	c := NewWeekController(nil)
	first := c.Navigate(1, "2024-01-10")
	second := c.Navigate(1, "2024-01-11")

	require.False(t, c.Apply(first.Run(ctx, f)))
	require.Nil(t, c.Stats())

	require.True(t, c.Apply(second.Run(ctx, f)))
	require.Same(t, eleventh, c.Stats())
}
