package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jasperwreed/story-memory/internal/daterange"
	"github.com/jasperwreed/story-memory/internal/models"
	"github.com/jasperwreed/story-memory/internal/reqid"
)

// Store is what the handlers read from.
type Store interface {
	FetchConversationsByDate(ctx context.Context, userSeq int64, day string) (*models.ConversationList, error)
	GetWeeklyStats(ctx context.Context, userSeq int64, startDay, endDay string) (*models.WeeklyStats, error)
}

type Handlers struct {
	store  Store
	logger *zap.Logger
}

func NewHandlers(store Store, logger *zap.Logger) *Handlers {
	return &Handlers{store: store, logger: logger}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}
	respondWithJSON(w, http.StatusOK, response)
}

func (h *Handlers) ListConversationsByDate(w http.ResponseWriter, r *http.Request) {
	userSeq, ok := parseUserSeq(w, r)
	if !ok {
		return
	}

	day := r.URL.Query().Get("day")
	if _, err := daterange.Parse(day); err != nil {
		respondWithError(w, http.StatusBadRequest, "day must be YYYY-MM-DD")
		return
	}

	list, err := h.store.FetchConversationsByDate(r.Context(), userSeq, day)
	if err != nil {
		h.logger.Error("failed to list conversations",
			zap.Int64("user_seq", userSeq),
			zap.String("day", day),
			zap.String("request_id", reqid.From(r.Context())),
			zap.Error(err),
		)
		respondWithError(w, http.StatusInternalServerError, "Failed to query conversations")
		return
	}

	respondWithJSON(w, http.StatusOK, list)
}

func (h *Handlers) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	userSeq, ok := parseUserSeq(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	startDay, endDay := query.Get("startDay"), query.Get("endDay")
	if _, err := daterange.Window(startDay, endDay); err != nil {
		msg := "startDay and endDay must be YYYY-MM-DD"
		if errors.Is(err, daterange.ErrInvalidWindow) {
			msg = "startDay and endDay must span 7 days"
		}
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	stats, err := h.store.GetWeeklyStats(r.Context(), userSeq, startDay, endDay)
	if err != nil {
		h.logger.Error("failed to get weekly stats",
			zap.Int64("user_seq", userSeq),
			zap.String("start_day", startDay),
			zap.String("request_id", reqid.From(r.Context())),
			zap.Error(err),
		)
		respondWithError(w, http.StatusInternalServerError, "Failed to get weekly stats")
		return
	}
	if stats == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

func parseUserSeq(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userSeq, err := strconv.ParseInt(r.PathValue("userSeq"), 10, 64)
	if err != nil || userSeq <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid user")
		return 0, false
	}
	return userSeq, true
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
