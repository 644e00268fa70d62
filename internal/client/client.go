// Package client fetches conversations and weekly statistics from the
// story-memory HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jasperwreed/story-memory/internal/models"
	"github.com/jasperwreed/story-memory/internal/reqid"
)

const DefaultTimeout = 10 * time.Second

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

var ErrNoBaseURL = errors.New("api base url is required")

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New returns a client for the API rooted at baseURL. A zero timeout uses
// DefaultTimeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// FetchConversationsByDate calls GET /api/users/{userSeq}/conversations.
func (c *Client) FetchConversationsByDate(ctx context.Context, userSeq int64, day string) (*models.ConversationList, error) {
	q := url.Values{}
	q.Set("day", day)

	var list models.ConversationList
	found, err := c.get(ctx, fmt.Sprintf("/api/users/%d/conversations", userSeq), q, &list)
	if err != nil {
		return nil, err
	}
	if !found {
		return &models.ConversationList{}, nil
	}
	return &list, nil
}

// FetchWeeklyStats calls GET /api/users/{userSeq}/weekly-stats. A 204
// response yields a nil payload.
func (c *Client) FetchWeeklyStats(ctx context.Context, userSeq int64, startDay, endDay string) (*models.WeeklyStats, error) {
	q := url.Values{}
	q.Set("startDay", startDay)
	q.Set("endDay", endDay)

	var stats models.WeeklyStats
	found, err := c.get(ctx, fmt.Sprintf("/api/users/%d/weekly-stats", userSeq), q, &stats)
	if err != nil || !found {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) (bool, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if id := reqid.From(ctx); id != "" {
		req.Header.Set(reqid.Header, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return true, nil
}

func errorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
