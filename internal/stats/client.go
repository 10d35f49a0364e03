// Package stats talks to the learning platform's stats API.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/scorecard/internal/profile"
)

// Refresher reloads the learner's stats from the backend.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// FeedbackSender delivers free-form feedback about a test attempt.
type FeedbackSender interface {
	SendFeedback(ctx context.Context, fb Feedback) error
}

// Feedback is a learner's comment on a test.
type Feedback struct {
	ID      string `json:"id"`
	TestID  string `json:"test_id,omitempty"`
	Message string `json:"message"`
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}

const (
	statsPath    = "/api/stats"
	feedbackPath = "/api/feedback"

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 512
)

// Client is an HTTP client for the stats API. Refreshed stats are written
// into the profile store.
type Client struct {
	baseURL string
	http    *http.Client
	store   *profile.Store
}

var (
	_ Refresher      = (*Client)(nil)
	_ FeedbackSender = (*Client)(nil)
)

// NewClient creates a Client for baseURL that writes into store.
func NewClient(baseURL string, timeout time.Duration, store *profile.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
	}
}

// Refresh fetches the current stats and replaces the profile snapshot.
// On failure the store keeps its previous snapshot.
func (c *Client) Refresh(ctx context.Context) error {
	var snap profile.Snapshot
	if err := c.do(ctx, http.MethodGet, statsPath, nil, &snap); err != nil {
		return fmt.Errorf("refresh stats: %w", err)
	}
	c.store.Set(snap)
	return nil
}

// SendFeedback posts fb. A missing ID is filled with a new UUID.
func (c *Client) SendFeedback(ctx context.Context, fb Feedback) error {
	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	if err := c.do(ctx, http.MethodPost, feedbackPath, fb, nil); err != nil {
		return fmt.Errorf("send feedback: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
