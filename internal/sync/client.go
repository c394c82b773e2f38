// Package sync implements the best-effort client for the upstream wellness
// backend. The local store is always the source of truth; this client only
// mirrors accepted records outward and reads remote state when asked.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/mindwell/mindwell/store"
)

const (
	requestTimeout = 30 * time.Second

	// GETs are idempotent and get a small bounded retry with fixed backoff.
	// Mutations are never retried; the caller treats them as best-effort.
	getRetries   = 2
	retryBackoff = 2 * time.Second
)

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Client talks to the upstream backend over its JSON contract.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL and bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}
	if resp.StatusCode >= 500 {
		return errors.Errorf("backend returned %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrap(err, "failed to decode response envelope")
	}
	if !env.Success {
		return errors.Errorf("backend rejected request: %s", env.Error)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode response data")
		}
	}
	return nil
}

// get performs an idempotent GET with bounded retries and fixed backoff.
func (c *Client) get(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := 0; attempt <= getRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if lastErr = c.do(ctx, http.MethodGet, path, nil, out); lastErr == nil {
			return nil
		}
	}
	return lastErr
}

// PushJournalEntry mirrors an accepted journal entry to the backend.
func (c *Client) PushJournalEntry(ctx context.Context, entry *store.JournalEntry) error {
	return c.do(ctx, http.MethodPost, "/journal", entry, nil)
}

// PushMeditationSession mirrors a meditation session to the backend.
func (c *Client) PushMeditationSession(ctx context.Context, session *store.MeditationSession) error {
	return c.do(ctx, http.MethodPost, "/meditation", session, nil)
}

// PushTherapySession mirrors a therapy session to the backend.
func (c *Client) PushTherapySession(ctx context.Context, session *store.TherapySession) error {
	return c.do(ctx, http.MethodPost, "/therapy", session, nil)
}

// PushMoodSample mirrors a mood sample to the backend.
func (c *Client) PushMoodSample(ctx context.Context, sample *store.MoodSample) error {
	return c.do(ctx, http.MethodPost, "/mood", sample, nil)
}

// FetchJournalEntries reads the remote journal collection for a user.
func (c *Client) FetchJournalEntries(ctx context.Context, userID string) ([]*store.JournalEntry, error) {
	var entries []*store.JournalEntry
	if err := c.get(ctx, fmt.Sprintf("/journal?user_id=%s", userID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
