package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"proconnect/internal/domain"
)

// Client forwards accepted commands to the action service that owns their
// side effects (posting, messaging, applying).
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Attempts int
	// Backoff is the first retry delay; it doubles on every retry.
	Backoff time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:  baseURL,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
		Attempts: 3,
		Backoff:  time.Second,
	}
}

type commandPayload struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	ActorID  string `json:"actorId"`
	TargetID string `json:"targetId,omitempty"`
	Body     string `json:"body,omitempty"`
	IssuedAt string `json:"issuedAt"`
}

// Record posts cmd to /v1/commands. 2xx counts as recorded; 4xx fails
// immediately, transport errors and 5xx are retried.
func (c *Client) Record(ctx context.Context, cmd domain.Command) error {
	b, err := json.Marshal(commandPayload{
		ID:       cmd.ID.String(),
		Kind:     string(cmd.Kind),
		ActorID:  cmd.ActorID,
		TargetID: cmd.TargetID,
		Body:     cmd.Body,
		IssuedAt: cmd.IssuedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	resp, err := c.doPostWithRetry(ctx, "/v1/commands", b)
	if err != nil {
		return fmt.Errorf("action service: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := c.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode >= 500:
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
		case resp.StatusCode >= 300:
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
		default:
			return resp, nil
		}
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := c.Backoff * time.Duration(1<<i)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
