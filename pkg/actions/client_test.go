package actions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"proconnect/internal/domain"

	"github.com/google/uuid"
)

func testClient(url string) *Client {
	c := NewClient(url)
	c.Backoff = time.Millisecond
	return c
}

func testCommand() domain.Command {
	return domain.Command{
		ID:       uuid.New(),
		Kind:     domain.CmdSendMessage,
		ActorID:  "current",
		TargetID: "1",
		Body:     "Thanks Sarah!",
		IssuedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestRecord_PostsCommand(t *testing.T) {
	t.Parallel()

	cmd := testCommand()
	var got commandPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/commands" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	if err := testClient(srv.URL).Record(context.Background(), cmd); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if got.ID != cmd.ID.String() || got.Kind != "send_message" || got.Body != "Thanks Sarah!" {
		t.Fatalf("unexpected payload %+v", got)
	}
	if got.IssuedAt != "2024-01-15T10:30:00Z" {
		t.Fatalf("unexpected issuedAt %q", got.IssuedAt)
	}
}

func TestRecord_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := testClient(srv.URL).Record(context.Background(), testCommand()); err != nil {
		t.Fatalf("expected success on the third attempt, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("expected 3 calls, got %d", n)
	}
}

func TestRecord_GivesUpAfterAttempts(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := testClient(srv.URL).Record(context.Background(), testCommand())
	if err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("expected 502 error, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("expected 3 calls, got %d", n)
	}
}

func TestRecord_ClientErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "unknown target", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := testClient(srv.URL).Record(context.Background(), testCommand())
	if err == nil || !strings.Contains(err.Error(), "unknown target") {
		t.Fatalf("expected 422 error with body, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected a single call, got %d", n)
	}
}

func TestRecord_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.Backoff = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := c.Record(ctx, testCommand()); err == nil {
		t.Fatalf("expected cancellation error")
	}
}
