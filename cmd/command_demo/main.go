// command_demo starts a mock action service, dispatches a few commands
// through the real dispatcher and action client, and prints the outcomes.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"proconnect/internal/adapter/repository"
	"proconnect/internal/domain"
	"proconnect/internal/usecase"
	"proconnect/pkg/actions"
)

type mockService struct {
	mu       sync.Mutex
	received []map[string]interface{}
	failures int
}

// startMockActions serves /v1/commands. The first failFirst requests get a
// 503 so the client's retry path is exercised.
func startMockActions(addr string, failFirst int) (*http.Server, *mockService) {
	svc := &mockService{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/commands", func(w http.ResponseWriter, r *http.Request) {
		svc.mu.Lock()
		defer svc.mu.Unlock()
		if svc.failures < failFirst {
			svc.failures++
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var cmd map[string]interface{}
		if err := json.Unmarshal(body, &cmd); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		svc.received = append(svc.received, cmd)
		w.WriteHeader(http.StatusAccepted)
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("mock action service failed: %v", err)
		}
	}()
	return srv, svc
}

func main() {
	addr := "127.0.0.1:18090"
	if v := os.Getenv("MOCK_ACTIONS_ADDR"); v != "" {
		addr = v
	}
	srv, svc := startMockActions(addr, 1)
	defer srv.Close()
	time.Sleep(200 * time.Millisecond)

	store, err := repository.NewDefaultEntityStore()
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}
	client := actions.NewClient("http://" + addr)
	client.Backoff = 100 * time.Millisecond
	d := usecase.NewDispatcher(store, client)

	reqs := []usecase.CommandRequest{
		{Kind: domain.CmdLikePost, TargetID: "1"},
		{Kind: domain.CmdSendMessage, TargetID: "1", Body: "Thanks, talk soon!"},
		{Kind: domain.CmdApplyJob, TargetID: "3"},
		{Kind: domain.CmdCommentPost, TargetID: "2"},
		{Kind: domain.CmdConnectUser, TargetID: "current"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, req := range reqs {
		res, err := d.Dispatch(ctx, req)
		if err != nil {
			fmt.Printf("%-14s target=%-8s -> %s: %v\n", req.Kind, req.TargetID, res.Status, err)
			continue
		}
		fmt.Printf("%-14s target=%-8s -> %s %s\n", req.Kind, req.TargetID, res.Status, res.Reason)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	fmt.Printf("action service received %d commands (%d retried)\n", len(svc.received), svc.failures)
}
