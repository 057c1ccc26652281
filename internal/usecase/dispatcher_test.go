package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"proconnect/internal/domain"
)

type recordingSink struct {
	mu   sync.Mutex
	cmds []domain.Command
	err  error
}

func (s *recordingSink) Record(_ context.Context, cmd domain.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.cmds = append(s.cmds, cmd)
	return nil
}

func newDispatcher(t *testing.T, sink Sink) *Dispatcher {
	t.Helper()
	d := NewDispatcher(newStore(t), sink)
	d.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	return d
}

func TestDispatch_AcceptedIsRecorded(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	d := newDispatcher(t, sink)

	res, err := d.Dispatch(context.Background(), CommandRequest{Kind: domain.CmdLikePost, TargetID: "1"})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res.Status != domain.StatusAccepted {
		t.Fatalf("expected accepted, got %s (%s)", res.Status, res.Reason)
	}
	if len(sink.cmds) != 1 {
		t.Fatalf("expected one recorded command, got %d", len(sink.cmds))
	}
	got := sink.cmds[0]
	if got.ID != res.CommandID || got.ActorID != "current" || got.TargetID != "1" {
		t.Fatalf("unexpected recorded command %+v", got)
	}
	if !got.IssuedAt.Equal(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected issue time %v", got.IssuedAt)
	}
}

func TestDispatch_BodyIsTrimmed(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	d := newDispatcher(t, sink)

	res, _ := d.Dispatch(context.Background(), CommandRequest{Kind: domain.CmdCreatePost, Body: "  hello network \n"})
	if res.Status != domain.StatusAccepted {
		t.Fatalf("expected accepted, got %s (%s)", res.Status, res.Reason)
	}
	if sink.cmds[0].Body != "hello network" {
		t.Fatalf("expected trimmed body, got %q", sink.cmds[0].Body)
	}
}

func TestDispatch_RejectedIsNotRecorded(t *testing.T) {
	t.Parallel()

	cases := []CommandRequest{
		{Kind: "poke_user", TargetID: "1"},
		{Kind: domain.CmdCreatePost, Body: "   "},
		{Kind: domain.CmdCommentPost, TargetID: "1"},
		{Kind: domain.CmdLikePost, TargetID: "42"},
		{Kind: domain.CmdConnectUser, TargetID: "current"},
		{Kind: domain.CmdSendMessage, TargetID: "9", Body: "hi"},
		{Kind: domain.CmdApplyJob},
	}

	sink := &recordingSink{}
	d := newDispatcher(t, sink)
	for _, req := range cases {
		res, err := d.Dispatch(context.Background(), req)
		if err != nil {
			t.Fatalf("%+v: rejected commands must not return an error, got %v", req, err)
		}
		if res.Status != domain.StatusRejected || !strings.HasPrefix(res.Reason, "invalid: ") {
			t.Fatalf("%+v: expected rejected, got %s (%s)", req, res.Status, res.Reason)
		}
	}
	if len(sink.cmds) != 0 {
		t.Fatalf("expected nothing recorded, got %d", len(sink.cmds))
	}
}

func TestDispatch_SinkFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("sink down")
	d := newDispatcher(t, &recordingSink{err: boom})

	res, err := d.Dispatch(context.Background(), CommandRequest{Kind: domain.CmdBookmarkJob, TargetID: "2"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped sink error, got %v", err)
	}
	if res.Status != domain.StatusFailed {
		t.Fatalf("expected failed, got %s", res.Status)
	}
}

func TestValidate_ListsEveryProblem(t *testing.T) {
	t.Parallel()

	d := newDispatcher(t, &recordingSink{})
	v := d.Validate(domain.Command{Kind: domain.CmdCommentPost})
	if v.Valid {
		t.Fatalf("expected invalid command")
	}
	if len(v.Missing) != 2 || v.Missing[0] != "targetId" || v.Missing[1] != "body" {
		t.Fatalf("unexpected missing fields %v", v.Missing)
	}
}
