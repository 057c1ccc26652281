package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"proconnect/internal/domain"

	"github.com/google/uuid"
)

// Sink records accepted commands. Implementations forward them to whatever
// service owns the side effect; the entity collections are never touched.
type Sink interface {
	Record(ctx context.Context, cmd domain.Command) error
}

// CommandRequest is a command as issued by the presentation layer. The actor
// is always the current user.
type CommandRequest struct {
	Kind     domain.CommandKind `json:"kind"`
	TargetID string             `json:"targetId,omitempty"`
	Body     string             `json:"body,omitempty"`
}

type Dispatcher struct {
	store EntityStore
	sink  Sink
	now   func() time.Time
}

func NewDispatcher(store EntityStore, sink Sink) *Dispatcher {
	return &Dispatcher{store: store, sink: sink, now: time.Now}
}

// Dispatch validates req, records it and reports the outcome. Rejected
// commands are not recorded and return a nil error; a sink failure returns
// a failed result together with the error.
func (d *Dispatcher) Dispatch(ctx context.Context, req CommandRequest) (domain.CommandResult, error) {
	cmd := domain.Command{
		ID:       uuid.New(),
		Kind:     req.Kind,
		ActorID:  d.store.CurrentUserID(),
		TargetID: strings.TrimSpace(req.TargetID),
		Body:     strings.TrimSpace(req.Body),
		IssuedAt: d.now().UTC(),
	}
	res := domain.CommandResult{CommandID: cmd.ID}

	if v := d.Validate(cmd); !v.Valid {
		res.Status = domain.StatusRejected
		res.Reason = "invalid: " + strings.Join(v.Missing, ", ")
		slog.Info("command rejected", "id", cmd.ID, "kind", cmd.Kind, "missing", v.Missing)
		return res, nil
	}

	if err := d.sink.Record(ctx, cmd); err != nil {
		res.Status = domain.StatusFailed
		res.Reason = "not recorded"
		slog.Error("command not recorded", "id", cmd.ID, "kind", cmd.Kind, "error", err)
		return res, fmt.Errorf("record command %s: %w", cmd.ID, err)
	}

	res.Status = domain.StatusAccepted
	slog.Info("command accepted", "id", cmd.ID, "kind", cmd.Kind, "target", cmd.TargetID)
	return res, nil
}

// ValidationResult lists the missing or invalid fields of a command.
type ValidationResult struct {
	Valid   bool
	Missing []string
}

// Validate checks the kind, that the target resolves for the kind and that
// text-bearing commands carry a body.
func (d *Dispatcher) Validate(cmd domain.Command) *ValidationResult {
	res := &ValidationResult{Valid: true, Missing: []string{}}
	miss := func(field string) {
		res.Valid = false
		res.Missing = append(res.Missing, field)
	}

	target, needsBody, ok := commandShape(cmd.Kind)
	if !ok {
		miss("kind")
		return res
	}

	if target != "" {
		if cmd.TargetID == "" {
			miss("targetId")
		} else if !d.targetExists(target, cmd.TargetID) {
			miss("targetId (unknown " + target + ")")
		}
	}
	if needsBody && cmd.Body == "" {
		miss("body")
	}
	return res
}

// commandShape returns the entity kind the command targets ("" for none)
// and whether it needs a body.
func commandShape(k domain.CommandKind) (target string, needsBody bool, ok bool) {
	switch k {
	case domain.CmdCreatePost:
		return "", true, true
	case domain.CmdLikePost, domain.CmdSharePost:
		return "post", false, true
	case domain.CmdCommentPost:
		return "post", true, true
	case domain.CmdConnectUser, domain.CmdMessageUser:
		return "user", false, true
	case domain.CmdSendMessage:
		return "conversation", true, true
	case domain.CmdBookmarkJob, domain.CmdApplyJob:
		return "job", false, true
	}
	return "", false, false
}

func (d *Dispatcher) targetExists(target, id string) bool {
	var ok bool
	switch target {
	case "post":
		_, ok = d.store.Post(id)
	case "user":
		_, ok = d.store.User(id)
		ok = ok && id != d.store.CurrentUserID()
	case "conversation":
		_, ok = d.store.Conversation(id)
	case "job":
		_, ok = d.store.Job(id)
	}
	return ok
}
