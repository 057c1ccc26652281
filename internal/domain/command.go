package domain

import (
	"time"

	"github.com/google/uuid"
)

type CommandKind string

const (
	CmdCreatePost  CommandKind = "create_post"
	CmdLikePost    CommandKind = "like_post"
	CmdCommentPost CommandKind = "comment_post"
	CmdSharePost   CommandKind = "share_post"
	CmdConnectUser CommandKind = "connect_user"
	CmdMessageUser CommandKind = "message_user"
	CmdSendMessage CommandKind = "send_message"
	CmdBookmarkJob CommandKind = "bookmark_job"
	CmdApplyJob    CommandKind = "apply_job"
)

// Command is a user action. It is recorded by a sink and never applied to
// the entity collections.
type Command struct {
	ID       uuid.UUID   `json:"id"`
	Kind     CommandKind `json:"kind"`
	ActorID  string      `json:"actor_id"`
	TargetID string      `json:"target_id,omitempty"`
	Body     string      `json:"body,omitempty"`
	IssuedAt time.Time   `json:"issued_at"`
}

type CommandStatus string

const (
	StatusAccepted CommandStatus = "accepted"
	StatusRejected CommandStatus = "rejected"
	StatusFailed   CommandStatus = "failed"
)

type CommandResult struct {
	CommandID uuid.UUID     `json:"command_id"`
	Status    CommandStatus `json:"status"`
	Reason    string        `json:"reason,omitempty"`
}
