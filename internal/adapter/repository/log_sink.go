package repository

import (
	"context"
	"log/slog"

	"proconnect/internal/domain"
)

// LogSink only logs commands. It is the fallback when no command log is
// configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(ctx context.Context, cmd domain.Command) error {
	s.logger.InfoContext(ctx, "command recorded",
		"id", cmd.ID, "kind", cmd.Kind, "actor", cmd.ActorID, "target", cmd.TargetID)
	return nil
}

// Recent is always empty; nothing is kept.
func (s *LogSink) Recent(context.Context, int) ([]domain.Command, error) {
	return []domain.Command{}, nil
}
