package usecase

import (
	"context"

	"proconnect/internal/domain"
)

// CommandLog reads back recorded commands, newest first.
type CommandLog interface {
	Recent(ctx context.Context, limit int) ([]domain.Command, error)
}
