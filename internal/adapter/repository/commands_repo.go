package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"proconnect/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CommandsRepo is the Postgres command log. A nil pool turns it into a
// no-op so the server can run without a database.
type CommandsRepo struct {
	pool *pgxpool.Pool
}

func NewCommandsRepo(pool *pgxpool.Pool) *CommandsRepo {
	return &CommandsRepo{pool: pool}
}

func (r *CommandsRepo) Record(ctx context.Context, cmd domain.Command) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO commands (id, kind, actor_id, target_id, body, issued_at)
		VALUES ($1,$2,$3,NULLIF($4,''),NULLIF($5,''),$6)
		ON CONFLICT (id) DO NOTHING`,
		cmd.ID, string(cmd.Kind), cmd.ActorID, cmd.TargetID, cmd.Body, cmd.IssuedAt)
	if err != nil {
		return fmt.Errorf("insert command: %w", err)
	}
	return nil
}

// Recent returns the newest commands first.
func (r *CommandsRepo) Recent(ctx context.Context, limit int) ([]domain.Command, error) {
	out := []domain.Command{}
	if r.pool == nil {
		return out, nil
	}
	if limit <= 0 {
		limit = 50
	}
	err := queryJSON(ctx, r.pool, `SELECT coalesce(json_agg(row_to_json(c) ORDER BY c.issued_at DESC), '[]')
		FROM (SELECT id, kind, actor_id, target_id, body, issued_at FROM commands ORDER BY issued_at DESC LIMIT $1) c`,
		&out, limit)
	if err != nil {
		return nil, fmt.Errorf("recent commands: %w", err)
	}
	return out, nil
}

// rowQuerier is the part of *pgxpool.Pool used by queryJSON.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// queryJSON runs a query returning a single json value and unmarshals it
// into dst.
func queryJSON(ctx context.Context, q rowQuerier, sql string, dst interface{}, args ...interface{}) error {
	var raw []byte
	if err := q.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
