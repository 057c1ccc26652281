package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"proconnect/internal/domain"

	"github.com/google/uuid"
)

// SQLiteCommandLog records commands into a local SQLite file.
type SQLiteCommandLog struct {
	db *sql.DB
}

func NewSQLiteCommandLog(db *sql.DB) *SQLiteCommandLog {
	return &SQLiteCommandLog{db: db}
}

func (l *SQLiteCommandLog) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS commands (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			actor_id TEXT NOT NULL,
			target_id TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			issued_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_commands_issued ON commands(issued_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := l.db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("sqlite migrate: %w", err)
		}
	}
	return nil
}

func (l *SQLiteCommandLog) Record(ctx context.Context, cmd domain.Command) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO commands (id, kind, actor_id, target_id, body, issued_at_unixms) VALUES (?, ?, ?, ?, ?, ?)`,
		cmd.ID.String(), string(cmd.Kind), cmd.ActorID, cmd.TargetID, cmd.Body, cmd.IssuedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert command: %w", err)
	}
	return nil
}

// Recent returns up to limit commands, newest first.
func (l *SQLiteCommandLog) Recent(ctx context.Context, limit int) ([]domain.Command, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, kind, actor_id, target_id, body, issued_at_unixms FROM commands ORDER BY issued_at_unixms DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query commands: %w", err)
	}
	defer rows.Close()

	out := []domain.Command{}
	for rows.Next() {
		var (
			id, kind string
			issued   int64
			c        domain.Command
		)
		if err := rows.Scan(&id, &kind, &c.ActorID, &c.TargetID, &c.Body, &issued); err != nil {
			return nil, err
		}
		if c.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("command id %q: %w", id, err)
		}
		c.Kind = domain.CommandKind(kind)
		c.IssuedAt = time.UnixMilli(issued).UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}
