package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations applies the command log schema on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the migrations in the order they run.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_commands", Up: createCommands},
		{Name: "index_commands_issued_at", Up: indexCommandsIssuedAt},
		{Name: "index_commands_actor_kind", Up: indexCommandsActorKind},
	}
}

func createCommands(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS commands (
			id UUID PRIMARY KEY,
			kind TEXT NOT NULL,
			actor_id TEXT NOT NULL,
			target_id TEXT,
			body TEXT,
			issued_at TIMESTAMPTZ NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

func indexCommandsIssuedAt(ctx context.Context, pool *pgxpool.Pool) error {
	return createIndex(ctx, pool, `CREATE INDEX IF NOT EXISTS idx_commands_issued_at ON commands (issued_at DESC);`)
}

func indexCommandsActorKind(ctx context.Context, pool *pgxpool.Pool) error {
	return createIndex(ctx, pool, `CREATE INDEX IF NOT EXISTS idx_commands_actor_kind ON commands (actor_id, kind);`)
}

// createIndex logs and swallows index failures; the log works without them.
func createIndex(ctx context.Context, pool *pgxpool.Pool, query string) error {
	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error creating index (may already exist)", "error", err)
		return nil
	}
	return nil
}
