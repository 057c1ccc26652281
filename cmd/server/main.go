package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "proconnect/internal/adapter/http"
	repo "proconnect/internal/adapter/repository"
	"proconnect/internal/infrastructure/migration"
	"proconnect/internal/usecase"
	"proconnect/pkg/actions"
	"proconnect/pkg/infrastructure"

	"golang.org/x/sync/errgroup"
)

var (
	_ usecase.Sink       = (*repo.CommandsRepo)(nil)
	_ usecase.Sink       = (*repo.SQLiteCommandLog)(nil)
	_ usecase.Sink       = (*repo.LogSink)(nil)
	_ usecase.Sink       = (*actions.Client)(nil)
	_ usecase.CommandLog = (*repo.CommandsRepo)(nil)
	_ usecase.CommandLog = (*repo.SQLiteCommandLog)(nil)
	_ usecase.CommandLog = (*repo.LogSink)(nil)
	_ usecase.Renderer   = (*infrastructure.ChromedpRenderer)(nil)
)

const sessionTTL = 30 * time.Minute

func main() {
	cfg := infrastructure.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repo.NewDefaultEntityStore()
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}

	sink, history, closeSink := buildSink(ctx, cfg)
	defer closeSink()

	var renderer usecase.Renderer
	if cfg.ChromePath != "" {
		renderer = infrastructure.NewChromedpRenderer(cfg.ChromePath)
	} else {
		log.Printf("warning: CHROME_PATH not set, profile PDF export disabled")
	}
	exporter, err := usecase.NewProfileExporter(store, renderer)
	if err != nil {
		log.Fatalf("profile exporter: %v", err)
	}

	h := httpadapter.NewHandler(store, usecase.NewDispatcher(store, sink), history, exporter, httpadapter.NewSessions(store, sessionTTL))
	app := httpadapter.NewApp(h)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("listening", "port", cfg.Port)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		return app.ShutdownWithTimeout(cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("server failed: %v", err)
	}
}

// buildSink picks the command sink: the action service when configured,
// then the Postgres log, then the SQLite log, falling back to logging only.
// The returned CommandLog reads back what the sink recorded; sinks that keep
// nothing read back as empty.
func buildSink(ctx context.Context, cfg infrastructure.Config) (usecase.Sink, usecase.CommandLog, func()) {
	logOnly := repo.NewLogSink(slog.Default())
	if cfg.ActionServiceURL != "" {
		return actions.NewClient(cfg.ActionServiceURL), logOnly, func() {}
	}

	if cfg.CommandsDBURL != "" {
		pool, err := infrastructure.NewCommandsPool(ctx, cfg.CommandsDBURL)
		if err != nil {
			log.Printf("warning: commands DB not available: %v", err)
		} else if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Printf("warning: commands DB migrations failed: %v", err)
			pool.Close()
		} else {
			r := repo.NewCommandsRepo(pool)
			return r, r, pool.Close
		}
	}

	if cfg.CommandsSQLite != "" {
		db, err := infrastructure.OpenSQLite(cfg.CommandsSQLite)
		if err != nil {
			log.Printf("warning: sqlite command log not available: %v", err)
		} else {
			l := repo.NewSQLiteCommandLog(db)
			if err := l.Migrate(ctx); err != nil {
				log.Printf("warning: sqlite command log migration failed: %v", err)
				_ = db.Close()
			} else {
				return l, l, func() { _ = db.Close() }
			}
		}
	}

	return logOnly, logOnly, func() {}
}
