// Command migrate applies or inspects the database schema.
//
// Usage:
//
//	migrate [up|down|status|version]
//
// With no argument it runs "up". Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/focuslog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/focuslog-backend/internal/app"
	"github.com/heartmarshall/focuslog-backend/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := run(ctx, command, pool, logger); err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, pool *pgxpool.Pool, logger *slog.Logger) error {
	if command == "up" {
		return app.Migrate(ctx, pool, logger)
	}

	provider, closeDB, err := app.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer closeDB() //nolint:errcheck

	switch command {
	case "down":
		res, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Info("migration rolled back",
			slog.Int64("version", res.Source.Version),
			slog.String("file", res.Source.Path),
			slog.Duration("duration", res.Duration),
		)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("file", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt),
			)
		}
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("migrate version: %w", err)
		}
		logger.Info("schema version", slog.Int64("version", v))
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
