package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/focuslog-backend/migrations"
)

// NewMigrator returns a goose provider over the embedded migrations. The
// returned close func releases the database/sql handle wrapping pool.
func NewMigrator(pool *pgxpool.Pool) (*goose.Provider, func() error, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, db.Close, nil
}

// Migrate applies all pending migrations and logs each one.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	provider, closeDB, err := NewMigrator(pool)
	if err != nil {
		return err
	}
	defer closeDB() //nolint:errcheck

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	if len(results) == 0 {
		logger.InfoContext(ctx, "schema up to date")
	}
	return nil
}
