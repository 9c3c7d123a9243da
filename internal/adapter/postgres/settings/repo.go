// Package settings implements per-user settings persistence using PostgreSQL.
package settings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// Repo provides user settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const settingsColumns = `user_id, rounding_minutes, week_start, time_format, timezone, ai_enabled, updated_at`

const getSQL = `
SELECT ` + settingsColumns + `
FROM user_settings
WHERE user_id = $1`

const insertIfMissingSQL = `
INSERT INTO user_settings (user_id, rounding_minutes, week_start, time_format, timezone, ai_enabled, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO NOTHING`

const upsertSQL = `
INSERT INTO user_settings (user_id, rounding_minutes, week_start, time_format, timezone, ai_enabled, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
    rounding_minutes = EXCLUDED.rounding_minutes,
    week_start       = EXCLUDED.week_start,
    time_format      = EXCLUDED.time_format,
    timezone         = EXCLUDED.timezone,
    ai_enabled       = EXCLUDED.ai_enabled,
    updated_at       = EXCLUDED.updated_at
RETURNING ` + settingsColumns

// Get returns the stored settings. Returns domain.ErrNotFound if the user
// has never been bootstrapped.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	s, err := scanSettings(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}
	return s, nil
}

// CreateIfMissing inserts s unless settings already exist.
// It reports whether a row was written.
func (r *Repo) CreateIfMissing(ctx context.Context, s domain.UserSettings) (bool, error) {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertIfMissingSQL, args(s)...)
	if err != nil {
		return false, postgres.MapError(err, "user_settings", s.UserID)
	}
	return ct.RowsAffected() == 1, nil
}

// Upsert writes the full settings row and returns it.
func (r *Repo) Upsert(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error) {
	stored, err := scanSettings(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSQL, args(s)...))
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", s.UserID)
	}
	return stored, nil
}

func args(s domain.UserSettings) []any {
	return []any{
		s.UserID, s.RoundingMinutes, string(s.WeekStart), string(s.TimeFormat),
		s.Timezone, s.AIEnabled, s.UpdatedAt.UTC().Truncate(time.Microsecond),
	}
}

func scanSettings(row pgx.Row) (*domain.UserSettings, error) {
	var (
		s          domain.UserSettings
		weekStart  string
		timeFormat string
	)
	if err := row.Scan(&s.UserID, &s.RoundingMinutes, &weekStart, &timeFormat, &s.Timezone, &s.AIEnabled, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.WeekStart = domain.WeekStart(weekStart)
	s.TimeFormat = domain.TimeFormat(timeFormat)
	return &s, nil
}

