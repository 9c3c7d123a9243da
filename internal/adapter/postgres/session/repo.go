// Package session implements the Session store using PostgreSQL.
// The single-open-session rule lives in the partial unique index
// sessions_one_open_per_user; this package translates its violations
// into domain.ErrConflict.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

const (
	constraintOneOpen = "sessions_one_open_per_user"
	entityName        = "session"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, category_id, title, start_at, end_at, duration_min, quality, tags, note_id, created_at, updated_at`

const createSQL = `
INSERT INTO sessions (id, user_id, category_id, title, start_at, end_at, duration_min, quality, tags, note_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, NULL, 0, NULL, $6, NULL, $7, $7)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1 AND user_id = $2`

const getActiveSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE user_id = $1 AND end_at IS NULL
ORDER BY start_at DESC
LIMIT 1`

const stopSQL = `
UPDATE sessions
SET end_at = $3,
    duration_min = GREATEST(0, $4::integer),
    quality = COALESCE($5::numeric, quality),
    tags = COALESCE($6::text[], tags),
    updated_at = $3
WHERE id = $1 AND user_id = $2 AND end_at IS NULL
RETURNING ` + sessionColumns

const updateTimesSQL = `
UPDATE sessions
SET start_at = $3, end_at = $4, duration_min = $5, updated_at = $6
WHERE id = $1 AND user_id = $2
RETURNING ` + sessionColumns

const deleteSQL = `DELETE FROM sessions WHERE id = $1 AND user_id = $2`

const countByCategorySQL = `
SELECT count(*) FROM sessions WHERE user_id = $1 AND category_id = $2`

const totalsByCategorySQL = `
SELECT category_id, COALESCE(sum(duration_min), 0)::integer, count(*)::integer
FROM sessions
WHERE user_id = $1 AND end_at IS NOT NULL AND start_at >= $2 AND start_at < $3
GROUP BY category_id
ORDER BY category_id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, sessionID, userID)

	s, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, entityName, sessionID)
	}
	return s, nil
}

// GetActive returns the open session for a user, the most recent start first.
// Returns domain.ErrNotFound if no session is open.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getActiveSQL, userID)

	s, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, entityName, uuid.Nil)
	}
	return s, nil
}

// List returns sessions overlapping [From, To) ordered by start DESC, and the
// total number of matches ignoring Limit/Offset. Limit <= 0 means no limit.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]*domain.Session, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := sq.And{sq.Eq{"user_id": userID}}
	if filter.CategoryID != nil {
		where = append(where, sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.To != nil {
		where = append(where, sq.Lt{"start_at": *filter.To})
	}
	if filter.From != nil {
		where = append(where, sq.Or{sq.Eq{"end_at": nil}, sq.Gt{"end_at": *filter.From}})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("sessions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count sessions query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	builder := psql.Select(sessionColumns).From("sessions").Where(where).OrderBy("start_at DESC", "id")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list sessions query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, total, nil
}

// CountByCategory returns how many sessions reference categoryID.
func (r *Repo) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countByCategorySQL, userID, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count sessions by category: %w", err)
	}
	return n, nil
}

// TotalsByCategory sums the durations of closed sessions started in [from, to).
func (r *Repo) TotalsByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CategoryMinutes, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, totalsByCategorySQL, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("totals by category: %w", err)
	}
	defer rows.Close()

	totals := []domain.CategoryMinutes{}
	for rows.Next() {
		var t domain.CategoryMinutes
		if err := rows.Scan(&t.CategoryID, &t.Minutes, &t.Sessions); err != nil {
			return nil, fmt.Errorf("scan totals by category: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("totals by category: %w", err)
	}
	return totals, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new open session.
// A second open session for the same user violates sessions_one_open_per_user
// and returns domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		s.CategoryID,
		s.Title,
		s.Start.UTC().Truncate(time.Microsecond),
		tags,
		s.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, mapWriteError(err, s.ID)
	}
	return created, nil
}

// Stop closes an open session at end. The update only matches rows with
// end_at IS NULL, so of two concurrent stops exactly one wins; the other
// gets domain.ErrInvalidState. durationMin is clamped to >= 0.
func (r *Repo) Stop(ctx context.Context, userID, sessionID uuid.UUID, end time.Time, durationMin int, quality *float64, tags []string) (*domain.Session, error) {
	end = end.UTC().Truncate(time.Microsecond)

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, stopSQL,
		sessionID, userID, end, durationMin, quality, tags,
	)

	stopped, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", entityName, sessionID, domain.NewInvalidStateError("session is not running"))
	}
	if err != nil {
		return nil, postgres.MapError(err, entityName, sessionID)
	}
	return stopped, nil
}

// UpdateTimes writes start, end and durationMin in one statement.
// Reopening (End == nil) while another session is open returns domain.ErrConflict.
func (r *Repo) UpdateTimes(ctx context.Context, userID, sessionID uuid.UUID, times domain.SessionTimes, now time.Time) (*domain.Session, error) {
	var end *time.Time
	if times.End != nil {
		e := times.End.UTC().Truncate(time.Microsecond)
		end = &e
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateTimesSQL,
		sessionID, userID,
		times.Start.UTC().Truncate(time.Microsecond),
		end,
		times.DurationMin,
		now.UTC().Truncate(time.Microsecond),
	)

	updated, err := scanSession(row)
	if err != nil {
		return nil, mapWriteError(err, sessionID)
	}
	return updated, nil
}

// UpdateDetails applies non-temporal changes. Unset fields keep their value.
func (r *Repo) UpdateDetails(ctx context.Context, userID, sessionID uuid.UUID, params domain.SessionDetailsParams, now time.Time) (*domain.Session, error) {
	builder := psql.Update("sessions").
		Set("updated_at", now.UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": sessionID, "user_id": userID}).
		Suffix("RETURNING " + sessionColumns)

	if params.Title != nil {
		builder = builder.Set("title", *params.Title)
	}
	if params.Quality != nil {
		builder = builder.Set("quality", *params.Quality)
	}
	if params.TagsSet {
		tags := params.Tags
		if tags == nil {
			tags = []string{}
		}
		builder = builder.Set("tags", tags)
	}
	switch {
	case params.ClearNote:
		builder = builder.Set("note_id", nil)
	case params.NoteID != nil:
		builder = builder.Set("note_id", *params.NoteID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update session query: %w", err)
	}

	updated, err := scanSession(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entityName, sessionID)
	}
	return updated, nil
}

// Delete removes a session. Returns domain.ErrNotFound if nothing matched.
func (r *Repo) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, sessionID, userID)
	if err != nil {
		return postgres.MapError(err, entityName, sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entityName, sessionID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mapWriteError(err error, sessionID uuid.UUID) error {
	if postgres.ConstraintName(err) == constraintOneOpen {
		return fmt.Errorf("%s %s: %w", entityName, sessionID, domain.NewConflictError("another session is already running"))
	}
	return postgres.MapError(err, entityName, sessionID)
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(
		&s.ID, &s.UserID, &s.CategoryID, &s.Title,
		&s.Start, &s.End, &s.DurationMin, &s.Quality,
		&s.Tags, &s.NoteID, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	return &s, nil
}

func scanSessions(rows pgx.Rows) ([]*domain.Session, error) {
	sessions := []*domain.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
