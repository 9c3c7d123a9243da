// Package note implements the Note store using PostgreSQL.
// Session links live in note_sessions and are only written for sessions the
// note's owner also owns.
package note

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

const entityName = "note"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// noteColumns selects a note with its linked session ids aggregated in.
const noteColumns = `n.id, n.user_id, n.body, n.tags,
    COALESCE((SELECT array_agg(ns.session_id ORDER BY ns.session_id) FROM note_sessions ns WHERE ns.note_id = n.id), '{}') AS session_ids,
    n.created_at, n.updated_at`

const insertSQL = `
INSERT INTO notes (id, user_id, body, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)`

const getByIDSQL = `
SELECT ` + noteColumns + `
FROM notes n
WHERE n.id = $1 AND n.user_id = $2`

const clearLinksSQL = `DELETE FROM note_sessions WHERE note_id = $1`

// linkSessionsSQL links only sessions owned by $3; the caller compares the
// affected row count against the requested ids.
const linkSessionsSQL = `
INSERT INTO note_sessions (note_id, session_id)
SELECT $1, s.id FROM sessions s
WHERE s.id = ANY($2::uuid[]) AND s.user_id = $3
ON CONFLICT DO NOTHING`

const deleteSQL = `DELETE FROM notes WHERE id = $1 AND user_id = $2`

// GetByID returns a note owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	n, err := scanNote(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, noteID, userID))
	if err != nil {
		return nil, postgres.MapError(err, entityName, noteID)
	}
	return n, nil
}

// List returns the user's notes newest first, optionally filtered by a linked
// session or a tag.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) ([]*domain.Note, error) {
	builder := psql.Select(noteColumns).
		From("notes n").
		Where(sq.Eq{"n.user_id": userID}).
		OrderBy("n.created_at DESC", "n.id")

	if filter.SessionID != nil {
		builder = builder.Where("EXISTS (SELECT 1 FROM note_sessions ns WHERE ns.note_id = n.id AND ns.session_id = ?)", *filter.SessionID)
	}
	if filter.Tag != nil {
		builder = builder.Where("? = ANY(n.tags)", *filter.Tag)
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []*domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create inserts the note and its session links. Must run inside a
// transaction; a session id the owner does not own returns domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	if _, err := q.Exec(ctx, insertSQL, n.ID, n.UserID, n.Body, tags, n.CreatedAt.UTC().Truncate(time.Microsecond)); err != nil {
		return nil, postgres.MapError(err, entityName, n.ID)
	}

	if err := r.linkSessions(ctx, q, n.UserID, n.ID, n.SessionIDs); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, n.UserID, n.ID)
}

// Update applies a partial update and, when SessionsSet, replaces the links.
// Must run inside a transaction.
func (r *Repo) Update(ctx context.Context, userID, noteID uuid.UUID, params domain.NoteUpdateParams, now time.Time) (*domain.Note, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	builder := psql.Update("notes").
		Set("updated_at", now.UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": noteID, "user_id": userID})
	if params.Body != nil {
		builder = builder.Set("body", *params.Body)
	}
	if params.TagsSet {
		tags := params.Tags
		if tags == nil {
			tags = []string{}
		}
		builder = builder.Set("tags", tags)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update note query: %w", err)
	}

	ct, err := q.Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entityName, noteID)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s %s: %w", entityName, noteID, domain.ErrNotFound)
	}

	if params.SessionsSet {
		if _, err := q.Exec(ctx, clearLinksSQL, noteID); err != nil {
			return nil, postgres.MapError(err, entityName, noteID)
		}
		if err := r.linkSessions(ctx, q, userID, noteID, params.SessionIDs); err != nil {
			return nil, err
		}
	}

	return r.GetByID(ctx, userID, noteID)
}

// Delete removes a note and its links. Sessions pointing at it keep existing
// with note_id cleared.
func (r *Repo) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, noteID, userID)
	if err != nil {
		return postgres.MapError(err, entityName, noteID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entityName, noteID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) linkSessions(ctx context.Context, q postgres.Querier, userID, noteID uuid.UUID, sessionIDs []uuid.UUID) error {
	if len(sessionIDs) == 0 {
		return nil
	}
	ct, err := q.Exec(ctx, linkSessionsSQL, noteID, sessionIDs, userID)
	if err != nil {
		return postgres.MapError(err, entityName, noteID)
	}
	if int(ct.RowsAffected()) != len(sessionIDs) {
		return fmt.Errorf("%s %s: linked session: %w", entityName, noteID, domain.ErrNotFound)
	}
	return nil
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	if err := row.Scan(&n.ID, &n.UserID, &n.Body, &n.Tags, &n.SessionIDs, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.SessionIDs == nil {
		n.SessionIDs = []uuid.UUID{}
	}
	return &n, nil
}
