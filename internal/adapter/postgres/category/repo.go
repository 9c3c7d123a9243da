// Package category implements the Category store using PostgreSQL.
package category

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

const entityName = "category"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const categoryColumns = `id, user_id, name, color, type, counts_toward_mastery, weekly_target_hours::float8, parent_id, state, created_at, updated_at`

const createSQL = `
INSERT INTO categories (id, user_id, name, color, type, counts_toward_mastery, weekly_target_hours, parent_id, state, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + categoryColumns

const getByIDSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1 AND user_id = $2`

const listActiveSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE user_id = $1 AND state = 'ACTIVE'
ORDER BY lower(name)`

const listAllSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE user_id = $1
ORDER BY state, lower(name)`

const setStateSQL = `
UPDATE categories
SET state = $3, updated_at = $4
WHERE id = $1 AND user_id = $2
RETURNING ` + categoryColumns

const deleteSQL = `DELETE FROM categories WHERE id = $1 AND user_id = $2`

const countAllSQL = `SELECT count(*) FROM categories WHERE user_id = $1`

// ancestorsSQL walks parent links upward from $1, stopping at the first
// repeated id so a corrupted chain cannot loop forever.
const ancestorsSQL = `
WITH RECURSIVE chain(id, parent_id, path) AS (
    SELECT id, parent_id, ARRAY[id]
    FROM categories
    WHERE id = $1 AND user_id = $2
  UNION ALL
    SELECT c.id, c.parent_id, chain.path || c.id
    FROM categories c
    JOIN chain ON c.id = chain.parent_id
    WHERE c.user_id = $2 AND NOT c.id = ANY(chain.path)
)
SELECT id FROM chain WHERE id <> $1`

// GetByID returns a category owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, categoryID, userID)

	c, err := scanCategory(row)
	if err != nil {
		return nil, postgres.MapError(err, entityName, categoryID)
	}
	return c, nil
}

// List returns the user's categories, ACTIVE only unless includeArchived.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Category, error) {
	query := listActiveSQL
	if includeArchived {
		query = listAllSQL
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Count returns the number of categories the user owns in any state.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countAllSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// Ancestors returns the ids above categoryID in its parent chain, nearest first.
func (r *Repo) Ancestors(ctx context.Context, userID, categoryID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, ancestorsSQL, categoryID, userID)
	if err != nil {
		return nil, fmt.Errorf("category ancestors: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("category ancestors: %w", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// Create inserts a category. A duplicate ACTIVE name returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		c.ID, c.UserID, c.Name, string(c.Color), string(c.Type), c.CountsTowardMastery,
		c.WeeklyTargetHours, c.ParentID, string(c.State),
		c.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanCategory(row)
	if err != nil {
		return nil, postgres.MapError(err, entityName, c.ID)
	}
	return created, nil
}

// Update applies a partial update. Unset fields keep their value.
func (r *Repo) Update(ctx context.Context, userID, categoryID uuid.UUID, params domain.CategoryUpdateParams, now time.Time) (*domain.Category, error) {
	builder := psql.Update("categories").
		Set("updated_at", now.UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": categoryID, "user_id": userID}).
		Suffix("RETURNING " + categoryColumns)

	if params.Name != nil {
		builder = builder.Set("name", *params.Name)
	}
	if params.Color != nil {
		builder = builder.Set("color", string(*params.Color))
	}
	if params.Type != nil {
		builder = builder.Set("type", string(*params.Type))
	}
	if params.CountsTowardMastery != nil {
		builder = builder.Set("counts_toward_mastery", *params.CountsTowardMastery)
	}
	switch {
	case params.ClearWeeklyTarget:
		builder = builder.Set("weekly_target_hours", nil)
	case params.WeeklyTargetHours != nil:
		builder = builder.Set("weekly_target_hours", *params.WeeklyTargetHours)
	}
	switch {
	case params.ClearParent:
		builder = builder.Set("parent_id", nil)
	case params.ParentID != nil:
		builder = builder.Set("parent_id", *params.ParentID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category query: %w", err)
	}

	updated, err := scanCategory(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entityName, categoryID)
	}
	return updated, nil
}

// SetState moves a category between ACTIVE and ARCHIVED. Restoring onto a
// name already used by another ACTIVE category returns domain.ErrAlreadyExists.
func (r *Repo) SetState(ctx context.Context, userID, categoryID uuid.UUID, state domain.CategoryState, now time.Time) (*domain.Category, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, setStateSQL,
		categoryID, userID, string(state), now.UTC().Truncate(time.Microsecond),
	)

	c, err := scanCategory(row)
	if err != nil {
		return nil, postgres.MapError(err, entityName, categoryID)
	}
	return c, nil
}

// Delete hard-deletes a category. Sessions reference categories with
// ON DELETE RESTRICT, so a referenced category returns domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, categoryID, userID)
	if err != nil {
		return postgres.MapError(err, entityName, categoryID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entityName, categoryID, domain.ErrNotFound)
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		c          domain.Category
		color, typ string
		state      string
	)
	if err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &color, &typ, &c.CountsTowardMastery,
		&c.WeeklyTargetHours, &c.ParentID, &state, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Color = domain.CategoryColor(color)
	c.Type = domain.CategoryType(typ)
	c.State = domain.CategoryState(state)
	return &c, nil
}
