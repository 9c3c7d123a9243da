package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time at database precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCategory creates an ACTIVE category for userID with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Category {
	t.Helper()

	now := Now()
	c := domain.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Category " + uniqueSuffix(),
		Color:     domain.CategoryColorBlue,
		Type:      domain.CategoryTypeSkill,
		State:     domain.CategoryStateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, user_id, name, color, type, counts_toward_mastery, state, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.UserID, c.Name, string(c.Color), string(c.Type), c.CountsTowardMastery, string(c.State), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedSession creates a session in categoryID. A nil end seeds an open session.
func SeedSession(t *testing.T, pool *pgxpool.Pool, cat domain.Category, start time.Time, end *time.Time) domain.Session {
	t.Helper()

	now := Now()
	s := domain.Session{
		ID:         uuid.New(),
		UserID:     cat.UserID,
		CategoryID: cat.ID,
		Title:      "Session " + uniqueSuffix(),
		Start:      start.UTC().Truncate(time.Microsecond),
		Tags:       []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if end != nil {
		e := end.UTC().Truncate(time.Microsecond)
		s.End = &e
		s.DurationMin = domain.DurationMinutes(s.Start, e)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sessions (id, user_id, category_id, title, start_at, end_at, duration_min, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.UserID, s.CategoryID, s.Title, s.Start, s.End, s.DurationMin, s.Tags, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}

	return s
}

// SeedNote creates a note owned by userID without session links.
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Note {
	t.Helper()

	now := Now()
	n := domain.Note{
		ID:         uuid.New(),
		UserID:     userID,
		Body:       "note " + uniqueSuffix(),
		SessionIDs: []uuid.UUID{},
		Tags:       []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notes (id, user_id, body, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		n.ID, n.UserID, n.Body, n.Tags, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}

	return n
}
