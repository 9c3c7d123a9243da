package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// PostgreSQL error codes handled by MapError.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeRestrictViolation   = "23001"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
//
// A foreign key violation maps to ErrNotFound (the referenced row is absent),
// except when a RESTRICT/NO ACTION reference blocks a delete: that maps to ErrConflict.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			if isDeleteBlocked(pgErr) {
				return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
			}
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case codeRestrictViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		case codeCheckViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ConstraintName returns the violated constraint name, or "" if err is not a PgError.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// isDeleteBlocked reports whether a foreign key error was raised by deleting or
// updating a referenced row, as opposed to inserting a dangling reference.
// PostgreSQL phrases the former as `... is still referenced from table ...`.
func isDeleteBlocked(pgErr *pgconn.PgError) bool {
	return strings.Contains(strings.ToLower(pgErr.Detail), "is still referenced")
}
