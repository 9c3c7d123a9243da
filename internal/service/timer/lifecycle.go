package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// GetActive returns the user's running session with live elapsed time, or nil if none.
func (s *Service) GetActive(ctx context.Context) (*ActiveSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active session: %w", err)
	}

	elapsed := session.Elapsed(s.clock.Now())
	return &ActiveSession{
		Session:    session,
		Elapsed:    elapsed,
		ElapsedMin: domain.RoundMinutes(elapsed),
	}, nil
}

// Start opens a new session at the current time. A user with a running
// session gets domain.ErrConflict; the running session is left untouched.
func (s *Service) Start(ctx context.Context, input StartInput) (*domain.Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category.IsArchived() {
		return nil, domain.NewValidationError("categoryId", "category is archived")
	}

	// Fast path; the partial unique index rejects the racing second insert.
	running, err := s.sessions.GetActive(ctx, userID)
	if err == nil {
		s.log.InfoContext(ctx, "start rejected, session already running",
			slog.String("user_id", userID.String()),
			slog.String("session_id", running.ID.String()),
		)
		return nil, domain.NewConflictError("another session is already running")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check active session: %w", err)
	}

	now := s.clock.Now()
	session := &domain.Session{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: category.ID,
		Title:      input.Title,
		Start:      now,
		Tags:       []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var created *domain.Session
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.sessions.Create(txCtx, session)
		if createErr != nil {
			return fmt.Errorf("create session: %w", createErr)
		}

		return s.writeAudit(txCtx, userID, created.ID, domain.AuditActionCreate, map[string]any{
			"category_id": category.ID.String(),
			"title":       created.Title,
			"start":       created.Start,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.String("category_id", category.ID.String()),
	)

	return created, nil
}

// Stop closes a running session at the current time and fixes its duration.
// Stopping a closed session returns domain.ErrInvalidState.
func (s *Service) Stop(ctx context.Context, input StopInput) (*domain.Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.IsOpen() {
		return nil, domain.NewInvalidStateError("session is not running")
	}

	end := s.clock.Now()
	durationMin := max(0, domain.DurationMinutes(session.Start, end))

	var stopped *domain.Session
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var stopErr error
		stopped, stopErr = s.sessions.Stop(txCtx, userID, session.ID, end, durationMin, input.Quality, input.Tags)
		if stopErr != nil {
			return fmt.Errorf("stop session: %w", stopErr)
		}

		return s.writeAudit(txCtx, userID, session.ID, domain.AuditActionStop, map[string]any{
			"end":          stopped.End,
			"duration_min": stopped.DurationMin,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session stopped",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("duration_min", stopped.DurationMin),
	)

	return stopped, nil
}
