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

// Update applies a boundary edit and a detail edit of one session together.
// Both parts are validated, and the linked note checked, before anything is
// written; the writes share one transaction, so a rejected update leaves the
// stored session unchanged.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.apply(ctx, userID, input.SessionID, input.Times, &input.Details)
}

// apply loads the session, checks every requested change against it and
// persists them in one transaction. A nil times or an empty details part is
// skipped.
func (s *Service) apply(ctx context.Context, userID, sessionID uuid.UUID, times *RescheduleInput, details *UpdateDetailsInput) (*domain.Session, error) {
	if details != nil && details.IsEmpty() {
		details = nil
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if times == nil && details == nil {
		return s.withLiveDuration(session), nil
	}

	var resolved domain.SessionTimes
	if times != nil {
		resolved, err = s.resolveTimes(session, *times)
		if err != nil {
			return nil, err
		}
		if err := s.checkReopen(ctx, userID, session, resolved); err != nil {
			return nil, err
		}
	}

	var params domain.SessionDetailsParams
	if details != nil {
		if details.NoteID != nil {
			if _, err := s.notes.GetByID(ctx, userID, *details.NoteID); err != nil {
				return nil, fmt.Errorf("get note: %w", err)
			}
		}
		params = domain.SessionDetailsParams{
			Title:     details.Title,
			Quality:   details.Quality,
			Tags:      details.Tags,
			TagsSet:   details.TagsSet,
			NoteID:    details.NoteID,
			ClearNote: details.ClearNote,
		}
	}

	updated := session
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()

		if times != nil {
			next, updateErr := s.sessions.UpdateTimes(txCtx, userID, session.ID, resolved, now)
			if updateErr != nil {
				return fmt.Errorf("update session times: %w", updateErr)
			}
			if auditErr := s.writeAudit(txCtx, userID, session.ID, domain.AuditActionUpdate, map[string]any{
				"start":        map[string]any{"old": updated.Start, "new": next.Start},
				"end":          map[string]any{"old": updated.End, "new": next.End},
				"duration_min": map[string]any{"old": updated.DurationMin, "new": next.DurationMin},
			}); auditErr != nil {
				return auditErr
			}
			updated = next
		}

		if details != nil {
			next, updateErr := s.sessions.UpdateDetails(txCtx, userID, session.ID, params, now)
			if updateErr != nil {
				return fmt.Errorf("update session details: %w", updateErr)
			}
			if auditErr := s.writeAudit(txCtx, userID, session.ID, domain.AuditActionUpdate, detailChanges(updated, next, *details)); auditErr != nil {
				return auditErr
			}
			updated = next
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if times != nil {
		s.log.InfoContext(ctx, "session rescheduled",
			slog.String("user_id", userID.String()),
			slog.String("session_id", session.ID.String()),
			slog.Int("duration_min", updated.DurationMin),
			slog.Bool("open", updated.IsOpen()),
		)
		// Stored duration of a reopened session stays 0.
		return updated, nil
	}

	s.log.InfoContext(ctx, "session details updated",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
	)
	return s.withLiveDuration(updated), nil
}

// checkReopen rejects reopening a closed session while another one runs.
// The partial unique index settles the race that slips past this check.
func (s *Service) checkReopen(ctx context.Context, userID uuid.UUID, session *domain.Session, times domain.SessionTimes) error {
	if times.End != nil || session.IsOpen() {
		return nil
	}
	running, err := s.sessions.GetActive(ctx, userID)
	switch {
	case err == nil && running.ID != session.ID:
		return domain.NewConflictError("another session is already running")
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("check active session: %w", err)
	}
	return nil
}
