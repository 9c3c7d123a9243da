package timer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// UpdateDetails applies non-temporal edits: title, quality, tags and the linked note.
func (s *Service) UpdateDetails(ctx context.Context, input UpdateDetailsInput) (*domain.Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.apply(ctx, userID, input.SessionID, nil, &input)
}

// Delete removes a session, running or not.
func (s *Service) Delete(ctx context.Context, sessionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.sessions.Delete(txCtx, userID, sessionID); delErr != nil {
			return fmt.Errorf("delete session: %w", delErr)
		}

		return s.writeAudit(txCtx, userID, sessionID, domain.AuditActionDelete, map[string]any{
			"title":        session.Title,
			"category_id":  session.CategoryID.String(),
			"duration_min": session.DurationMin,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "session deleted",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
	)

	return nil
}

func detailChanges(old, updated *domain.Session, input UpdateDetailsInput) map[string]any {
	changes := make(map[string]any)
	if input.Title != nil {
		changes["title"] = map[string]any{"old": old.Title, "new": updated.Title}
	}
	if input.Quality != nil {
		changes["quality"] = map[string]any{"old": old.Quality, "new": updated.Quality}
	}
	if input.TagsSet {
		changes["tags"] = map[string]any{"old": old.Tags, "new": updated.Tags}
	}
	if input.NoteID != nil || input.ClearNote {
		changes["note_id"] = map[string]any{"old": old.NoteID, "new": updated.NoteID}
	}
	return changes
}
