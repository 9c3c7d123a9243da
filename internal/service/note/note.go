package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// Get returns one owned note with its linked session ids.
func (s *Service) Get(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// List returns the user's notes newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.maxLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.maxLimit
	}

	notes, err := s.notes.List(ctx, userID, domain.NoteFilter{
		SessionID: input.SessionID,
		Tag:       input.Tag,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create stores a note. Every linked session must belong to the caller,
// otherwise domain.ErrNotFound is returned and nothing is written.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	note := &domain.Note{
		ID:         uuid.New(),
		UserID:     userID,
		Body:       input.Body,
		SessionIDs: input.SessionIDs,
		Tags:       input.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var created *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.notes.Create(txCtx, note)
		if createErr != nil {
			return fmt.Errorf("create note: %w", createErr)
		}

		return s.writeAudit(txCtx, userID, created.ID, domain.AuditActionCreate, map[string]any{
			"sessions": len(created.SessionIDs),
			"tags":     created.Tags,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", created.ID.String()),
	)

	return created, nil
}

// Update applies a partial update. Setting SessionIDs replaces all links.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.NoteUpdateParams{
		Body:        input.Body,
		SessionIDs:  input.SessionIDs,
		SessionsSet: input.SessionsSet,
		Tags:        input.Tags,
		TagsSet:     input.TagsSet,
	}

	var updated *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.notes.Update(txCtx, userID, input.NoteID, params, s.clock.Now())
		if updateErr != nil {
			return fmt.Errorf("update note: %w", updateErr)
		}

		changes := map[string]any{}
		if input.Body != nil {
			changes["body"] = "updated"
		}
		if input.SessionsSet {
			changes["sessions"] = len(updated.SessionIDs)
		}
		if input.TagsSet {
			changes["tags"] = updated.Tags
		}
		return s.writeAudit(txCtx, userID, input.NoteID, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
	)

	return updated, nil
}

// Delete removes a note. Sessions that referenced it keep existing.
func (s *Service) Delete(ctx context.Context, noteID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.notes.Delete(txCtx, userID, noteID); delErr != nil {
			return fmt.Errorf("delete note: %w", delErr)
		}
		return s.writeAudit(txCtx, userID, noteID, domain.AuditActionDelete, nil)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", noteID.String()),
	)

	return nil
}

func (s *Service) writeAudit(ctx context.Context, userID, noteID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	return s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeNote,
		EntityID:   &noteID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.clock.Now(),
	})
}
