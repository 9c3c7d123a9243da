package category

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// List returns the user's categories ordered by name. Archived categories
// are included only when requested.
func (s *Service) List(ctx context.Context, includeArchived bool) ([]*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.categories.List(ctx, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get returns one owned category.
func (s *Service) Get(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Create adds an ACTIVE category. A name already used by another ACTIVE
// category of the user returns domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := s.categories.GetByID(ctx, userID, *input.ParentID); err != nil {
			return nil, fmt.Errorf("get parent category: %w", err)
		}
	}

	now := s.clock.Now()
	category := &domain.Category{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                input.Name,
		Color:               input.Color,
		Type:                input.Type,
		CountsTowardMastery: input.CountsTowardMastery,
		WeeklyTargetHours:   input.WeeklyTargetHours,
		ParentID:            input.ParentID,
		State:               domain.CategoryStateActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	var created *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.categories.Create(txCtx, category)
		if createErr != nil {
			return fmt.Errorf("create category: %w", createErr)
		}

		return s.writeAudit(txCtx, userID, created.ID, domain.AuditActionCreate, map[string]any{
			"name":  created.Name,
			"color": string(created.Color),
			"type":  string(created.Type),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
	)

	return created, nil
}

// Update applies a partial update. A parent that is the category itself or
// one of its descendants returns domain.ErrConflict.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.categories.GetByID(ctx, userID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	if input.ParentID != nil {
		if err := s.checkParent(ctx, userID, old.ID, *input.ParentID); err != nil {
			return nil, err
		}
	}

	params := domain.CategoryUpdateParams{
		Name:                input.Name,
		Color:               input.Color,
		Type:                input.Type,
		CountsTowardMastery: input.CountsTowardMastery,
		WeeklyTargetHours:   input.WeeklyTargetHours,
		ClearWeeklyTarget:   input.ClearWeeklyTarget,
		ParentID:            input.ParentID,
		ClearParent:         input.ClearParent,
	}

	var updated *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.categories.Update(txCtx, userID, old.ID, params, s.clock.Now())
		if updateErr != nil {
			return fmt.Errorf("update category: %w", updateErr)
		}

		return s.writeAudit(txCtx, userID, old.ID, domain.AuditActionUpdate, updateChanges(old, updated))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", userID.String()),
		slog.String("category_id", old.ID.String()),
	)

	return updated, nil
}

// Delete hard-deletes a category with no sessions. A category still
// referenced by a session returns domain.ErrConflict.
func (s *Service) Delete(ctx context.Context, categoryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, countErr := s.sessions.CountByCategory(txCtx, userID, categoryID)
		if countErr != nil {
			return fmt.Errorf("count sessions: %w", countErr)
		}
		if count > 0 {
			return domain.NewConflictError(fmt.Sprintf("category has %d sessions; archive it instead", count))
		}

		if delErr := s.categories.Delete(txCtx, userID, categoryID); delErr != nil {
			return fmt.Errorf("delete category: %w", delErr)
		}

		return s.writeAudit(txCtx, userID, categoryID, domain.AuditActionDelete, map[string]any{
			"name": c.Name,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
	)

	return nil
}

// checkParent rejects a parent that is missing, the category itself, or
// below the category in the tree.
func (s *Service) checkParent(ctx context.Context, userID, categoryID, parentID uuid.UUID) error {
	if parentID == categoryID {
		return domain.NewConflictError("category cannot be its own parent")
	}

	if _, err := s.categories.GetByID(ctx, userID, parentID); err != nil {
		return fmt.Errorf("get parent category: %w", err)
	}

	ancestors, err := s.categories.Ancestors(ctx, userID, parentID)
	if err != nil {
		return fmt.Errorf("get parent ancestors: %w", err)
	}
	if slices.Contains(ancestors, categoryID) {
		return domain.NewConflictError("parent would create a cycle")
	}
	return nil
}

func updateChanges(old, updated *domain.Category) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Color != updated.Color {
		changes["color"] = map[string]any{"old": string(old.Color), "new": string(updated.Color)}
	}
	if old.Type != updated.Type {
		changes["type"] = map[string]any{"old": string(old.Type), "new": string(updated.Type)}
	}
	if old.CountsTowardMastery != updated.CountsTowardMastery {
		changes["counts_toward_mastery"] = map[string]any{"old": old.CountsTowardMastery, "new": updated.CountsTowardMastery}
	}
	if !equalPtr(old.WeeklyTargetHours, updated.WeeklyTargetHours) {
		changes["weekly_target_hours"] = map[string]any{"old": old.WeeklyTargetHours, "new": updated.WeeklyTargetHours}
	}
	if !equalPtr(old.ParentID, updated.ParentID) {
		changes["parent_id"] = map[string]any{"old": old.ParentID, "new": updated.ParentID}
	}
	return changes
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
