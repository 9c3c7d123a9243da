package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// Archive hides a category from pickers. Archiving an archived category is a no-op.
func (s *Service) Archive(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	return s.setState(ctx, categoryID, domain.CategoryStateArchived, domain.AuditActionArchive)
}

// Restore reactivates an archived category. Restoring onto a name taken by
// another ACTIVE category returns domain.ErrAlreadyExists.
func (s *Service) Restore(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	return s.setState(ctx, categoryID, domain.CategoryStateActive, domain.AuditActionRestore)
}

func (s *Service) setState(ctx context.Context, categoryID uuid.UUID, state domain.CategoryState, action domain.AuditAction) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if c.State == state {
		return c, nil
	}

	var updated *domain.Category
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var stateErr error
		updated, stateErr = s.categories.SetState(txCtx, userID, categoryID, state, s.clock.Now())
		if stateErr != nil {
			return fmt.Errorf("set category state: %w", stateErr)
		}

		return s.writeAudit(txCtx, userID, categoryID, action, map[string]any{
			"state": map[string]any{"old": string(c.State), "new": string(state)},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category state changed",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.String("state", string(state)),
	)

	return updated, nil
}
