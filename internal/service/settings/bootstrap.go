package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// Bootstrap prepares an account on first login: default settings and, for a
// user with no categories, the starter category set. Repeated calls return
// the existing state without writing.
func (s *Service) Bootstrap(ctx context.Context) (*BootstrapResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	defaults := domain.DefaultUserSettings(userID)
	defaults.UpdatedAt = now

	var seeded bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.settings.CreateIfMissing(txCtx, defaults); err != nil {
			return fmt.Errorf("create default settings: %w", err)
		}

		count, err := s.categories.Count(txCtx, userID)
		if err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, c := range domain.DefaultCategories() {
			c.ID = uuid.New()
			c.UserID = userID
			c.State = domain.CategoryStateActive
			c.CreatedAt = now
			c.UpdatedAt = now
			if _, err := s.categories.Create(txCtx, &c); err != nil {
				return fmt.Errorf("create default category %q: %w", c.Name, err)
			}
		}
		seeded = true

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSettings,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"default_categories": len(domain.DefaultCategories())},
			CreatedAt:  now,
		})
	})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		// A concurrent bootstrap seeded the categories first.
		seeded = false
	case err != nil:
		return nil, err
	}

	settings, err := s.current(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if seeded {
		s.log.InfoContext(ctx, "account bootstrapped",
			slog.String("user_id", userID.String()),
			slog.Int("categories", len(categories)),
		)
	}

	return &BootstrapResult{Settings: settings, Categories: categories, Seeded: seeded}, nil
}
