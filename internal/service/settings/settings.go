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

// Get returns the user's settings, or the defaults if none are stored.
func (s *Service) Get(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.current(ctx, userID)
}

// Update applies a partial settings change.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.IsEmpty() {
		return current, nil
	}

	next := input.apply(*current)
	next.UpdatedAt = s.clock.Now()

	var stored *domain.UserSettings
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		stored, upsertErr = s.settings.Upsert(txCtx, next)
		if upsertErr != nil {
			return fmt.Errorf("upsert settings: %w", upsertErr)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeSettings,
			Action:     domain.AuditActionUpdate,
			Changes:    settingsChanges(*current, *stored),
			CreatedAt:  next.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
	)

	return stored, nil
}

func (s *Service) current(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	stored, err := s.settings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			defaults := domain.DefaultUserSettings(userID)
			return &defaults, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return stored, nil
}

func settingsChanges(old, next domain.UserSettings) map[string]any {
	changes := make(map[string]any)
	if old.RoundingMinutes != next.RoundingMinutes {
		changes["rounding_minutes"] = map[string]any{"old": old.RoundingMinutes, "new": next.RoundingMinutes}
	}
	if old.WeekStart != next.WeekStart {
		changes["week_start"] = map[string]any{"old": string(old.WeekStart), "new": string(next.WeekStart)}
	}
	if old.TimeFormat != next.TimeFormat {
		changes["time_format"] = map[string]any{"old": string(old.TimeFormat), "new": string(next.TimeFormat)}
	}
	if old.Timezone != next.Timezone {
		changes["timezone"] = map[string]any{"old": old.Timezone, "new": next.Timezone}
	}
	if old.AIEnabled != next.AIEnabled {
		changes["ai_enabled"] = map[string]any{"old": old.AIEnabled, "new": next.AIEnabled}
	}
	return changes
}
