// Package insights aggregates tracked time into per-category weekly reports.
package insights

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
}

type categoryRepo interface {
	List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Category, error)
}

type sessionRepo interface {
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.Session, error)
	TotalsByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.CategoryMinutes, error)
}

type timeSource interface {
	Now() time.Time
}

// Service builds weekly insights from stored sessions.
type Service struct {
	settings   settingsRepo
	categories categoryRepo
	sessions   sessionRepo
	clock      timeSource
	log        *slog.Logger
}

// NewService creates a new Insights service.
func NewService(log *slog.Logger, settings settingsRepo, categories categoryRepo, sessions sessionRepo, clk timeSource) *Service {
	return &Service{
		settings:   settings,
		categories: categories,
		sessions:   sessions,
		clock:      clk,
		log:        log.With("service", "insights"),
	}
}
