package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Category, error)
	Ancestors(ctx context.Context, userID, categoryID uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, params domain.CategoryUpdateParams, now time.Time) (*domain.Category, error)
	SetState(ctx context.Context, userID, categoryID uuid.UUID, state domain.CategoryState, now time.Time) (*domain.Category, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}

type sessionCounter interface {
	CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type timeSource interface {
	Now() time.Time
}

// Service implements category management.
type Service struct {
	categories categoryRepo
	sessions   sessionCounter
	audit      auditLogger
	tx         txManager
	clock      timeSource
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	sessions sessionCounter,
	audit auditLogger,
	tx txManager,
	clk timeSource,
) *Service {
	return &Service{
		categories: categories,
		sessions:   sessions,
		audit:      audit,
		tx:         tx,
		clock:      clk,
		log:        log.With("service", "category"),
	}
}

func (s *Service) writeAudit(ctx context.Context, userID, categoryID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	return s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeCategory,
		EntityID:   &categoryID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.clock.Now(),
	})
}
