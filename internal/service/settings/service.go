package settings

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	CreateIfMissing(ctx context.Context, s domain.UserSettings) (bool, error)
	Upsert(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error)
}

type categoryRepo interface {
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	List(ctx context.Context, userID uuid.UUID, includeArchived bool) ([]*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
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

// Service implements user settings and first-login bootstrap.
type Service struct {
	settings   settingsRepo
	categories categoryRepo
	audit      auditLogger
	tx         txManager
	clock      timeSource
	log        *slog.Logger
}

// NewService creates a new Settings service.
func NewService(
	log *slog.Logger,
	settings settingsRepo,
	categories categoryRepo,
	audit auditLogger,
	tx txManager,
	clk timeSource,
) *Service {
	return &Service{
		settings:   settings,
		categories: categories,
		audit:      audit,
		tx:         tx,
		clock:      clk,
		log:        log.With("service", "settings"),
	}
}
