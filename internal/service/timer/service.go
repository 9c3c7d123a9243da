package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/config"
	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sessionRepo interface {
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Session, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.Session, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]*domain.Session, int, error)
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	Stop(ctx context.Context, userID, sessionID uuid.UUID, end time.Time, durationMin int, quality *float64, tags []string) (*domain.Session, error)
	UpdateTimes(ctx context.Context, userID, sessionID uuid.UUID, times domain.SessionTimes, now time.Time) (*domain.Session, error)
	UpdateDetails(ctx context.Context, userID, sessionID uuid.UUID, params domain.SessionDetailsParams, now time.Time) (*domain.Session, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
}

type noteRepo interface {
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
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

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements session timing: start, stop, reschedule and the
// live elapsed view of the running session.
type Service struct {
	sessions   sessionRepo
	categories categoryRepo
	notes      noteRepo
	audit      auditLogger
	tx         txManager
	clock      timeSource
	log        *slog.Logger
	cfg        config.TimerConfig
}

// NewService creates a new Timer service.
func NewService(
	log *slog.Logger,
	sessions sessionRepo,
	categories categoryRepo,
	notes noteRepo,
	audit auditLogger,
	tx txManager,
	clk timeSource,
	cfg config.TimerConfig,
) *Service {
	return &Service{
		sessions:   sessions,
		categories: categories,
		notes:      notes,
		audit:      audit,
		tx:         tx,
		clock:      clk,
		log:        log.With("service", "timer"),
		cfg:        cfg,
	}
}

func (s *Service) writeAudit(ctx context.Context, userID, sessionID uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	return s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeSession,
		EntityID:   &sessionID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.clock.Now(),
	})
}
