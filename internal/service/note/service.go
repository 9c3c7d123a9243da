package note

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

type noteRepo interface {
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) ([]*domain.Note, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, params domain.NoteUpdateParams, now time.Time) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
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

// Service implements notes and their links to sessions.
type Service struct {
	notes    noteRepo
	audit    auditLogger
	tx       txManager
	clock    timeSource
	log      *slog.Logger
	maxLimit int
}

// NewService creates a new Note service. maxLimit caps list page size.
func NewService(log *slog.Logger, notes noteRepo, audit auditLogger, tx txManager, clk timeSource, maxLimit int) *Service {
	return &Service{
		notes:    notes,
		audit:    audit,
		tx:       tx,
		clock:    clk,
		log:      log.With("service", "note"),
		maxLimit: maxLimit,
	}
}
