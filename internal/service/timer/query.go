package timer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// Get returns one owned session. An open session carries its live duration.
func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s.withLiveDuration(session), nil
}

// List returns sessions overlapping [From, To), newest start first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.ListMaxLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.ListDefaultLimit
	}

	sessions, total, err := s.sessions.List(ctx, userID, domain.SessionFilter{
		From:       input.From,
		To:         input.To,
		CategoryID: input.CategoryID,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, s.withLiveDuration(sess))
	}
	return &ListResult{Sessions: out, Total: total}, nil
}

// withLiveDuration returns a copy of an open session with DurationMin set to
// the elapsed minutes at now. Closed sessions are returned as is.
func (s *Service) withLiveDuration(session *domain.Session) *domain.Session {
	if !session.IsOpen() {
		return session
	}
	live := *session
	live.DurationMin = session.LiveDurationMin(s.clock.Now())
	return &live
}
