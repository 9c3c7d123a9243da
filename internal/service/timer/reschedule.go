package timer

import (
	"context"
	"fmt"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// Reschedule edits session boundaries and recomputes the duration from the
// resulting pair. Fields not supplied keep their stored value. Clearing the
// end reopens the session, which fails with domain.ErrConflict while another
// session is running.
func (s *Service) Reschedule(ctx context.Context, input RescheduleInput) (*domain.Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.apply(ctx, userID, input.SessionID, &input, nil)
}

// resolveTimes merges input over the stored session and checks the result.
func (s *Service) resolveTimes(session *domain.Session, input RescheduleInput) (domain.SessionTimes, error) {
	times := domain.SessionTimes{Start: session.Start, End: session.End}
	if input.Start != nil {
		times.Start = input.Start.UTC()
	}
	if input.End != nil {
		end := input.End.UTC()
		times.End = &end
	}
	if input.ClearEnd {
		times.End = nil
	}

	var errs []domain.FieldError
	limit := s.clock.Now().Add(s.cfg.FutureSkew)

	if times.Start.After(limit) {
		errs = append(errs, domain.FieldError{Field: "start", Message: "must not be in the future"})
	}
	if times.End != nil {
		switch {
		case times.End.After(limit):
			errs = append(errs, domain.FieldError{Field: "end", Message: "must not be in the future"})
		case times.End.Before(times.Start):
			errs = append(errs, domain.FieldError{Field: "end", Message: "must not be before start"})
		case s.cfg.MaxSessionHours > 0 && times.End.Sub(times.Start) > s.cfg.MaxSessionDuration():
			errs = append(errs, domain.FieldError{Field: "end", Message: fmt.Sprintf("session exceeds %d hours", s.cfg.MaxSessionHours)})
		}
	}
	if len(errs) > 0 {
		return domain.SessionTimes{}, domain.NewValidationErrors(errs)
	}

	if times.End != nil {
		times.DurationMin = domain.DurationMinutes(times.Start, *times.End)
	}
	return times, nil
}
