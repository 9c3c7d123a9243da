package insights

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

const dateLayout = "2006-01-02"

// WeeklyInput selects the week by any local calendar date inside it.
// An empty Date means today in the user's timezone.
type WeeklyInput struct {
	Date string
}

// Weekly returns minutes per category for sessions started in the selected
// week. The running session counts with its live elapsed time. Categories
// with a weekly target appear even without tracked time.
func (s *Service) Weekly(ctx context.Context, input WeeklyInput) (*WeeklyReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	tz := ParseTimezone(settings.Timezone)
	now := s.clock.Now()

	at := now
	if input.Date != "" {
		day, parseErr := time.ParseInLocation(dateLayout, input.Date, tz)
		if parseErr != nil {
			return nil, domain.NewValidationError("date", "must be YYYY-MM-DD")
		}
		at = day
	}
	from, to := WeekBounds(at, tz, settings.WeekStart)

	totals, err := s.sessions.TotalsByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("session totals: %w", err)
	}

	byCategory := make(map[uuid.UUID]*domain.CategoryMinutes, len(totals))
	for i := range totals {
		byCategory[totals[i].CategoryID] = &totals[i]
	}

	active, err := s.sessions.GetActive(ctx, userID)
	switch {
	case err == nil:
		if !active.Start.Before(from) && active.Start.Before(to) {
			cm, ok := byCategory[active.CategoryID]
			if !ok {
				cm = &domain.CategoryMinutes{CategoryID: active.CategoryID}
				byCategory[active.CategoryID] = cm
			}
			cm.Minutes += active.LiveDurationMin(now)
			cm.Sessions++
		}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get active session: %w", err)
	}

	categories, err := s.categories.List(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	report := &WeeklyReport{
		WeekStart:       from,
		WeekEnd:         to,
		Timezone:        tz.String(),
		WeekStartsOn:    settings.WeekStart,
		RoundingMinutes: settings.RoundingMinutes,
		Categories:      []CategoryTotal{},
	}

	for _, c := range categories {
		cm, tracked := byCategory[c.ID]
		if !tracked && (c.WeeklyTargetHours == nil || c.IsArchived()) {
			continue
		}

		total := CategoryTotal{Category: c}
		if tracked {
			total.Minutes = cm.Minutes
			total.Sessions = cm.Sessions
		}
		total.DisplayMinutes = domain.RoundToGranularity(total.Minutes, settings.RoundingMinutes)
		if c.WeeklyTargetHours != nil {
			target := int(math.Round(*c.WeeklyTargetHours * 60))
			pct := math.Round(float64(total.Minutes)/float64(target)*1000) / 10
			total.TargetMinutes = &target
			total.PercentOfTarget = &pct
		}

		report.Categories = append(report.Categories, total)
		report.TotalMinutes += total.Minutes
	}
	report.DisplayTotalMinutes = domain.RoundToGranularity(report.TotalMinutes, settings.RoundingMinutes)

	slices.SortStableFunc(report.Categories, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Minutes, a.Minutes); c != 0 {
			return c
		}
		return cmp.Compare(a.Category.Name, b.Category.Name)
	})

	s.log.DebugContext(ctx, "weekly insights built",
		slog.String("user_id", userID.String()),
		slog.Time("week_start", from),
		slog.Int("categories", len(report.Categories)),
	)

	return report, nil
}

func (s *Service) loadSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			defaults := domain.DefaultUserSettings(userID)
			return &defaults, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}
