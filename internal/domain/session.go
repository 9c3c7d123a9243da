package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Session is one timed block of work against a category.
// End == nil means the session is still running (open).
type Session struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Title       string
	Start       time.Time
	End         *time.Time
	DurationMin int
	Quality     *float64
	Tags        []string
	NoteID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen reports whether the session is still running.
func (s *Session) IsOpen() bool {
	return s.End == nil
}

// Elapsed returns the live elapsed time of the session at now.
// Closed sessions return end - start. Negative values (clock skew, legacy rows)
// are clamped to zero for display.
func (s *Session) Elapsed(now time.Time) time.Duration {
	end := now
	if s.End != nil {
		end = *s.End
	}
	d := end.Sub(s.Start)
	if d < 0 {
		return 0
	}
	return d
}

// LiveDurationMin returns the stored duration for closed sessions and the
// rounded live elapsed minutes for an open one.
func (s *Session) LiveDurationMin(now time.Time) int {
	if s.End != nil {
		return s.DurationMin
	}
	return RoundMinutes(s.Elapsed(now))
}

// DurationMinutes computes round((end - start) / 1m).
// The result is negative when end is before start; callers reject that
// before persisting.
func DurationMinutes(start, end time.Time) int {
	return RoundMinutes(end.Sub(start))
}

// RoundMinutes rounds a duration to whole minutes, half away from zero.
func RoundMinutes(d time.Duration) int {
	ms := float64(d.Milliseconds())
	return int(math.Round(ms / 60000))
}

// SessionFilter holds owner-scoped list parameters.
// From/To select sessions overlapping the half-open window [From, To).
type SessionFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID *uuid.UUID
	Limit      int
	Offset     int
}

// SessionTimes holds the persisted boundaries and derived duration written by
// a reschedule.
type SessionTimes struct {
	Start       time.Time
	End         *time.Time
	DurationMin int
}

// SessionDetailsParams holds non-temporal fields to update (nil = don't change).
type SessionDetailsParams struct {
	Title     *string
	Quality   *float64
	Tags      []string
	TagsSet   bool
	NoteID    *uuid.UUID
	ClearNote bool
}

// IsValidQuality reports whether q is within [1,5] in half steps.
func IsValidQuality(q float64) bool {
	if q < 1 || q > 5 {
		return false
	}
	return math.Mod(q*2, 1) == 0
}

// CategoryMinutes is the summed closed-session duration for one category.
type CategoryMinutes struct {
	CategoryID uuid.UUID
	Minutes    int
	Sessions   int
}
