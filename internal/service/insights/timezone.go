package insights

import (
	"time"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// DayStart returns midnight of t's calendar day in tz, converted to UTC.
func DayStart(t time.Time, tz *time.Location) time.Time {
	local := t.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// WeekBounds returns the UTC bounds [start, end) of the week containing t in
// tz, with weeks beginning on weekStart. A DST change inside the week makes
// it 167 or 169 hours long.
func WeekBounds(t time.Time, tz *time.Location, weekStart domain.WeekStart) (time.Time, time.Time) {
	local := t.In(tz)

	offset := int(local.Weekday())
	if weekStart != domain.WeekStartSunday {
		offset = (offset + 6) % 7
	}

	// AddDate handles DST correctly, Add(24h) does not
	start := time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, tz)
	end := start.AddDate(0, 0, 7)
	return start.UTC(), end.UTC()
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
