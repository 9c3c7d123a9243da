package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RoundingOptions lists the display rounding granularities a user may pick, in minutes.
var RoundingOptions = []int{1, 5, 10, 15, 30}

// UserSettings holds per-user display and aggregation preferences.
// Settings never change stored durations; they only shape presentation.
type UserSettings struct {
	UserID          uuid.UUID
	RoundingMinutes int
	WeekStart       WeekStart
	TimeFormat      TimeFormat
	Timezone        string
	AIEnabled       bool
	UpdatedAt       time.Time
}

// DefaultUserSettings returns UserSettings with sensible defaults.
func DefaultUserSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:          userID,
		RoundingMinutes: 1,
		WeekStart:       WeekStartMonday,
		TimeFormat:      TimeFormat24h,
		Timezone:        "UTC",
		AIEnabled:       false,
	}
}

// IsValidRounding reports whether minutes is one of RoundingOptions.
func IsValidRounding(minutes int) bool {
	return slices.Contains(RoundingOptions, minutes)
}

// RoundToGranularity rounds minutes to the nearest multiple of granularity.
// A granularity <= 1 returns minutes unchanged.
func RoundToGranularity(minutes, granularity int) int {
	if granularity <= 1 {
		return minutes
	}
	return ((minutes + granularity/2) / granularity) * granularity
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
