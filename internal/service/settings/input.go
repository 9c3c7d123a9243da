package settings

import (
	"time"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// UpdateInput holds a partial settings update (nil = don't change).
type UpdateInput struct {
	RoundingMinutes *int
	WeekStart       *domain.WeekStart
	TimeFormat      *domain.TimeFormat
	Timezone        *string
	AIEnabled       *bool
}

// IsEmpty reports whether the input changes nothing.
func (i *UpdateInput) IsEmpty() bool {
	return i.RoundingMinutes == nil && i.WeekStart == nil && i.TimeFormat == nil && i.Timezone == nil && i.AIEnabled == nil
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.RoundingMinutes != nil && !domain.IsValidRounding(*i.RoundingMinutes) {
		errs = append(errs, domain.FieldError{Field: "roundingMinutes", Message: "must be one of 1, 5, 10, 15, 30"})
	}
	if i.WeekStart != nil && !i.WeekStart.IsValid() {
		errs = append(errs, domain.FieldError{Field: "weekStart", Message: "must be monday or sunday"})
	}
	if i.TimeFormat != nil && !i.TimeFormat.IsValid() {
		errs = append(errs, domain.FieldError{Field: "timeFormat", Message: "must be 12h or 24h"})
	}
	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "required"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply returns current with the set fields of i written over it.
func (i *UpdateInput) apply(current domain.UserSettings) domain.UserSettings {
	if i.RoundingMinutes != nil {
		current.RoundingMinutes = *i.RoundingMinutes
	}
	if i.WeekStart != nil {
		current.WeekStart = *i.WeekStart
	}
	if i.TimeFormat != nil {
		current.TimeFormat = *i.TimeFormat
	}
	if i.Timezone != nil {
		current.Timezone = *i.Timezone
	}
	if i.AIEnabled != nil {
		current.AIEnabled = *i.AIEnabled
	}
	return current
}
