package category

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

const (
	maxNameLength  = 64
	maxWeeklyHours    = 168.0
)

// CreateInput holds the parameters for creating a category.
// Empty Color and Type default to slate and other.
type CreateInput struct {
	Name                string
	Color               domain.CategoryColor
	Type                domain.CategoryType
	CountsTowardMastery bool
	WeeklyTargetHours   *float64
	ParentID            *uuid.UUID
}

// Validate normalizes and checks all fields, collecting all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	i.Name = domain.NormalizeName(i.Name)
	errs = append(errs, checkName(i.Name)...)

	if i.Color == "" {
		i.Color = domain.CategoryColorSlate
	}
	if !i.Color.IsValid() {
		errs = append(errs, domain.FieldError{Field: "color", Message: "unknown color"})
	}
	if i.Type == "" {
		i.Type = domain.CategoryTypeOther
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be skill, life, admin, social, or other"})
	}
	errs = append(errs, checkWeeklyTarget(i.WeeklyTargetHours)...)
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parentId", Message: "invalid"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial category update (nil = don't change).
type UpdateInput struct {
	CategoryID          uuid.UUID
	Name                *string
	Color               *domain.CategoryColor
	Type                *domain.CategoryType
	CountsTowardMastery *bool
	WeeklyTargetHours   *float64
	ClearWeeklyTarget   bool
	ParentID            *uuid.UUID
	ClearParent         bool
}

// Validate normalizes and checks all fields, collecting all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		name := domain.NormalizeName(*i.Name)
		i.Name = &name
		errs = append(errs, checkName(name)...)
	}
	if i.Color != nil && !i.Color.IsValid() {
		errs = append(errs, domain.FieldError{Field: "color", Message: "unknown color"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be skill, life, admin, social, or other"})
	}
	errs = append(errs, checkWeeklyTarget(i.WeeklyTargetHours)...)
	if i.WeeklyTargetHours != nil && i.ClearWeeklyTarget {
		errs = append(errs, domain.FieldError{Field: "weeklyTargetHours", Message: "cannot set and clear at the same time"})
	}
	if i.ParentID != nil && i.ClearParent {
		errs = append(errs, domain.FieldError{Field: "parentId", Message: "cannot set and clear at the same time"})
	}
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parentId", Message: "invalid"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkName(name string) []domain.FieldError {
	switch {
	case name == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case utf8.RuneCountInString(name) > maxNameLength:
		return []domain.FieldError{{Field: "name", Message: "too long"}}
	}
	return nil
}

func checkWeeklyTarget(h *float64) []domain.FieldError {
	if h != nil && (*h <= 0 || *h > maxWeeklyHours) {
		return []domain.FieldError{{Field: "weeklyTargetHours", Message: "must be greater than 0 and at most 168"}}
	}
	return nil
}
