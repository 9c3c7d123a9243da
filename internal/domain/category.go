package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined bucket that sessions are tracked against.
type Category struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	Color               CategoryColor
	Type                CategoryType
	CountsTowardMastery bool
	WeeklyTargetHours   *float64
	ParentID            *uuid.UUID
	State               CategoryState
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsArchived reports whether the category has been archived.
func (c *Category) IsArchived() bool {
	return c.State == CategoryStateArchived
}

// CategoryUpdateParams holds fields for a partial category update (nil = don't change).
type CategoryUpdateParams struct {
	Name                *string
	Color               *CategoryColor
	Type                *CategoryType
	CountsTowardMastery *bool
	WeeklyTargetHours   *float64
	ClearWeeklyTarget   bool
	ParentID            *uuid.UUID
	ClearParent         bool
}

// DefaultCategories returns the starter set created for a user on first login.
func DefaultCategories() []Category {
	deepWorkTarget := 10.0
	learningTarget := 5.0
	return []Category{
		{Name: "Deep Work", Color: CategoryColorBlue, Type: CategoryTypeSkill, CountsTowardMastery: true, WeeklyTargetHours: &deepWorkTarget},
		{Name: "Learning", Color: CategoryColorPurple, Type: CategoryTypeSkill, CountsTowardMastery: true, WeeklyTargetHours: &learningTarget},
		{Name: "Exercise", Color: CategoryColorGreen, Type: CategoryTypeLife},
		{Name: "Admin", Color: CategoryColorSlate, Type: CategoryTypeAdmin},
		{Name: "Social", Color: CategoryColorPink, Type: CategoryTypeSocial},
	}
}
