package domain

// CategoryType classifies what kind of time a category tracks.
type CategoryType string

const (
	CategoryTypeSkill  CategoryType = "skill"
	CategoryTypeLife   CategoryType = "life"
	CategoryTypeAdmin  CategoryType = "admin"
	CategoryTypeSocial CategoryType = "social"
	CategoryTypeOther  CategoryType = "other"
)

func (t CategoryType) String() string { return string(t) }

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeSkill, CategoryTypeLife, CategoryTypeAdmin, CategoryTypeSocial, CategoryTypeOther:
		return true
	}
	return false
}

// CategoryColor is one of the fixed palette colors a category can use.
type CategoryColor string

const (
	CategoryColorSlate  CategoryColor = "slate"
	CategoryColorRed    CategoryColor = "red"
	CategoryColorOrange CategoryColor = "orange"
	CategoryColorAmber  CategoryColor = "amber"
	CategoryColorGreen  CategoryColor = "green"
	CategoryColorTeal   CategoryColor = "teal"
	CategoryColorBlue   CategoryColor = "blue"
	CategoryColorIndigo CategoryColor = "indigo"
	CategoryColorPurple CategoryColor = "purple"
	CategoryColorPink   CategoryColor = "pink"
)

func (c CategoryColor) String() string { return string(c) }

func (c CategoryColor) IsValid() bool {
	switch c {
	case CategoryColorSlate, CategoryColorRed, CategoryColorOrange, CategoryColorAmber,
		CategoryColorGreen, CategoryColorTeal, CategoryColorBlue, CategoryColorIndigo,
		CategoryColorPurple, CategoryColorPink:
		return true
	}
	return false
}

// CategoryState is the lifecycle state of a category.
type CategoryState string

const (
	CategoryStateActive   CategoryState = "ACTIVE"
	CategoryStateArchived CategoryState = "ARCHIVED"
)

func (s CategoryState) String() string { return string(s) }

func (s CategoryState) IsValid() bool {
	switch s {
	case CategoryStateActive, CategoryStateArchived:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeCategory EntityType = "CATEGORY"
	EntityTypeSession  EntityType = "SESSION"
	EntityTypeNote     EntityType = "NOTE"
	EntityTypeSettings EntityType = "SETTINGS"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCategory, EntityTypeSession, EntityTypeNote, EntityTypeSettings:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionArchive AuditAction = "ARCHIVE"
	AuditActionRestore AuditAction = "RESTORE"
	AuditActionStop    AuditAction = "STOP"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionArchive, AuditActionRestore, AuditActionStop:
		return true
	}
	return false
}

// WeekStart is the first day of the week used for weekly aggregation.
type WeekStart string

const (
	WeekStartMonday WeekStart = "monday"
	WeekStartSunday WeekStart = "sunday"
)

func (w WeekStart) String() string { return string(w) }

func (w WeekStart) IsValid() bool {
	return w == WeekStartMonday || w == WeekStartSunday
}

// TimeFormat is the user's preferred clock display.
type TimeFormat string

const (
	TimeFormat12h TimeFormat = "12h"
	TimeFormat24h TimeFormat = "24h"
)

func (f TimeFormat) String() string { return string(f) }

func (f TimeFormat) IsValid() bool {
	return f == TimeFormat12h || f == TimeFormat24h
}
