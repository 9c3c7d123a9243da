package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is free-form text optionally linked to sessions of the same owner.
type Note struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Body       string
	SessionIDs []uuid.UUID
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NoteFilter holds owner-scoped note list parameters.
type NoteFilter struct {
	SessionID *uuid.UUID
	Tag       *string
	Limit     int
	Offset    int
}

// NoteUpdateParams holds fields for a partial note update (nil = don't change).
type NoteUpdateParams struct {
	Body        *string
	SessionIDs  []uuid.UUID
	SessionsSet bool
	Tags        []string
	TagsSet     bool
}
