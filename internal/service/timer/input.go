package timer

import (
	"errors"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

const maxTitleLength = 200

// StartInput holds the parameters for opening a session.
type StartInput struct {
	CategoryID uuid.UUID
	Title      string
}

// Validate checks all fields and collects all errors. Title is normalized in place.
func (i *StartInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "required"})
	}
	i.Title = domain.NormalizeName(i.Title)
	errs = append(errs, checkTitle(i.Title)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// StopInput holds the parameters for closing the running session.
type StopInput struct {
	SessionID uuid.UUID
	Quality   *float64
	Tags      []string
}

// Validate checks all fields and collects all errors. Tags are normalized in place.
func (i *StopInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, checkQuality(i.Quality)...)
	if i.Tags != nil {
		var tagErrs []domain.FieldError
		i.Tags, tagErrs = domain.CheckTags("tags", i.Tags)
		errs = append(errs, tagErrs...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RescheduleInput edits session boundaries. A nil Start or End keeps the
// stored value; ClearEnd reopens the session.
type RescheduleInput struct {
	SessionID uuid.UUID
	Start     *time.Time
	End       *time.Time
	ClearEnd  bool
}

// Validate checks the shape of the request. Checks against the stored
// session happen in Reschedule.
func (i *RescheduleInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.End != nil && i.ClearEnd {
		errs = append(errs, domain.FieldError{Field: "end", Message: "cannot set and clear at the same time"})
	}
	if i.Start == nil && i.End == nil && !i.ClearEnd {
		errs = append(errs, domain.FieldError{Field: "start", Message: "start or end required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateDetailsInput holds non-temporal session edits (nil = don't change).
type UpdateDetailsInput struct {
	SessionID uuid.UUID
	Title     *string
	Quality   *float64
	Tags      []string
	TagsSet   bool
	NoteID    *uuid.UUID
	ClearNote bool
}

// IsEmpty reports whether the input changes nothing.
func (i *UpdateDetailsInput) IsEmpty() bool {
	return i.Title == nil && i.Quality == nil && !i.TagsSet && i.NoteID == nil && !i.ClearNote
}

// Validate checks all fields and collects all errors.
func (i *UpdateDetailsInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		title := domain.NormalizeName(*i.Title)
		i.Title = &title
		errs = append(errs, checkTitle(title)...)
	}
	errs = append(errs, checkQuality(i.Quality)...)
	if i.TagsSet {
		var tagErrs []domain.FieldError
		i.Tags, tagErrs = domain.CheckTags("tags", i.Tags)
		errs = append(errs, tagErrs...)
	}
	if i.NoteID != nil && i.ClearNote {
		errs = append(errs, domain.FieldError{Field: "noteId", Message: "cannot set and clear at the same time"})
	}
	if i.NoteID != nil && *i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "noteId", Message: "invalid"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput edits one session's boundaries and details in a single step.
// A nil Times keeps the boundaries; the session id of both parts is taken
// from SessionID.
type UpdateInput struct {
	SessionID uuid.UUID
	Times     *RescheduleInput
	Details   UpdateDetailsInput
}

// Validate checks both parts and collects all errors. Details are
// normalized in place.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Times != nil {
		i.Times.SessionID = i.SessionID
		errs = appendFieldErrors(errs, i.Times.Validate())
	}
	i.Details.SessionID = i.SessionID
	errs = appendFieldErrors(errs, i.Details.Validate())

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// appendFieldErrors adds the field errors carried by err that dst lacks.
func appendFieldErrors(dst []domain.FieldError, err error) []domain.FieldError {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return dst
	}
	for _, fe := range ve.Errors {
		if !slices.Contains(dst, fe) {
			dst = append(dst, fe)
		}
	}
	return dst
}

// ListInput holds session list parameters. Limit 0 selects the configured default.
type ListInput struct {
	From       *time.Time
	To         *time.Time
	CategoryID *uuid.UUID
	Limit      int
	Offset     int
}

// Validate checks all fields against maxLimit and collects all errors.
func (i *ListInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkTitle(title string) []domain.FieldError {
	switch {
	case title == "":
		return []domain.FieldError{{Field: "title", Message: "required"}}
	case utf8.RuneCountInString(title) > maxTitleLength:
		return []domain.FieldError{{Field: "title", Message: "too long"}}
	}
	return nil
}

func checkQuality(q *float64) []domain.FieldError {
	if q != nil && !domain.IsValidQuality(*q) {
		return []domain.FieldError{{Field: "quality", Message: "must be between 1 and 5 in steps of 0.5"}}
	}
	return nil
}
