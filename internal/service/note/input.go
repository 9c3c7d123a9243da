package note

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

const maxBodyLength = 10000

// CreateInput holds the parameters for creating a note.
type CreateInput struct {
	Body       string
	SessionIDs []uuid.UUID
	Tags       []string
}

// Validate normalizes and checks all fields, collecting all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	i.Body = strings.TrimSpace(i.Body)
	errs = append(errs, checkBody(i.Body)...)

	var sessErrs []domain.FieldError
	i.SessionIDs, sessErrs = checkSessionIDs(i.SessionIDs)
	errs = append(errs, sessErrs...)

	var tagErrs []domain.FieldError
	i.Tags, tagErrs = domain.CheckTags("tags", i.Tags)
	errs = append(errs, tagErrs...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial note update (nil / unset = don't change).
type UpdateInput struct {
	NoteID      uuid.UUID
	Body        *string
	SessionIDs  []uuid.UUID
	SessionsSet bool
	Tags        []string
	TagsSet     bool
}

// Validate normalizes and checks all fields, collecting all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Body != nil {
		body := strings.TrimSpace(*i.Body)
		i.Body = &body
		errs = append(errs, checkBody(body)...)
	}
	if i.SessionsSet {
		var sessErrs []domain.FieldError
		i.SessionIDs, sessErrs = checkSessionIDs(i.SessionIDs)
		errs = append(errs, sessErrs...)
	}
	if i.TagsSet {
		var tagErrs []domain.FieldError
		i.Tags, tagErrs = domain.CheckTags("tags", i.Tags)
		errs = append(errs, tagErrs...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds note list parameters.
type ListInput struct {
	SessionID *uuid.UUID
	Tag       *string
	Limit     int
	Offset    int
}

// Validate checks paging against maxLimit.
func (i *ListInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Tag != nil {
		tag := domain.NormalizeText(*i.Tag)
		i.Tag = &tag
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkBody(body string) []domain.FieldError {
	switch {
	case body == "":
		return []domain.FieldError{{Field: "body", Message: "required"}}
	case utf8.RuneCountInString(body) > maxBodyLength:
		return []domain.FieldError{{Field: "body", Message: "too long"}}
	}
	return nil
}

// checkSessionIDs drops duplicates, keeping first-seen order.
func checkSessionIDs(ids []uuid.UUID) ([]uuid.UUID, []domain.FieldError) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return out, []domain.FieldError{{Field: "sessionIds", Message: "invalid id"}}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
