package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// pathID parses the {id} path segment.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

// queryParams reads typed query parameters and collects parse errors so the
// handler can report all of them at once.
type queryParams struct {
	values url.Values
	errs   []domain.FieldError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (p *queryParams) text(name string) *string {
	if !p.values.Has(name) {
		return nil
	}
	v := p.values.Get(name)
	return &v
}

func (p *queryParams) number(name string) int {
	raw := p.values.Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return 0
	}
	return n
}

func (p *queryParams) flag(name string) bool {
	raw := p.values.Get(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be a boolean"})
		return false
	}
	return b
}

func (p *queryParams) instant(name string) *time.Time {
	raw := p.values.Get(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an RFC 3339 timestamp"})
		return nil
	}
	t = t.UTC()
	return &t
}

func (p *queryParams) id(name string) *uuid.UUID {
	raw := p.values.Get(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be a UUID"})
		return nil
	}
	return &id
}

func (p *queryParams) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}

// optional distinguishes an absent JSON field from an explicit null.
// Set is true when the key was present; Null when its value was null.
type optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// ptr returns the value for a present non-null field, nil otherwise.
func (o optional[T]) ptr() *T {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value
	return &v
}
