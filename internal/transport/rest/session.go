package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/internal/service/timer"
)

type timerService interface {
	GetActive(ctx context.Context) (*timer.ActiveSession, error)
	Start(ctx context.Context, input timer.StartInput) (*domain.Session, error)
	Stop(ctx context.Context, input timer.StopInput) (*domain.Session, error)
	Update(ctx context.Context, input timer.UpdateInput) (*domain.Session, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	List(ctx context.Context, input timer.ListInput) (*timer.ListResult, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// SessionHandler serves the timer endpoints under /api/sessions.
type SessionHandler struct {
	svc timerService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc timerService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

// startRequest carries an optional client start time. It is accepted for
// compatibility and ignored: the server clock decides when a session starts.
type startRequest struct {
	CategoryID uuid.UUID  `json:"categoryId"`
	Title      string     `json:"title"`
	Start      *time.Time `json:"start"`
}

type stopRequest struct {
	Quality *float64 `json:"quality"`
	Tags    []string `json:"tags"`
}

type patchSessionRequest struct {
	Start   *time.Time          `json:"start"`
	End     optional[time.Time] `json:"end"`
	Title   *string             `json:"title"`
	Quality *float64            `json:"quality"`
	Tags    optional[[]string]  `json:"tags"`
	NoteID  optional[uuid.UUID] `json:"noteId"`
}

// Active handles GET /api/sessions/active.
func (h *SessionHandler) Active(w http.ResponseWriter, r *http.Request) {
	active, err := h.svc.GetActive(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActiveResponse(active))
}

// Start handles POST /api/sessions.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.svc.Start(r.Context(), timer.StartInput{
		CategoryID: req.CategoryID,
		Title:      req.Title,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

// List handles GET /api/sessions?from&to&categoryId&limit&offset.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := timer.ListInput{
		From:       q.instant("from"),
		To:         q.instant("to"),
		CategoryID: q.id("categoryId"),
		Limit:      q.number("limit"),
		Offset:     q.number("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionListResponse{
		Sessions: toSessionResponses(result.Sessions),
		Total:    result.Total,
	})
}

// Get handles GET /api/sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Stop handles POST /api/sessions/{id}/stop. The body is optional.
func (h *SessionHandler) Stop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req stopRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	session, err := h.svc.Stop(r.Context(), timer.StopInput{
		SessionID: id,
		Quality:   req.Quality,
		Tags:      req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Update handles PATCH /api/sessions/{id}. Boundary and detail fields are
// applied together; "end": null reopens the session.
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req patchSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := timer.UpdateInput{
		SessionID: id,
		Details: timer.UpdateDetailsInput{
			Title:     req.Title,
			Quality:   req.Quality,
			Tags:      req.Tags.Value,
			TagsSet:   req.Tags.Set,
			NoteID:    req.NoteID.ptr(),
			ClearNote: req.NoteID.Null,
		},
	}
	if req.Start != nil || req.End.Set {
		input.Times = &timer.RescheduleInput{
			Start:    req.Start,
			End:      req.End.ptr(),
			ClearEnd: req.End.Null,
		}
	}

	session, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Delete handles DELETE /api/sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
