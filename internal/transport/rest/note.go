package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/internal/service/note"
)

type noteService interface {
	Get(ctx context.Context, noteID uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, input note.ListInput) ([]*domain.Note, error)
	Create(ctx context.Context, input note.CreateInput) (*domain.Note, error)
	Update(ctx context.Context, input note.UpdateInput) (*domain.Note, error)
	Delete(ctx context.Context, noteID uuid.UUID) error
}

// NoteHandler serves /api/notes.
type NoteHandler struct {
	svc noteService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "note")}
}

type createNoteRequest struct {
	Body       string      `json:"body"`
	SessionIDs []uuid.UUID `json:"sessionIds"`
	Tags       []string    `json:"tags"`
}

type updateNoteRequest struct {
	Body       *string               `json:"body"`
	SessionIDs optional[[]uuid.UUID] `json:"sessionIds"`
	Tags       optional[[]string]    `json:"tags"`
}

// List handles GET /api/notes?sessionId&tag&limit&offset.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := note.ListInput{
		SessionID: q.id("sessionId"),
		Tag:       q.text("tag"),
		Limit:     q.number("limit"),
		Offset:    q.number("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	notes, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	writeJSON(w, http.StatusOK, map[string]any{"notes": out})
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.svc.Create(r.Context(), note.CreateInput{
		Body:       req.Body,
		SessionIDs: req.SessionIDs,
		Tags:       req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

// Update handles PATCH /api/notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.svc.Update(r.Context(), note.UpdateInput{
		NoteID:      id,
		Body:        req.Body,
		SessionIDs:  req.SessionIDs.Value,
		SessionsSet: req.SessionIDs.Set,
		Tags:        req.Tags.Value,
		TagsSet:     req.Tags.Set,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
