package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/internal/service/category"
)

type categoryService interface {
	List(ctx context.Context, includeArchived bool) ([]*domain.Category, error)
	Create(ctx context.Context, input category.CreateInput) (*domain.Category, error)
	Update(ctx context.Context, input category.UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
	Archive(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error)
	Restore(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error)
}

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type createCategoryRequest struct {
	Name                string     `json:"name"`
	Color               string     `json:"color"`
	Type                string     `json:"type"`
	CountsTowardMastery bool       `json:"countsTowardMastery"`
	WeeklyTargetHours   *float64   `json:"weeklyTargetHours"`
	ParentID            *uuid.UUID `json:"parentId"`
}

type updateCategoryRequest struct {
	Name                *string             `json:"name"`
	Color               *string             `json:"color"`
	Type                *string             `json:"type"`
	CountsTowardMastery *bool               `json:"countsTowardMastery"`
	WeeklyTargetHours   optional[float64]   `json:"weeklyTargetHours"`
	ParentID            optional[uuid.UUID] `json:"parentId"`
}

// List handles GET /api/categories?includeArchived=true.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	includeArchived := q.flag("includeArchived")
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.List(r.Context(), includeArchived)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": toCategoryResponses(list)})
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateInput{
		Name:                req.Name,
		Color:               domain.CategoryColor(req.Color),
		Type:                domain.CategoryType(req.Type),
		CountsTowardMastery: req.CountsTowardMastery,
		WeeklyTargetHours:   req.WeeklyTargetHours,
		ParentID:            req.ParentID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// Update handles PATCH /api/categories/{id}. Null weeklyTargetHours or
// parentId clears the field.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := category.UpdateInput{
		CategoryID:          id,
		Name:                req.Name,
		CountsTowardMastery: req.CountsTowardMastery,
		WeeklyTargetHours:   req.WeeklyTargetHours.ptr(),
		ClearWeeklyTarget:   req.WeeklyTargetHours.Null,
		ParentID:            req.ParentID.ptr(),
		ClearParent:         req.ParentID.Null,
	}
	if req.Color != nil {
		color := domain.CategoryColor(*req.Color)
		input.Color = &color
	}
	if req.Type != nil {
		typ := domain.CategoryType(*req.Type)
		input.Type = &typ
	}

	c, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Delete handles DELETE /api/categories/{id}. Categories with sessions
// cannot be deleted; archive them instead.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Archive handles POST /api/categories/{id}/archive.
func (h *CategoryHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Archive)
}

// Restore handles POST /api/categories/{id}/restore.
func (h *CategoryHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Restore)
}

func (h *CategoryHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Category, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}
