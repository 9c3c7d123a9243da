package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
	"github.com/heartmarshall/focuslog-backend/internal/service/settings"
)

type settingsService interface {
	Get(ctx context.Context) (*domain.UserSettings, error)
	Update(ctx context.Context, input settings.UpdateInput) (*domain.UserSettings, error)
	Bootstrap(ctx context.Context) (*settings.BootstrapResult, error)
}

// SettingsHandler serves /api/settings and /api/bootstrap.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	RoundingMinutes *int    `json:"roundingMinutes"`
	WeekStart       *string `json:"weekStart"`
	TimeFormat      *string `json:"timeFormat"`
	Timezone        *string `json:"timezone"`
	AIEnabled       *bool   `json:"aiEnabled"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// Update handles PATCH /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := settings.UpdateInput{
		RoundingMinutes: req.RoundingMinutes,
		Timezone:        req.Timezone,
		AIEnabled:       req.AIEnabled,
	}
	if req.WeekStart != nil {
		ws := domain.WeekStart(*req.WeekStart)
		input.WeekStart = &ws
	}
	if req.TimeFormat != nil {
		tf := domain.TimeFormat(*req.TimeFormat)
		input.TimeFormat = &tf
	}

	s, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// Bootstrap handles POST /api/bootstrap. It is safe to call on every login;
// 201 is returned only by the call that seeded the account.
func (h *SettingsHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Bootstrap(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if res.Seeded {
		status = http.StatusCreated
	}
	writeJSON(w, status, toBootstrapResponse(res))
}
