package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/focuslog-backend/internal/service/insights"
)

type insightsService interface {
	Weekly(ctx context.Context, input insights.WeeklyInput) (*insights.WeeklyReport, error)
}

// InsightsHandler serves read-only aggregates.
type InsightsHandler struct {
	svc insightsService
	log *slog.Logger
}

// NewInsightsHandler creates an InsightsHandler.
func NewInsightsHandler(svc insightsService, logger *slog.Logger) *InsightsHandler {
	return &InsightsHandler{svc: svc, log: logger.With("handler", "insights")}
}

// Weekly handles GET /api/insights/weekly?date=YYYY-MM-DD.
func (h *InsightsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Weekly(r.Context(), insights.WeeklyInput{Date: r.URL.Query().Get("date")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeeklyResponse(rep))
}
