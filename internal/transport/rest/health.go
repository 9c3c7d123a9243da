package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type timeSource interface {
	Now() time.Time
}

// HealthHandler serves the unauthenticated probe endpoints.
type HealthHandler struct {
	db        dbPinger
	version   string
	clock     timeSource
	startedAt time.Time
}

// NewHealthHandler creates a HealthHandler. Uptime is measured from the
// moment of construction.
func NewHealthHandler(db dbPinger, version string, clk timeSource) *HealthHandler {
	return &HealthHandler{db: db, version: version, clock: clk, startedAt: clk.Now()}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.clock.Now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: db.Status, Timestamp: h.clock.Now()})
}

// Health is the full health check with component latency, version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	now := h.clock.Now()

	status := http.StatusOK
	if db.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Uptime:     now.Sub(h.startedAt).Truncate(time.Second).String(),
		Components: map[string]CompStatus{"database": db},
		Timestamp:  now,
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
