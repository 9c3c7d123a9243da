package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/focuslog-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres/category"
	noterepo "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres/note"
	sessionrepo "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres/session"
	settingsrepo "github.com/heartmarshall/focuslog-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/focuslog-backend/internal/auth"
	"github.com/heartmarshall/focuslog-backend/internal/config"
	"github.com/heartmarshall/focuslog-backend/internal/service/category"
	"github.com/heartmarshall/focuslog-backend/internal/service/insights"
	"github.com/heartmarshall/focuslog-backend/internal/service/note"
	"github.com/heartmarshall/focuslog-backend/internal/service/settings"
	"github.com/heartmarshall/focuslog-backend/internal/service/timer"
	"github.com/heartmarshall/focuslog-backend/internal/transport/middleware"
	"github.com/heartmarshall/focuslog-backend/internal/transport/rest"
)

type timeSource interface {
	Now() time.Time
}

// NewHandler wires repositories, services and routes over pool. The returned
// func stops background resources owned by the handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, clk timeSource) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	audits := auditrepo.New(pool)
	categories := categoryrepo.New(pool)
	notes := noterepo.New(pool)
	sessions := sessionrepo.New(pool)
	userSettings := settingsrepo.New(pool)

	// Services.
	timerSvc := timer.NewService(logger, sessions, categories, notes, audits, txm, clk, cfg.Timer)
	categorySvc := category.NewService(logger, categories, sessions, audits, txm, clk)
	noteSvc := note.NewService(logger, notes, audits, txm, clk, cfg.Timer.ListMaxLimit)
	settingsSvc := settings.NewService(logger, userSettings, categories, audits, txm, clk)
	insightsSvc := insights.NewService(logger, userSettings, categories, sessions, clk)

	// Handlers.
	sessionH := rest.NewSessionHandler(timerSvc, logger)
	categoryH := rest.NewCategoryHandler(categorySvc, logger)
	noteH := rest.NewNoteHandler(noteSvc, logger)
	settingsH := rest.NewSettingsHandler(settingsSvc, logger)
	insightsH := rest.NewInsightsHandler(insightsSvc, logger)
	healthH := rest.NewHealthHandler(pool, BuildVersion(), clk)

	api := http.NewServeMux()

	api.HandleFunc("GET /api/sessions/active", sessionH.Active)
	api.HandleFunc("GET /api/sessions", sessionH.List)
	api.HandleFunc("POST /api/sessions", sessionH.Start)
	api.HandleFunc("GET /api/sessions/{id}", sessionH.Get)
	api.HandleFunc("PATCH /api/sessions/{id}", sessionH.Update)
	api.HandleFunc("DELETE /api/sessions/{id}", sessionH.Delete)
	api.HandleFunc("POST /api/sessions/{id}/stop", sessionH.Stop)

	api.HandleFunc("GET /api/categories", categoryH.List)
	api.HandleFunc("POST /api/categories", categoryH.Create)
	api.HandleFunc("PATCH /api/categories/{id}", categoryH.Update)
	api.HandleFunc("DELETE /api/categories/{id}", categoryH.Delete)
	api.HandleFunc("POST /api/categories/{id}/archive", categoryH.Archive)
	api.HandleFunc("POST /api/categories/{id}/restore", categoryH.Restore)

	api.HandleFunc("GET /api/notes", noteH.List)
	api.HandleFunc("POST /api/notes", noteH.Create)
	api.HandleFunc("GET /api/notes/{id}", noteH.Get)
	api.HandleFunc("PATCH /api/notes/{id}", noteH.Update)
	api.HandleFunc("DELETE /api/notes/{id}", noteH.Delete)

	api.HandleFunc("GET /api/settings", settingsH.Get)
	api.HandleFunc("PATCH /api/settings", settingsH.Update)
	api.HandleFunc("POST /api/bootstrap", settingsH.Bootstrap)

	api.HandleFunc("GET /api/insights/weekly", insightsH.Weekly)

	// Rate limit wraps auth: rejected tokens still spend a token.
	apiMW := []middleware.Middleware{}
	cleanup := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, clk)
		apiMW = append(apiMW, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
		cleanup = limiter.Stop
	}
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL, cfg.Auth.Leeway)
	apiMW = append(apiMW, middleware.Auth(jwt))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)
	mux.HandleFunc("GET /health", healthH.Health)
	mux.Handle("/api/", middleware.Chain(apiMW...)(http.MaxBytesHandler(api, cfg.Server.MaxBodyBytes)))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.ClientIP(cfg.RateLimit.TrustProxy),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, cleanup
}
