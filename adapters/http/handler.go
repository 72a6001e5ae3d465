package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// VersionResponse represents the version endpoint response.
type VersionResponse struct {
	Version    string `json:"version"`
	APIVersion string `json:"api_version"`
	Service    string `json:"service"`
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	db     HealthChecker
	checks []ReadinessCheck
}

// HealthChecker is satisfied by *sql.DB and anything embedding it.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// ReadinessCheck is an extra dependency checked by /health/ready.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// NewHealthHandler creates a new health handler. db may be nil.
func NewHealthHandler(db HealthChecker, checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{db: db, checks: checks}
}

// Liveness returns a simple liveness check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Readiness pings the notification store, then runs the extra checks in
// order. The first failure answers 503 and names the check.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			unready(w, "database", err)
			return
		}
	}
	for _, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			unready(w, c.Name, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func unready(w http.ResponseWriter, check string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "unhealthy",
		"check":  check,
		"error":  err.Error(),
	})
}

// Version returns the service version.
func Version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VersionResponse{
		Version:    recurly.Version,
		APIVersion: recurly.APIVersion,
		Service:    "recurlyctl",
	})
}

// RouterConfig holds the handlers mounted by NewRouter.
type RouterConfig struct {
	Webhooks       *WebhookHandler
	WebhookPath    string // default: /webhooks/recurly
	Notifications  *NotificationsHandler
	Health         *HealthHandler
	MetricsHandler http.Handler // nil disables the metrics endpoint
	MetricsPath    string       // default: /metrics
}

// NewRouter creates the receiver's HTTP router.
func NewRouter(cfg RouterConfig, logger zerolog.Logger) chi.Router {
	if cfg.WebhookPath == "" {
		cfg.WebhookPath = "/webhooks/recurly"
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}
	if cfg.Health == nil {
		cfg.Health = NewHealthHandler(nil)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggingMiddleware(logger, cfg.MetricsPath))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", cfg.Health.Liveness)
	r.Get("/health/live", cfg.Health.Liveness)
	r.Get("/health/ready", cfg.Health.Readiness)
	r.Get("/version", Version)

	if cfg.MetricsHandler != nil {
		r.Handle(cfg.MetricsPath, cfg.MetricsHandler)
	}

	if cfg.Webhooks != nil {
		r.Post(cfg.WebhookPath, cfg.Webhooks.ServeHTTP)
	}

	if cfg.Notifications != nil {
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", cfg.Notifications.List)
			r.Get("/{id}", cfg.Notifications.Get)
		})
	}

	return r
}

// NewLoggingMiddleware creates a request logging middleware.
func NewLoggingMiddleware(logger zerolog.Logger, metricsPath string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			// Skip logging for health checks and metrics
			if strings.HasPrefix(r.URL.Path, "/health") || r.URL.Path == metricsPath {
				return
			}

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("http request")
		})
	}
}
