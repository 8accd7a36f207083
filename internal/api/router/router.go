// Package router wires the HTTP surface: webhook endpoints, health and
// metrics, and the token-guarded development and admin endpoints.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oppd-health/whatsapp-intake/internal/archive"
	"github.com/oppd-health/whatsapp-intake/internal/channels/whatsapp"
	httpmiddleware "github.com/oppd-health/whatsapp-intake/internal/http/middleware"
	"github.com/oppd-health/whatsapp-intake/internal/intake"
	"github.com/oppd-health/whatsapp-intake/internal/observability/metrics"
	"github.com/oppd-health/whatsapp-intake/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger  *logging.Logger
	Webhook *whatsapp.Webhook
	Intake  *intake.Service
	Archive *archive.Store
	Metrics *metrics.IntakeMetrics

	MetricsHandler  http.Handler
	AdminAuthSecret string
	DevSimToken     string
}

// New creates the chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Group(func(public chi.Router) {
		public.Get("/health", handleHealth)
		public.Get("/webhooks/whatsapp", cfg.Webhook.Verify)
		public.Post("/webhooks/whatsapp", withLatency(cfg.Metrics, "whatsapp", cfg.Webhook.Receive))
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	if cfg.DevSimToken != "" {
		sim := &simulateHandler{intake: cfg.Intake, token: cfg.DevSimToken, logger: cfg.Logger}
		r.Post("/dev/simulate", sim.Handle)
	}

	r.Group(func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
		h := &adminIntakeHandler{intake: cfg.Intake, archive: cfg.Archive, logger: cfg.Logger}
		admin.Get("/admin/intake/{identity}", h.Handle)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func withLatency(m *metrics.IntakeMetrics, endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		m.ObserveWebhookLatency(endpoint, time.Since(start).Seconds())
	}
}
