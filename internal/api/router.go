package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rs/cors"
)

// RouterConfig holds what the router needs beyond the calculator
type RouterConfig struct {
	Logger      *slog.Logger
	CORSOrigins []string
	// Registry receives the API metrics and backs /metrics. A nil registry
	// gets a fresh one.
	Registry *prometheus.Registry
}

// NewRouter wires middleware, the API routes and /metrics
func NewRouter(calc *calculation.Calculator, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := cfg.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(RequestID)
	r.Use(Logger(logger, metrics))
	r.Use(chimw.Timeout(30 * time.Second))

	New(calc, logger, metrics).Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, Error(http.StatusNotFound, "not found"))
	})

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}).Handler(r)
}
