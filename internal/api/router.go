package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Payoff/internal/dataset"
	"github.com/MikeSquared-Agency/Payoff/internal/metrics"
	"github.com/MikeSquared-Agency/Payoff/internal/service"
)

// Analyzer is the service surface the HTTP handlers need.
type Analyzer interface {
	Analyze(ctx context.Context, req service.Request) (*service.Report, error)
	Countries(ctx context.Context) ([]service.CountryView, error)
	Factors() []service.Factor
	Groups() []dataset.Group
}

func NewRouter(a Analyzer, m *metrics.Metrics, rateLimit int, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger, m))
	r.Use(RateLimitMiddleware(rateLimit))

	h := NewAnalysisHandler(a, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/factors", h.Factors)
		r.Get("/groups", h.Groups)
		r.Get("/countries", h.Countries)
		r.Post("/analysis", h.Analyze)
	})

	return r
}

func NewMetricsRouter(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}
