// Package metrics holds the Prometheus collectors for the analysis service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	AnalysisRuns     *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	EntitiesAnalyzed prometheus.Histogram
	ParetoSize       prometheus.Gauge
	HTTPRequests     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AnalysisRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payoff",
			Name:      "analysis_runs_total",
			Help:      "Analysis runs by outcome.",
		}, []string{"outcome"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "payoff",
			Name:      "analysis_duration_seconds",
			Help:      "Time to run a full analysis.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		EntitiesAnalyzed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "payoff",
			Name:      "analysis_entities",
			Help:      "Entities per analysis run.",
			Buckets:   []float64{1, 5, 10, 20, 50, 100, 200},
		}),
		ParetoSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "payoff",
			Name:      "pareto_set_size",
			Help:      "Pareto-optimal entities in the most recent run.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "payoff",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status.",
		}, []string{"method", "status"}),
	}
	reg.MustRegister(m.AnalysisRuns, m.AnalysisDuration, m.EntitiesAnalyzed, m.ParetoSize, m.HTTPRequests)
	return m
}

// ObserveRun records one analysis run. outcome is "ok" or an error class.
func (m *Metrics) ObserveRun(outcome string, entities, pareto int, took time.Duration) {
	if m == nil {
		return
	}
	m.AnalysisRuns.WithLabelValues(outcome).Inc()
	m.AnalysisDuration.Observe(took.Seconds())
	if outcome == "ok" {
		m.EntitiesAnalyzed.Observe(float64(entities))
		m.ParetoSize.Set(float64(pareto))
	}
}
