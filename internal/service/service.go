// Package service runs analyses for callers: it resolves a country
// selection against the dataset, runs the analysis core and reports the
// outcome through metrics and events.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Payoff/internal/analysis"
	"github.com/MikeSquared-Agency/Payoff/internal/config"
	"github.com/MikeSquared-Agency/Payoff/internal/dataset"
	"github.com/MikeSquared-Agency/Payoff/internal/hermes"
	"github.com/MikeSquared-Agency/Payoff/internal/metrics"
	"github.com/MikeSquared-Agency/Payoff/internal/store"
)

var (
	ErrUnknownGroup   = errors.New("unknown country group")
	ErrUnknownCountry = errors.New("unknown country")
)

// Request selects countries and tunes one analysis run. A nil Countries
// analyses the whole group; an empty, non-nil list selects nothing.
type Request struct {
	Group     string             `json:"group,omitempty"`
	Countries []string           `json:"countries,omitempty"`
	Weights   map[string]float64 `json:"weights,omitempty"`
	TopN      int                `json:"top_n,omitempty"`
	XFactor   string             `json:"x_factor,omitempty"`
	YFactor   string             `json:"y_factor,omitempty"`
	Highlight string             `json:"highlight,omitempty"`
}

// HighlightRank places one selected country in the ranking.
type HighlightRank struct {
	Country string `json:"country"`
	Rank    int    `json:"rank"`
	Of      int    `json:"of"`
}

func (h HighlightRank) String() string {
	return fmt.Sprintf("#%d / %d", h.Rank, h.Of)
}

// Report is one analysis run with the selection it covered.
type Report struct {
	RunID     string           `json:"run_id"`
	Group     string           `json:"group"`
	Countries []string         `json:"countries"`
	Weights   analysis.Weights `json:"weights"`
	*analysis.Report
	Highlight *HighlightRank `json:"highlight,omitempty"`
	Estimated []dataset.Cell `json:"estimated"`
}

type Service struct {
	store   store.Store
	hermes  hermes.Client
	metrics *metrics.Metrics
	scorer  *analysis.Scorer
	cfg     config.AnalysisConfig
	logger  *slog.Logger
}

// New creates a Service. h and m may be nil to run without events or metrics.
func New(s store.Store, h hermes.Client, m *metrics.Metrics, cfg config.AnalysisConfig, logger *slog.Logger) *Service {
	return &Service{
		store:   s,
		hermes:  h,
		metrics: m,
		scorer:  analysis.NewScorer(cfg.Weights.AsWeights()),
		cfg:     cfg,
		logger:  logger,
	}
}

// Analyze runs every analysis over the requested selection.
func (s *Service) Analyze(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()

	report, err := s.analyze(ctx, runID, req)
	outcome, entities, pareto := "ok", 0, 0
	if err != nil {
		outcome = Outcome(err)
		s.logger.Warn("analysis failed", "run_id", runID, "group", req.Group, "error", err)
		s.publish(hermes.SubjectAnalysisFailed(runID), hermes.AnalysisFailedEvent{
			RunID: runID, Error: err.Error(), Timestamp: time.Now().UTC(),
		})
	} else {
		entities, pareto = len(report.Countries), len(report.ParetoOptimal)
		s.logger.Debug("analysis completed", "run_id", runID, "group", report.Group,
			"entities", entities, "pareto", pareto, "duration_ms", time.Since(start).Milliseconds())
		s.publish(hermes.SubjectAnalysisCompleted(runID), completedEvent(report))
	}
	s.metrics.ObserveRun(outcome, entities, pareto, time.Since(start))
	return report, err
}

func (s *Service) analyze(ctx context.Context, runID string, req Request) (*Report, error) {
	group := req.Group
	if group == "" {
		group = s.cfg.DefaultGroup
	}
	g, ok := dataset.LookupGroup(group)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	selected, err := selectCountries(g, req.Countries)
	if err != nil {
		return nil, err
	}

	countries, err := s.store.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	cells, err := s.store.ListEstimates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load estimates: %w", err)
	}
	if req.Countries == nil {
		selected = present(selected, countries)
	}
	full, err := dataset.FactorTable(countries)
	if err != nil {
		return nil, err
	}
	table, err := full.Select(selected)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCountry, err)
	}

	var weights analysis.Weights
	if req.Weights != nil {
		weights = analysis.Weights(req.Weights)
	}
	opts := analysis.Options{TopN: s.cfg.TopN, XFactor: s.cfg.FrontierX, YFactor: s.cfg.FrontierY}
	if req.TopN != 0 {
		opts.TopN = req.TopN
	}
	if req.XFactor != "" {
		opts.XFactor = req.XFactor
	}
	if req.YFactor != "" {
		opts.YFactor = req.YFactor
	}

	result, err := s.scorer.Analyze(table, weights, opts)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     runID,
		Group:     g.Name,
		Countries: selectedOrder(table),
		Weights:   make(analysis.Weights, len(result.Scored.Factors)),
		Report:    result,
		Estimated: estimatedFor(dataset.NewEstimates(cells), selected),
	}
	for i, f := range result.Scored.Factors {
		report.Weights[f] = result.Scored.Weights[i]
	}
	if req.Highlight != "" {
		rank := result.Scored.RankOf(req.Highlight)
		if rank == 0 {
			return nil, fmt.Errorf("%w: highlight %q is not selected", ErrUnknownCountry, req.Highlight)
		}
		report.Highlight = &HighlightRank{Country: req.Highlight, Rank: rank, Of: len(result.Scored.Rows)}
	}
	return report, nil
}

// selectCountries keeps group order; requested names outside the group are
// an error.
func selectCountries(g dataset.Group, requested []string) ([]string, error) {
	if requested == nil {
		return g.Countries, nil
	}
	members := make(map[string]struct{}, len(g.Countries))
	for _, c := range g.Countries {
		members[c] = struct{}{}
	}
	want := make(map[string]struct{}, len(requested))
	for _, c := range requested {
		if _, ok := members[c]; !ok {
			return nil, fmt.Errorf("%w: %q is not in group %q", ErrUnknownCountry, c, g.Name)
		}
		want[c] = struct{}{}
	}
	out := make([]string, 0, len(want))
	for _, c := range g.Countries {
		if _, ok := want[c]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// present drops group members the store holds no scores for.
func present(names []string, countries []dataset.Country) []string {
	have := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		have[c.Name] = struct{}{}
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := have[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

func selectedOrder(t *analysis.Table) []string {
	rows := t.Rows()
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func estimatedFor(e dataset.Estimates, countries []string) []dataset.Cell {
	out := []dataset.Cell{}
	for _, c := range countries {
		for _, m := range e.For(c) {
			out = append(out, dataset.Cell{Country: c, Metric: m})
		}
	}
	return out
}

func completedEvent(r *Report) hermes.AnalysisCompletedEvent {
	ev := hermes.AnalysisCompletedEvent{
		RunID:            r.RunID,
		Group:            r.Group,
		Entities:         len(r.Countries),
		ParetoOptimal:    r.ParetoOptimal,
		DominantStrategy: r.DominantStrategy,
		MostBalanced:     r.MostBalanced.ID,
		Timestamp:        time.Now().UTC(),
	}
	if len(r.Scored.Rows) > 0 {
		ev.Leader = r.Scored.Rows[0].ID
	}
	return ev
}

func (s *Service) publish(subject string, event interface{}) {
	if s.hermes == nil {
		return
	}
	if err := s.hermes.Publish(subject, event); err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

// Outcome classifies an analysis error for metrics and HTTP status mapping.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, analysis.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, analysis.ErrConfiguration):
		return "configuration"
	case errors.Is(err, analysis.ErrSchema), errors.Is(err, ErrUnknownGroup), errors.Is(err, ErrUnknownCountry):
		return "schema"
	default:
		return "error"
	}
}

// RequestHandler answers analysis requests arriving over hermes with the
// JSON report or {"error": "..."}.
func (s *Service) RequestHandler() hermes.Handler {
	return func(ctx context.Context, data []byte) []byte {
		var req Request
		var reply interface{}
		if err := json.Unmarshal(data, &req); err != nil {
			reply = map[string]string{"error": "invalid request body"}
		} else if report, err := s.Analyze(ctx, req); err != nil {
			reply = map[string]string{"error": err.Error(), "outcome": Outcome(err)}
		} else {
			reply = report
		}
		payload, err := json.Marshal(reply)
		if err != nil {
			return []byte(`{"error":"encode reply"}`)
		}
		return payload
	}
}
