package service

import (
	"context"
	"fmt"

	"github.com/MikeSquared-Agency/Payoff/internal/dataset"
)

// CountryView is one country with its factor values, raw sub-metrics and
// the sub-metrics that are regional estimates.
type CountryView struct {
	Country    string             `json:"country"`
	Region     string             `json:"region"`
	Factors    map[string]float64 `json:"factors"`
	Subfactors map[string]float64 `json:"subfactors"`
	Estimated  []string           `json:"estimated"`
}

// Factor describes a decision factor and its configured default weight.
type Factor struct {
	Name          string   `json:"name"`
	Subfactors    []string `json:"subfactors"`
	DefaultWeight float64  `json:"default_weight"`
}

// Countries returns every stored country in load order.
func (s *Service) Countries(ctx context.Context) ([]CountryView, error) {
	countries, err := s.store.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	cells, err := s.store.ListEstimates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load estimates: %w", err)
	}
	est := dataset.NewEstimates(cells)

	out := make([]CountryView, len(countries))
	for i, c := range countries {
		subs := make(map[string]float64, len(c.Scores))
		for k, v := range c.Scores {
			subs[k] = v
		}
		estimated := est.For(c.Name)
		if estimated == nil {
			estimated = []string{}
		}
		out[i] = CountryView{
			Country:    c.Name,
			Region:     c.Region,
			Factors:    dataset.FactorScores(c.Scores),
			Subfactors: subs,
			Estimated:  estimated,
		}
	}
	return out, nil
}

// Factors lists the decision factors in column order.
func (s *Service) Factors() []Factor {
	weights := s.cfg.Weights.AsWeights()
	names := dataset.Factors()
	out := make([]Factor, len(names))
	for i, name := range names {
		out[i] = Factor{
			Name:          name,
			Subfactors:    append([]string(nil), dataset.Composition[name]...),
			DefaultWeight: weights[name],
		}
	}
	return out
}

// Groups lists the country groups with the configured default first.
func (s *Service) Groups() []dataset.Group {
	groups := dataset.Groups()
	out := make([]dataset.Group, 0, len(groups))
	for _, g := range groups {
		if g.Name == s.cfg.DefaultGroup {
			out = append(out, g)
		}
	}
	for _, g := range groups {
		if g.Name != s.cfg.DefaultGroup {
			out = append(out, g)
		}
	}
	return out
}
