package store

import (
	"context"

	"github.com/MikeSquared-Agency/Payoff/internal/dataset"
)

// Store is a read-only source of the country dataset.
type Store interface {
	// ListCountries returns every country with its sub-metric scores in
	// load order. Load order is the tie-break order for the analyses.
	ListCountries(ctx context.Context) ([]dataset.Country, error)
	// ListEstimates returns the cells flagged as estimated.
	ListEstimates(ctx context.Context) ([]dataset.Cell, error)
	Close() error
}

// StaticStore serves the compiled-in dataset.
type StaticStore struct{}

func NewStaticStore() *StaticStore {
	return &StaticStore{}
}

func (s *StaticStore) ListCountries(_ context.Context) ([]dataset.Country, error) {
	return dataset.Countries(), nil
}

func (s *StaticStore) ListEstimates(_ context.Context) ([]dataset.Cell, error) {
	return dataset.EstimatedCells(), nil
}

func (s *StaticStore) Close() error { return nil }
