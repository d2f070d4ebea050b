package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeSquared-Agency/Payoff/internal/dataset"
)

// Schema creates the dataset tables if they do not exist.
const Schema = `
CREATE TABLE IF NOT EXISTS payoff_countries (
	country TEXT PRIMARY KEY,
	region  TEXT NOT NULL,
	seq     INTEGER NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS payoff_subfactor_scores (
	country TEXT NOT NULL REFERENCES payoff_countries(country) ON DELETE CASCADE,
	metric  TEXT NOT NULL,
	score   DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (country, metric)
);
CREATE TABLE IF NOT EXISTS payoff_estimated_cells (
	country TEXT NOT NULL REFERENCES payoff_countries(country) ON DELETE CASCADE,
	metric  TEXT NOT NULL,
	PRIMARY KEY (country, metric)
);`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) ListCountries(ctx context.Context) ([]dataset.Country, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.country, c.region, sc.metric, sc.score
		FROM payoff_countries c
		LEFT JOIN payoff_subfactor_scores sc ON sc.country = c.country
		ORDER BY c.seq, sc.metric`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var out []dataset.Country
	for rows.Next() {
		var name, region string
		var metric *string
		var score *float64
		if err := rows.Scan(&name, &region, &metric, &score); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].Name != name {
			out = append(out, dataset.Country{Name: name, Region: region, Scores: make(map[string]float64)})
		}
		if metric != nil && score != nil {
			out[len(out)-1].Scores[*metric] = *score
		}
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListEstimates(ctx context.Context) ([]dataset.Cell, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT country, metric FROM payoff_estimated_cells
		ORDER BY country, metric`)
	if err != nil {
		return nil, fmt.Errorf("list estimates: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (dataset.Cell, error) {
		var c dataset.Cell
		err := row.Scan(&c.Country, &c.Metric)
		return c, err
	})
}

// Seed replaces the stored dataset with countries and cells in one
// transaction. Country order becomes the stored load order.
func (s *PostgresStore) Seed(ctx context.Context, countries []dataset.Country, cells []dataset.Cell) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.Exec(ctx, `TRUNCATE payoff_countries CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	batch := &pgx.Batch{}
	for i, c := range countries {
		batch.Queue(`INSERT INTO payoff_countries (country, region, seq) VALUES ($1, $2, $3)`, c.Name, c.Region, i)
		for metric, score := range c.Scores {
			batch.Queue(`INSERT INTO payoff_subfactor_scores (country, metric, score) VALUES ($1, $2, $3)`, c.Name, metric, score)
		}
	}
	for _, cell := range cells {
		batch.Queue(`INSERT INTO payoff_estimated_cells (country, metric) VALUES ($1, $2)`, cell.Country, cell.Metric)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed rows: %w", err)
	}
	return tx.Commit(ctx)
}
