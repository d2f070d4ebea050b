package analysis

import "sort"

// ScoredEntity is an entity with its weighted utility and rank.
type ScoredEntity struct {
	Entity
	WeightedScore float64 `json:"weighted_score"`
	Rank          int     `json:"rank"`
}

// ScoredTable is a factor table ranked by weighted utility, best first.
type ScoredTable struct {
	Factors []string       `json:"factors"`
	Weights []float64      `json:"weights"`
	Rows    []ScoredEntity `json:"rows"`
}

// Top returns the first n rows, or all rows when n exceeds the row count.
func (s *ScoredTable) Top(n int) []ScoredEntity {
	if n > len(s.Rows) {
		n = len(s.Rows)
	}
	if n < 0 {
		n = 0
	}
	return s.Rows[:n]
}

// Scorer computes weighted utility scores. The default vector is used when a
// call passes nil weights.
type Scorer struct {
	defaults Weights
}

// NewScorer creates a Scorer that falls back to defaults.
func NewScorer(defaults Weights) *Scorer {
	return &Scorer{defaults: defaults}
}

// Score ranks the table by weighted utility using w, or the scorer defaults
// when w is nil.
func (s *Scorer) Score(t *Table, w Weights) (*ScoredTable, error) {
	if w == nil {
		w = s.defaults
	}
	return Score(t, w)
}

// Score computes WeightedScore = Σ value × normalized weight for every row,
// rounded half away from zero to 2 decimals, and ranks rows with standard
// competition ranking: a row's rank is 1 + the number of rows with a
// strictly higher score, so tied scores share the lower rank. Rows are
// sorted by score descending, ties kept in Seq order.
func Score(t *Table, w Weights) (*ScoredTable, error) {
	norm, err := w.Normalize(t.factors)
	if err != nil {
		return nil, err
	}

	rows := make([]ScoredEntity, len(t.rows))
	for i, r := range t.rows {
		var total float64
		for j, v := range r.Values {
			total += v * norm[j]
		}
		rows[i] = ScoredEntity{Entity: r.clone(), WeightedScore: round(total, 2)}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WeightedScore != rows[j].WeightedScore {
			return rows[i].WeightedScore > rows[j].WeightedScore
		}
		return rows[i].Seq < rows[j].Seq
	})
	for i := range rows {
		if i > 0 && rows[i].WeightedScore == rows[i-1].WeightedScore {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
	}

	return &ScoredTable{Factors: t.Factors(), Weights: norm, Rows: rows}, nil
}

// RankOf returns the rank of an entity, or 0 if it is not in the table.
func (s *ScoredTable) RankOf(id string) int {
	for _, r := range s.Rows {
		if r.ID == id {
			return r.Rank
		}
	}
	return 0
}
