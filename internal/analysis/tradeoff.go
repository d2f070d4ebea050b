package analysis

import "fmt"

// TradeoffRow holds one entity's gap to the best value of each factor within
// the compared subset. Deltas align with TradeoffTable.Factors and are <= 0.
type TradeoffRow struct {
	ID            string    `json:"id"`
	WeightedScore float64   `json:"weighted_score"`
	Rank          int       `json:"rank"`
	Deltas        []float64 `json:"deltas"`
}

// TradeoffTable compares the top rows of a ScoredTable against their own
// best-in-class values.
type TradeoffTable struct {
	Factors []string      `json:"factors"`
	Best    []float64     `json:"best"`
	Rows    []TradeoffRow `json:"rows"`
}

// PairwiseTradeoff reports what the leader in factor A gives up in factor B.
type PairwiseTradeoff struct {
	FactorA string  `json:"factor_a"`
	FactorB string  `json:"factor_b"`
	BestInA string  `json:"best_in_a"`
	AScore  float64 `json:"a_score"`
	BScore  float64 `json:"b_score"`
	BBest   float64 `json:"b_best_in_class"`
	BGap    float64 `json:"b_gap"`
}

// TradeoffMatrix restricts the scored table to its first topN rows and
// reports, per row and factor, value minus the subset maximum rounded to 1
// decimal. Best-in-class is relative to the subset, not the full table.
func TradeoffMatrix(scored *ScoredTable, topN int) (*TradeoffTable, error) {
	subset, err := topSubset(scored, topN)
	if err != nil {
		return nil, err
	}
	best := subsetBest(scored.Factors, subset)

	out := &TradeoffTable{Factors: append([]string(nil), scored.Factors...), Best: best, Rows: make([]TradeoffRow, len(subset))}
	for i, r := range subset {
		deltas := make([]float64, len(scored.Factors))
		for k, v := range r.Values {
			deltas[k] = round(v-best[k], 1)
		}
		out.Rows[i] = TradeoffRow{ID: r.ID, WeightedScore: r.WeightedScore, Rank: r.Rank, Deltas: deltas}
	}
	return out, nil
}

// PairwiseTradeoffs reports, for every unordered factor pair (A, B) in factor
// order, the subset leader in A and its gap to the subset best in B. The
// leader is the first row in rank order holding the maximum of A.
func PairwiseTradeoffs(scored *ScoredTable, topN int) ([]PairwiseTradeoff, error) {
	subset, err := topSubset(scored, topN)
	if err != nil {
		return nil, err
	}
	k := len(scored.Factors)
	out := make([]PairwiseTradeoff, 0, k*(k-1)/2)
	if len(subset) == 0 {
		return out, nil
	}
	best := subsetBest(scored.Factors, subset)

	for a := 0; a < k; a++ {
		leader := subset[0]
		for _, r := range subset[1:] {
			if r.Values[a] > leader.Values[a] {
				leader = r
			}
		}
		for b := a + 1; b < k; b++ {
			out = append(out, PairwiseTradeoff{
				FactorA: scored.Factors[a],
				FactorB: scored.Factors[b],
				BestInA: leader.ID,
				AScore:  leader.Values[a],
				BScore:  leader.Values[b],
				BBest:   best[b],
				BGap:    round(leader.Values[b]-best[b], 1),
			})
		}
	}
	return out, nil
}

func topSubset(scored *ScoredTable, topN int) ([]ScoredEntity, error) {
	if topN < 1 {
		return nil, fmt.Errorf("%w: top_n must be at least 1, got %d", ErrConfiguration, topN)
	}
	return scored.Top(topN), nil
}

func subsetBest(factors []string, subset []ScoredEntity) []float64 {
	best := make([]float64, len(factors))
	for k := range factors {
		for i, r := range subset {
			if i == 0 || r.Values[k] > best[k] {
				best[k] = r.Values[k]
			}
		}
	}
	return best
}
