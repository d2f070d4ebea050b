package analysis

import (
	"fmt"
	"math"
)

// DominantStrategy returns the entity that holds the maximum of every factor,
// if there is one. When several entities tie for a factor's maximum, the
// lexicographically smallest ID is taken as that factor's leader. An empty
// table has no dominant strategy.
func DominantStrategy(t *Table) (string, bool) {
	if len(t.rows) == 0 {
		return "", false
	}
	var dominant string
	for k := range t.factors {
		leader := t.rows[0]
		for _, r := range t.rows[1:] {
			if r.Values[k] > leader.Values[k] || (r.Values[k] == leader.Values[k] && r.ID < leader.ID) {
				leader = r
			}
		}
		if k == 0 {
			dominant = leader.ID
		} else if leader.ID != dominant {
			return "", false
		}
	}
	return dominant, true
}

// Balance is an entity's dispersion summary across its factors.
type Balance struct {
	ID     string  `json:"id"`
	StdDev float64 `json:"std_dev"`
	Mean   float64 `json:"mean"`
}

// Balances returns the sample standard deviation and mean for every row, in
// table order. With fewer than two factors the deviation is 0.
func Balances(t *Table) []Balance {
	out := make([]Balance, len(t.rows))
	for i, r := range t.rows {
		mean, sd := meanStdDev(r.Values)
		out[i] = Balance{ID: r.ID, StdDev: sd, Mean: mean}
	}
	return out
}

// MostBalanced picks the entity with the smallest standard deviation across
// its factors, preferring the higher mean on ties and the earlier row after
// that.
func MostBalanced(t *Table) (Balance, error) {
	if len(t.rows) == 0 {
		return Balance{}, fmt.Errorf("%w: most balanced entity needs at least one row", ErrEmptyInput)
	}
	var best Balance
	bestSeq := 0
	for i, b := range Balances(t) {
		seq := t.rows[i].Seq
		switch {
		case i == 0,
			b.StdDev < best.StdDev,
			b.StdDev == best.StdDev && b.Mean > best.Mean,
			b.StdDev == best.StdDev && b.Mean == best.Mean && seq < bestSeq:
			best, bestSeq = b, seq
		}
	}
	return best, nil
}

func meanStdDev(values []float64) (float64, float64) {
	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n
	if len(values) < 2 {
		return mean, 0
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / (n - 1))
}
