package analysis

import (
	"fmt"
	"math"
	"sort"
)

// Weights maps factor name to a non-negative relative weight. Weights do not
// need to sum to 1; they are normalized before use.
type Weights map[string]float64

// Sum returns the total of all weights, added in name order so repeated
// calls agree to the last bit.
func (w Weights) Sum() float64 {
	var total float64
	for _, name := range w.names() {
		total += w[name]
	}
	return total
}

// Scale returns a copy with every weight multiplied by c.
func (w Weights) Scale(c float64) Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v * c
	}
	return out
}

// Validate checks the vector against a factor set: every factor must have a
// weight, no weight may name an unknown factor or be negative or non-finite,
// and the sum must be positive and finite.
func (w Weights) Validate(factors []string) error {
	known := make(map[string]struct{}, len(factors))
	for _, f := range factors {
		known[f] = struct{}{}
		if _, ok := w[f]; !ok {
			return fmt.Errorf("%w: no weight for factor %q", ErrConfiguration, f)
		}
	}
	for _, name := range w.names() {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: weight for unknown factor %q", ErrConfiguration, name)
		}
		if v := w[name]; math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight for %q is not finite", ErrConfiguration, name)
		}
		if w[name] < 0 {
			return fmt.Errorf("%w: negative weight %f for %q", ErrConfiguration, w[name], name)
		}
	}
	sum := w.Sum()
	if math.IsInf(sum, 0) {
		return fmt.Errorf("%w: weights overflow when summed", ErrConfiguration)
	}
	if sum <= 0 {
		return fmt.Errorf("%w: weights sum to %.4f, must be positive", ErrConfiguration, sum)
	}
	return nil
}

// Normalize validates the vector and returns the weights divided by their
// sum, aligned with factors.
func (w Weights) Normalize(factors []string) ([]float64, error) {
	if err := w.Validate(factors); err != nil {
		return nil, err
	}
	total := w.Sum()
	out := make([]float64, len(factors))
	for i, f := range factors {
		out[i] = w[f] / total
	}
	return out, nil
}

// names returns weight keys in sorted order so validation errors are stable.
func (w Weights) names() []string {
	out := make([]string, 0, len(w))
	for k := range w {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
