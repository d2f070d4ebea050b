package analysis

import "fmt"

// DefaultTopN is the size of the comparison subset for trade-off reports.
const DefaultTopN = 10

// Options tunes Analyze. Zero values pick defaults: TopN falls back to
// DefaultTopN, XFactor to the first factor and YFactor to the first factor
// other than XFactor.
type Options struct {
	TopN    int
	XFactor string
	YFactor string
}

// Report bundles every analysis of one table.
type Report struct {
	Scored           *ScoredTable       `json:"scored"`
	ParetoOptimal    []string           `json:"pareto_optimal"`
	Frontier         *Frontier          `json:"frontier"`
	DominantStrategy *string            `json:"dominant_strategy"`
	MostBalanced     Balance            `json:"most_balanced"`
	Tradeoffs        *TradeoffTable     `json:"tradeoff_matrix"`
	Pairwise         []PairwiseTradeoff `json:"pairwise_tradeoffs"`
}

// Analyze runs every analysis over t with weights w, resolved through the
// scorer defaults when w is nil. Inputs are validated before anything is
// computed, so a failure never yields a partial report.
func (s *Scorer) Analyze(t *Table, w Weights, opts Options) (*Report, error) {
	if w == nil {
		w = s.defaults
	}
	return Analyze(t, w, opts)
}

// Analyze is the package-level form of Scorer.Analyze with explicit weights.
func Analyze(t *Table, w Weights, opts Options) (*Report, error) {
	opts = opts.withDefaults(t.factors)
	if err := validate(t, w, opts); err != nil {
		return nil, err
	}

	scored, err := Score(t, w)
	if err != nil {
		return nil, err
	}
	frontier, err := Frontier2D(t, opts.XFactor, opts.YFactor)
	if err != nil {
		return nil, err
	}
	balanced, err := MostBalanced(t)
	if err != nil {
		return nil, err
	}
	tradeoffs, err := TradeoffMatrix(scored, opts.TopN)
	if err != nil {
		return nil, err
	}
	pairwise, err := PairwiseTradeoffs(scored, opts.TopN)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Scored:        scored,
		ParetoOptimal: ParetoOptimal(t),
		Frontier:      frontier,
		MostBalanced:  balanced,
		Tradeoffs:     tradeoffs,
		Pairwise:      pairwise,
	}
	if id, ok := DominantStrategy(t); ok {
		report.DominantStrategy = &id
	}
	return report, nil
}

func (o Options) withDefaults(factors []string) Options {
	if o.TopN == 0 {
		o.TopN = DefaultTopN
	}
	if o.XFactor == "" && len(factors) > 0 {
		o.XFactor = factors[0]
	}
	if o.YFactor == "" {
		o.YFactor = o.XFactor
		for _, f := range factors {
			if f != o.XFactor {
				o.YFactor = f
				break
			}
		}
	}
	return o
}

func validate(t *Table, w Weights, opts Options) error {
	if err := w.Validate(t.factors); err != nil {
		return err
	}
	if _, err := t.FactorIndex(opts.XFactor); err != nil {
		return err
	}
	if _, err := t.FactorIndex(opts.YFactor); err != nil {
		return err
	}
	if opts.TopN < 1 {
		return fmt.Errorf("%w: top_n must be at least 1, got %d", ErrConfiguration, opts.TopN)
	}
	if t.Len() == 0 {
		return fmt.Errorf("%w: no entities selected", ErrEmptyInput)
	}
	return nil
}
