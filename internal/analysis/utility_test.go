package analysis

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestScoreEqualWeightsFullTie(t *testing.T) {
	scored, err := Score(triple(t), Weights{"F1": 1, "F2": 1})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	want := []string{"A", "B", "C"}
	for i, r := range scored.Rows {
		if r.ID != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], r.ID)
		}
		if r.WeightedScore != 50.0 {
			t.Errorf("%s: expected score 50.0, got %f", r.ID, r.WeightedScore)
		}
		if r.Rank != 1 {
			t.Errorf("%s: expected rank 1, got %d", r.ID, r.Rank)
		}
	}
}

func TestScoreCompetitionRanking(t *testing.T) {
	tbl := mustTable(t, []string{"F1"},
		row("low", 70),
		row("tieB", 80),
		row("top", 90),
		row("tieA", 80),
	)
	scored, err := Score(tbl, Weights{"F1": 1})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	wantIDs := []string{"top", "tieB", "tieA", "low"}
	wantRanks := []int{1, 2, 2, 4}
	for i, r := range scored.Rows {
		if r.ID != wantIDs[i] || r.Rank != wantRanks[i] {
			t.Errorf("row %d: expected %s rank %d, got %s rank %d", i, wantIDs[i], wantRanks[i], r.ID, r.Rank)
		}
	}
}

func TestScoreRoundsHalfAwayFromZero(t *testing.T) {
	// 10.125 is exact in binary; half-to-even would give 10.12.
	tbl := mustTable(t, []string{"F1", "F2"}, row("A", 10.125, 40))
	scored, err := Score(tbl, Weights{"F1": 1, "F2": 0})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got := scored.Rows[0].WeightedScore; got != 10.13 {
		t.Errorf("expected 10.13, got %v", got)
	}
}

func TestScoreNormalizesWeights(t *testing.T) {
	tbl := mustTable(t, []string{"F1", "F2"}, row("A", 80, 20))
	scored, err := Score(tbl, Weights{"F1": 3, "F2": 1})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// 80*0.75 + 20*0.25 = 65
	if got := scored.Rows[0].WeightedScore; math.Abs(got-65) > 0.001 {
		t.Errorf("expected 65, got %f", got)
	}
	if math.Abs(scored.Weights[0]-0.75) > 1e-9 || math.Abs(scored.Weights[1]-0.25) > 1e-9 {
		t.Errorf("expected normalized weights [0.75 0.25], got %v", scored.Weights)
	}
}

func TestScoreWeightScalingInvariant(t *testing.T) {
	tbl := randomTable(t, 40, 4, 7)
	w := Weights{"F1": 0.35, "F2": 0.30, "F3": 0.20, "F4": 0.15}
	base, err := Score(tbl, w)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	for _, c := range []float64{0.01, 3, 250} {
		scaled, err := Score(tbl, w.Scale(c))
		if err != nil {
			t.Fatalf("Score scaled by %v: %v", c, err)
		}
		for i := range base.Rows {
			if base.Rows[i].ID != scaled.Rows[i].ID {
				t.Fatalf("scale %v: row %d order changed", c, i)
			}
			if math.Abs(base.Rows[i].WeightedScore-scaled.Rows[i].WeightedScore) > 0.01 {
				t.Errorf("scale %v: %s score %f vs %f", c, base.Rows[i].ID, base.Rows[i].WeightedScore, scaled.Rows[i].WeightedScore)
			}
		}
	}
}

func TestScoreRankMonotonicity(t *testing.T) {
	// Values on a coarse grid so ties occur.
	tbl := randomTable(t, 60, 3, 11)
	scored, err := Score(tbl, Weights{"F1": 1, "F2": 1, "F3": 1})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for _, a := range scored.Rows {
		for _, b := range scored.Rows {
			if (a.WeightedScore > b.WeightedScore) != (a.Rank < b.Rank) {
				t.Fatalf("%s(%f, #%d) vs %s(%f, #%d) breaks monotonicity", a.ID, a.WeightedScore, a.Rank, b.ID, b.WeightedScore, b.Rank)
			}
			if (a.WeightedScore == b.WeightedScore) != (a.Rank == b.Rank) {
				t.Fatalf("%s and %s: equal scores must share a rank", a.ID, b.ID)
			}
		}
	}
	if len(scored.Rows) != tbl.Len() {
		t.Errorf("expected %d rows, got %d", tbl.Len(), len(scored.Rows))
	}
}

func TestScoreInputOrderIndependent(t *testing.T) {
	forward := mustTable(t, []string{"F1", "F2"}, row("A", 10, 90), row("B", 60, 60), row("C", 90, 5))
	reverse := mustTable(t, []string{"F1", "F2"}, row("C", 90, 5), row("B", 60, 60), row("A", 10, 90))
	w := Weights{"F1": 2, "F2": 1}

	a, err := Score(forward, w)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	b, err := Score(reverse, w)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for i := range a.Rows {
		if a.Rows[i].ID != b.Rows[i].ID || a.Rows[i].Rank != b.Rows[i].Rank {
			t.Errorf("row %d differs: %s#%d vs %s#%d", i, a.Rows[i].ID, a.Rows[i].Rank, b.Rows[i].ID, b.Rows[i].Rank)
		}
	}
}

func TestScoreInvalidWeights(t *testing.T) {
	tests := []struct {
		name string
		w    Weights
	}{
		{"zero sum", Weights{"F1": 0, "F2": 0}},
		{"negative", Weights{"F1": -1, "F2": 3}},
		{"unknown factor", Weights{"F1": 1, "F2": 1, "F9": 1}},
		{"missing factor", Weights{"F1": 1}},
		{"empty", Weights{}},
		{"nan", Weights{"F1": math.NaN(), "F2": 1}},
		{"infinite", Weights{"F1": math.Inf(1), "F2": 1}},
		{"sum overflows", Weights{"F1": 1e308, "F2": 1e308}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored, err := Score(triple(t), tt.w)
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
			if scored != nil {
				t.Error("expected no partial result")
			}
		})
	}
}

func TestScorerUsesDefaults(t *testing.T) {
	scorer := NewScorer(Weights{"F1": 1, "F2": 0})
	scored, err := scorer.Score(triple(t), nil)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if scored.Rows[0].ID != "A" || scored.Rows[0].WeightedScore != 100 {
		t.Errorf("expected A at 100 first, got %s at %f", scored.Rows[0].ID, scored.Rows[0].WeightedScore)
	}

	scored, err = scorer.Score(triple(t), Weights{"F1": 0, "F2": 1})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if scored.Rows[0].ID != "B" {
		t.Errorf("explicit weights should override defaults, got %s first", scored.Rows[0].ID)
	}
}

func TestScoredTableTopAndRankOf(t *testing.T) {
	scored, err := Score(triple(t), Weights{"F1": 2, "F2": 1})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got := ids(scored.Top(2)); len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Errorf("expected [A C], got %v", got)
	}
	if got := len(scored.Top(50)); got != 3 {
		t.Errorf("expected all 3 rows, got %d", got)
	}
	if got := scored.RankOf("B"); got != 3 {
		t.Errorf("expected B rank 3, got %d", got)
	}
	if got := scored.RankOf("nobody"); got != 0 {
		t.Errorf("expected 0 for unknown entity, got %d", got)
	}
}

func randomTable(t *testing.T, n, k int, seed int64) *Table {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	factors := make([]string, k)
	for i := range factors {
		factors[i] = "F" + string(rune('1'+i))
	}
	rows := make([]Entity, n)
	for i := range rows {
		values := make([]float64, k)
		for j := range values {
			values[j] = float64(rng.Intn(11) * 10)
		}
		rows[i] = Entity{ID: "E" + string(rune('A'+i%26)) + string(rune('a'+i/26)), Values: values}
	}
	return mustTable(t, factors, rows...)
}
