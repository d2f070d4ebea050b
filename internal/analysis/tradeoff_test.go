package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredFixture(t *testing.T) *ScoredTable {
	t.Helper()
	tbl := mustTable(t, []string{"Freedom", "Income", "Cost"},
		row("north", 90.0, 70.4, 40.0),
		row("west", 80.0, 85.0, 50.0),
		row("south", 70.0, 50.0, 80.0),
		row("east", 30.0, 95.0, 99.0),
	)
	scored, err := Score(tbl, Weights{"Freedom": 0.5, "Income": 0.3, "Cost": 0.2})
	require.NoError(t, err)
	// west 75.5, north 74.12, south 66, east 63.3
	require.Equal(t, []string{"west", "north", "south", "east"}, ids(scored.Rows))
	return scored
}

func TestTradeoffMatrixSubsetRelative(t *testing.T) {
	tm, err := TradeoffMatrix(scoredFixture(t), 3)
	require.NoError(t, err)

	// east is outside the top 3, so its 95 income and 99 cost do not count.
	assert.Equal(t, []float64{90, 85, 80}, tm.Best)
	require.Len(t, tm.Rows, 3)

	assert.Equal(t, "west", tm.Rows[0].ID)
	assert.Equal(t, 1, tm.Rows[0].Rank)
	assert.Equal(t, []float64{-10, 0, -30}, tm.Rows[0].Deltas)
	assert.Equal(t, []float64{0, -14.6, -40}, tm.Rows[1].Deltas)
	assert.Equal(t, []float64{-20, -35, 0}, tm.Rows[2].Deltas)
}

func TestTradeoffMatrixTopNBeyondRows(t *testing.T) {
	tm, err := TradeoffMatrix(scoredFixture(t), 100)
	require.NoError(t, err)
	assert.Len(t, tm.Rows, 4)
	assert.Equal(t, []float64{90, 95, 99}, tm.Best)
}

func TestTradeoffMatrixZeroBound(t *testing.T) {
	scored, err := Score(randomTable(t, 30, 4, 9), Weights{"F1": 1, "F2": 2, "F3": 3, "F4": 4})
	require.NoError(t, err)

	for _, n := range []int{1, 5, 10, 30} {
		tm, err := TradeoffMatrix(scored, n)
		require.NoError(t, err)
		for k := range tm.Factors {
			hasZero := false
			for _, r := range tm.Rows {
				assert.LessOrEqual(t, r.Deltas[k], 0.0)
				if r.Deltas[k] == 0 {
					hasZero = true
				}
			}
			assert.True(t, hasZero, "top %d factor %s has no best-in-class row", n, tm.Factors[k])
		}
	}
}

func TestTradeoffsRejectBadTopN(t *testing.T) {
	scored := scoredFixture(t)
	_, err := TradeoffMatrix(scored, 0)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = PairwiseTradeoffs(scored, -1)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestPairwiseTradeoffs(t *testing.T) {
	pairs, err := PairwiseTradeoffs(scoredFixture(t), 3)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	assert.Equal(t, PairwiseTradeoff{
		FactorA: "Freedom", FactorB: "Income", BestInA: "north",
		AScore: 90, BScore: 70.4, BBest: 85, BGap: -14.6,
	}, pairs[0])
	assert.Equal(t, PairwiseTradeoff{
		FactorA: "Freedom", FactorB: "Cost", BestInA: "north",
		AScore: 90, BScore: 40, BBest: 80, BGap: -40,
	}, pairs[1])
	assert.Equal(t, PairwiseTradeoff{
		FactorA: "Income", FactorB: "Cost", BestInA: "west",
		AScore: 85, BScore: 50, BBest: 80, BGap: -30,
	}, pairs[2])
}

func TestPairwiseTradeoffsPairCount(t *testing.T) {
	scored, err := Score(randomTable(t, 12, 4, 1), Weights{"F1": 1, "F2": 1, "F3": 1, "F4": 1})
	require.NoError(t, err)
	pairs, err := PairwiseTradeoffs(scored, 10)
	require.NoError(t, err)
	assert.Len(t, pairs, 6)
	for _, p := range pairs {
		assert.LessOrEqual(t, p.BGap, 0.0)
		assert.NotEqual(t, p.FactorA, p.FactorB)
	}
}

func TestTradeoffsEmptyScoredTable(t *testing.T) {
	scored, err := Score(mustTable(t, []string{"F1", "F2"}), Weights{"F1": 1, "F2": 1})
	require.NoError(t, err)

	tm, err := TradeoffMatrix(scored, 10)
	require.NoError(t, err)
	assert.Empty(t, tm.Rows)

	pairs, err := PairwiseTradeoffs(scored, 10)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestPairwiseTradeoffsTiedLeaderFollowsRank(t *testing.T) {
	tbl := mustTable(t, []string{"A", "B"},
		row("first", 80, 60),
		row("second", 80, 90),
		row("third", 50, 100),
	)
	scored, err := Score(tbl, Weights{"A": 1, "B": 1})
	require.NoError(t, err)
	require.Equal(t, []string{"second", "third", "first"}, ids(scored.Rows))

	pairs, err := PairwiseTradeoffs(scored, 3)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	// first and second share A = 80; second ranks higher.
	assert.Equal(t, PairwiseTradeoff{
		FactorA: "A", FactorB: "B",
		BestInA: "second", AScore: 80, BScore: 90, BBest: 100, BGap: -10,
	}, pairs[0])
}

func TestPairwiseTradeoffsTiedScoresUseRowOrder(t *testing.T) {
	tbl := mustTable(t, []string{"A", "B"},
		row("x", 60, 40),
		row("y", 60, 40),
	)
	scored, err := Score(tbl, Weights{"A": 1, "B": 1})
	require.NoError(t, err)

	pairs, err := PairwiseTradeoffs(scored, 2)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "x", pairs[0].BestInA)
	assert.Equal(t, 0.0, pairs[0].BGap)
}
