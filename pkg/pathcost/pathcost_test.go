package pathcost

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forester-bio/forester/pkg/table"
)

func edgeList(t *testing.T, rows ...[3]string) *table.Table {
	t.Helper()
	tb := table.New("protein1", "protein2", "cost")
	for _, r := range rows {
		require.NoError(t, tb.Append(r[0], r[1], r[2]))
	}
	return tb
}

func TestCosts_AllPairs(t *testing.T) {
	tb := edgeList(t, [3]string{"A", "B", "1.0"}, [3]string{"B", "C", "2.0"})

	costs, err := Costs([]string{"A", "B", "C"}, tb)
	require.NoError(t, err)

	want := map[Pair]float64{
		{From: "A", To: "B"}: 1.0,
		{From: "A", To: "C"}: 3.0,
		{From: "B", To: "C"}: 2.0,
	}
	assert.Equal(t, want, costs)
}

func TestCosts_UnreachablePairOmitted(t *testing.T) {
	// D-E is a separate component; pairs crossing it have no path.
	tb := edgeList(t,
		[3]string{"A", "B", "1.0"},
		[3]string{"D", "E", "1.0"},
	)

	costs, err := Costs([]string{"A", "B", "D"}, tb)
	require.NoError(t, err)

	assert.Contains(t, costs, Pair{From: "A", To: "B"})
	assert.NotContains(t, costs, Pair{From: "A", To: "D"})
	assert.NotContains(t, costs, Pair{From: "B", To: "D"})
}

func TestCosts_ProportionOutOfRange(t *testing.T) {
	tb := edgeList(t, [3]string{"A", "B", "1.0"})

	for _, p := range []float64{0, -0.5, 1.5} {
		_, err := Costs([]string{"A", "B"}, tb, WithProportion(p))
		assert.True(t, errors.Is(err, ErrProportionRange), "proportion %v", p)
	}
}

func TestCosts_SampledCount(t *testing.T) {
	// 5 seeds on a path: C(5,2) = 10 pairs; p = 0.5 must attempt exactly 5.
	tb := edgeList(t,
		[3]string{"A", "B", "1"},
		[3]string{"B", "C", "1"},
		[3]string{"C", "D", "1"},
		[3]string{"D", "E", "1"},
	)

	costs, err := Costs([]string{"A", "B", "C", "D", "E"}, tb,
		WithProportion(0.5), WithSeed(7))
	require.NoError(t, err)
	assert.Len(t, costs, 5, "connected graph: every sampled pair has a cost")
}

func TestCosts_SeededSamplingIsDeterministic(t *testing.T) {
	tb := edgeList(t,
		[3]string{"A", "B", "1"},
		[3]string{"B", "C", "1"},
		[3]string{"C", "D", "1"},
	)
	seeds := []string{"A", "B", "C", "D"}

	first, err := Costs(seeds, tb, WithProportion(0.5), WithSeed(42))
	require.NoError(t, err)
	second, err := Costs(seeds, tb, WithProportion(0.5), WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCosts_UnknownSeed(t *testing.T) {
	tb := edgeList(t, [3]string{"A", "B", "1.0"})

	_, err := Costs([]string{"A", "Z"}, tb)
	assert.True(t, errors.Is(err, ErrUnknownSeed))
}

func TestCosts_PairKeyFollowsSeedOrder(t *testing.T) {
	tb := edgeList(t, [3]string{"A", "B", "1.0"})

	costs, err := Costs([]string{"B", "A"}, tb)
	require.NoError(t, err)
	assert.Contains(t, costs, Pair{From: "B", To: "A"})
}
