package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forester-bio/forester/pkg/errors"
	"github.com/forester-bio/forester/pkg/table"
)

func TestEdgesFromTable(t *testing.T) {
	tb := table.New("protein1", "protein2", "cost")
	require.NoError(t, tb.Append("A", "B", "1.0"))
	require.NoError(t, tb.Append("B", "C", "2.5"))

	edges, err := EdgesFromTable(tb)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, Edge{Source: "A", Target: "B", Cost: 1.0}, edges[0])
	assert.Equal(t, Edge{Source: "B", Target: "C", Cost: 2.5}, edges[1])
}

func TestEdgesFromTable_TooNarrow(t *testing.T) {
	tb := table.New("a", "b")
	_, err := EdgesFromTable(tb)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidTable))
}

func TestPrizesFromTable(t *testing.T) {
	tb := table.New("name", "prize", "score", "gene")
	require.NoError(t, tb.Append("9606.ENSP1", "5.0", "0.9", "TP53"))

	prizes, err := PrizesFromTable(tb)
	require.NoError(t, err)
	require.Len(t, prizes, 1)
	assert.Equal(t, Prize{Name: "9606.ENSP1", Prize: 5.0, Score: 0.9, Gene: "TP53"}, prizes[0])
}

func TestPrizesFromTable_MissingPrizeColumn(t *testing.T) {
	tb := table.New("name", "gene")
	_, err := PrizesFromTable(tb)
	assert.True(t, errors.Is(err, errors.ErrCodeMissingColumn))
}

func TestPrizesFromTable_OptionalColumnsAbsent(t *testing.T) {
	tb := table.New("name", "prize")
	require.NoError(t, tb.Append("A", "1.0"))

	prizes, err := PrizesFromTable(tb)
	require.NoError(t, err)
	assert.Equal(t, Prize{Name: "A", Prize: 1.0}, prizes[0])
}

func TestSolutionValidate(t *testing.T) {
	ok := Solution{
		Vertices: []string{"A", "B"},
		Edges:    []Edge{{Source: "A", Target: "B", Cost: 1}},
	}
	assert.NoError(t, ok.Validate())

	bad := Solution{
		Vertices: []string{"A"},
		Edges:    []Edge{{Source: "A", Target: "B", Cost: 1}},
	}
	err := bad.Validate()
	assert.True(t, errors.Is(err, errors.ErrCodeSolverOutput))
}
