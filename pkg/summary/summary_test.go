package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forester-bio/forester/pkg/errors"
	"github.com/forester-bio/forester/pkg/netgraph"
)

func scoredGraph(t *testing.T) *netgraph.Graph {
	t.Helper()
	g := netgraph.New()
	require.NoError(t, g.SetEdge("A", "B", 1.0))
	require.NoError(t, g.SetAttr("A", "score", 0.1))
	require.NoError(t, g.SetAttr("B", "score", 0.5))
	return g
}

func TestNodeTable(t *testing.T) {
	tb, err := NodeTable(scoredGraph(t), []string{"score"})
	require.NoError(t, err)

	assert.Equal(t, []string{"node", "score"}, tb.Columns())
	assert.Equal(t, []string{"A", "0.1"}, tb.Row(0))
	assert.Equal(t, []string{"B", "0.5"}, tb.Row(1))
}

func TestNodeTable_SortDescending(t *testing.T) {
	tb, err := NodeTable(scoredGraph(t), []string{"score"}, WithSortBy("score"))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "0.5"}, tb.Row(0))
	assert.Equal(t, []string{"A", "0.1"}, tb.Row(1))
}

func TestNodeTable_MissingAttributeIsEmptyCell(t *testing.T) {
	g := scoredGraph(t)
	g.AddNode("C")

	tb, err := NodeTable(g, []string{"score"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", ""}, tb.Row(2))
}

func TestNodeTable_NodesWithoutSortValueSortLast(t *testing.T) {
	g := scoredGraph(t)
	g.AddNode("C")

	tb, err := NodeTable(g, []string{"score"}, WithSortBy("score"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", ""}, tb.Row(2))
}

func TestNodeTable_UnknownSortAttribute(t *testing.T) {
	_, err := NodeTable(scoredGraph(t), []string{"score"}, WithSortBy("rank"))
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownAttribute))
}

func TestNodeTable_StringAttributes(t *testing.T) {
	g := scoredGraph(t)
	require.NoError(t, g.SetAttr("A", "louvain_clusters", "0"))
	require.NoError(t, g.SetAttr("B", "louvain_clusters", "1"))

	tb, err := NodeTable(g, []string{"louvain_clusters", "score"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "0", "0.1"}, tb.Row(0))
}
