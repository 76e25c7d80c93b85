package pcsf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forester-bio/forester/pkg/netgraph"
)

func pathGraph(t *testing.T) *netgraph.Graph {
	t.Helper()
	g := netgraph.New()
	require.NoError(t, g.SetEdge("A", "B", 1.0))
	require.NoError(t, g.SetEdge("B", "C", 2.0))
	return g
}

func attrFloat(t *testing.T, g *netgraph.Graph, id, key string) float64 {
	t.Helper()
	v, ok := g.Attr(id, key)
	require.True(t, ok, "node %s missing %s", id, key)
	f, ok := v.(float64)
	require.True(t, ok, "attribute %s is not a float", key)
	return f
}

func TestAnnotate_DegreeCentrality(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, Annotate(g))

	assert.InDelta(t, 0.5, attrFloat(t, g, "A", AttrDegree), 1e-12)
	assert.InDelta(t, 1.0, attrFloat(t, g, "B", AttrDegree), 1e-12)
	assert.InDelta(t, 0.5, attrFloat(t, g, "C", AttrDegree), 1e-12)
}

func TestAnnotate_Betweenness(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, Annotate(g))

	// Only the A..C pair routes through B; normalized over (n-1)(n-2)
	// ordered pairs that gives exactly 1 for the middle of a 3-path.
	assert.InDelta(t, 1.0, attrFloat(t, g, "B", AttrBetweenness), 1e-9)
	assert.InDelta(t, 0.0, attrFloat(t, g, "A", AttrBetweenness), 1e-9)
	assert.InDelta(t, 0.0, attrFloat(t, g, "C", AttrBetweenness), 1e-9)
}

func TestAnnotate_Eigenvector(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, Annotate(g))

	// Dominant eigenvector of the 3-path is (1, sqrt2, 1)/2.
	evA := attrFloat(t, g, "A", AttrEigenvector)
	evB := attrFloat(t, g, "B", AttrEigenvector)
	evC := attrFloat(t, g, "C", AttrEigenvector)
	assert.InDelta(t, 0.5, evA, 1e-3)
	assert.InDelta(t, math.Sqrt2/2, evB, 1e-3)
	assert.InDelta(t, evA, evC, 1e-6)
}

func TestAnnotate_LouvainLabelsCoverAllNodes(t *testing.T) {
	// Two triangles joined by nothing: Louvain must separate them.
	g := netgraph.New()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}, {"X", "Y"}, {"Y", "Z"}, {"X", "Z"}} {
		require.NoError(t, g.SetEdge(e[0], e[1], 1.0))
	}
	require.NoError(t, Annotate(g))

	labels := make(map[string]string)
	for _, id := range g.Nodes() {
		v, ok := g.Attr(id, AttrLouvain)
		require.True(t, ok, "node %s missing cluster label", id)
		s, ok := v.(string)
		require.True(t, ok, "cluster label must be a string")
		labels[id] = s
	}

	assert.Equal(t, labels["A"], labels["B"])
	assert.Equal(t, labels["A"], labels["C"])
	assert.Equal(t, labels["X"], labels["Y"])
	assert.NotEqual(t, labels["A"], labels["X"], "disconnected triangles should be distinct communities")
}

func TestAnnotate_SingleNode(t *testing.T) {
	g := netgraph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, Annotate(g))

	assert.InDelta(t, 0.0, attrFloat(t, g, "A", AttrDegree), 1e-12)
	assert.InDelta(t, 0.0, attrFloat(t, g, "A", AttrBetweenness), 1e-12)
}

func TestAnnotate_EmptyGraph(t *testing.T) {
	assert.NoError(t, Annotate(netgraph.New()))
}
