package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forester-bio/forester/pkg/netgraph"
)

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"A", "B"}, []string{"A", "B"}, 1.0},
		{"disjoint", []string{"A"}, []string{"B"}, 0.0},
		{"one of three", []string{"A", "B"}, []string{"B", "C"}, 1.0 / 3.0},
		{"both empty", nil, nil, 1.0},
		{"one empty", []string{"A"}, nil, 0.0},
		{"duplicates collapsed", []string{"A", "A", "B"}, []string{"B", "B"}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Jaccard(tt.a, tt.b), 1e-12)
		})
	}
}

func TestJaccard_Symmetric(t *testing.T) {
	a := []string{"A", "B", "C"}
	b := []string{"B", "D"}
	assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
}

func TestJaccardMatrix(t *testing.T) {
	m := JaccardMatrix(map[string][]string{
		"run2": {"B", "C"},
		"run1": {"A", "B"},
	})

	assert.Equal(t, []string{"run1", "run2"}, m.Names())

	self, ok := m.At("run1", "run1")
	require.True(t, ok)
	assert.Equal(t, 1.0, self)

	cross, ok := m.At("run1", "run2")
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, cross, 1e-12)

	_, ok = m.At("run1", "run3")
	assert.False(t, ok)
}

func TestNodeSets(t *testing.T) {
	g := netgraph.New()
	require.NoError(t, g.SetEdge("B", "A", 1.0))
	g.AddNode("C")

	sets := NodeSets(map[string]*netgraph.Graph{"only": g})
	assert.Equal(t, map[string][]string{"only": {"A", "B", "C"}}, sets)
}
