// Package similarity compares named PCSF solutions. Two notions are
// provided: Jaccard (set-overlap) similarity over solution element sets,
// and exact graph edit distance over solution topologies. Edit distance is
// exponential in graph size and only suitable for small forests.
package similarity

import (
	"maps"
	"slices"

	"github.com/forester-bio/forester/pkg/netgraph"
)

// Pair is an ordered pair of solution names keying a comparison result.
type Pair struct {
	A string
	B string
}

// Jaccard returns the set-overlap ratio |a∩b| / |a∪b| between two element
// lists. Duplicates are collapsed. Two empty lists are defined as identical
// (similarity 1) so self-similarity is 1 for every input.
func Jaccard(a, b []string) float64 {
	setA := make(map[string]bool, len(a))
	for _, s := range a {
		setA[s] = true
	}
	setB := make(map[string]bool, len(b))
	for _, s := range b {
		setB[s] = true
	}

	inter := 0
	for s := range setB {
		if setA[s] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 1.0
	}
	return float64(inter) / float64(union)
}

// Matrix is a square similarity matrix over named solutions.
type Matrix struct {
	names []string
	vals  map[Pair]float64
}

// JaccardMatrix computes the pairwise Jaccard similarity between every
// ordered pair of named element sets, self-pairs included.
func JaccardMatrix(sets map[string][]string) *Matrix {
	m := &Matrix{
		names: slices.Sorted(maps.Keys(sets)),
		vals:  make(map[Pair]float64, len(sets)*len(sets)),
	}
	for _, a := range m.names {
		for _, b := range m.names {
			m.vals[Pair{A: a, B: b}] = Jaccard(sets[a], sets[b])
		}
	}
	return m
}

// Names returns the solution names in sorted order.
func (m *Matrix) Names() []string {
	return append([]string(nil), m.names...)
}

// At returns the similarity between two named solutions.
func (m *Matrix) At(a, b string) (float64, bool) {
	v, ok := m.vals[Pair{A: a, B: b}]
	return v, ok
}

// NodeSets derives the comparison element sets from solution graphs as
// their node-ID sets. Callers wanting to compare edge sets or any other
// derived identifiers can build the sets themselves and call
// [JaccardMatrix] directly.
func NodeSets(graphs map[string]*netgraph.Graph) map[string][]string {
	out := make(map[string][]string, len(graphs))
	for name, g := range graphs {
		out[name] = g.Nodes()
	}
	return out
}
