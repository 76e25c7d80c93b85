package similarity

import (
	"github.com/forester-bio/forester/pkg/netgraph"
)

// EditDistances computes the exact graph edit distance between every
// ordered pair of named graphs, using unit costs for node and edge
// insertion/deletion and zero cost for substitution. Node identity is
// ignored: any node of one graph may map to any node of the other.
//
// The search is exponential in node count. This is VERY slow and only
// intended for the small forests a PCSF run produces; prefer
// [JaccardMatrix] for anything larger.
func EditDistances(graphs map[string]*netgraph.Graph) map[Pair]float64 {
	out := make(map[Pair]float64, len(graphs)*len(graphs))
	for a, ga := range graphs {
		for b, gb := range graphs {
			out[Pair{A: a, B: b}] = editDistance(ga, gb)
		}
	}
	return out
}

// adjacency captures just the topology needed by the search: node count
// and a symmetric edge lookup on dense indices.
type adjacency struct {
	n     int
	edges [][]bool
}

func newAdjacency(g *netgraph.Graph) *adjacency {
	nodes := g.Nodes()
	idx := make(map[string]int, len(nodes))
	for i, id := range nodes {
		idx[id] = i
	}
	a := &adjacency{n: len(nodes), edges: make([][]bool, len(nodes))}
	for i := range a.edges {
		a.edges[i] = make([]bool, len(nodes))
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		a.edges[i][j] = true
		a.edges[j][i] = true
	}
	return a
}

// editDistance runs a depth-first branch-and-bound over injective node
// assignments. Each node of g1 is either mapped to an unused node of g2 or
// deleted; unmapped g2 nodes and their incident edges are inserted at the
// end of a branch.
func editDistance(g1, g2 *netgraph.Graph) float64 {
	a1, a2 := newAdjacency(g1), newAdjacency(g2)

	s := &gedSearch{
		a1:      a1,
		a2:      a2,
		mapping: make([]int, a1.n),
		used:    make([]bool, a2.n),
		best:    float64(a1.n + a2.n + countEdges(a1) + countEdges(a2)),
	}
	s.visit(0, 0)
	return s.best
}

func countEdges(a *adjacency) int {
	n := 0
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if a.edges[i][j] {
				n++
			}
		}
	}
	return n
}

const deleted = -1

type gedSearch struct {
	a1, a2  *adjacency
	mapping []int // g1 index -> g2 index, or deleted
	used    []bool
	best    float64
}

func (s *gedSearch) visit(i int, cost float64) {
	if cost >= s.best {
		return
	}
	if i == s.a1.n {
		if total := cost + s.insertionCost(); total < s.best {
			s.best = total
		}
		return
	}

	// Remaining mismatch between unassigned g1 nodes and unused g2 nodes
	// forces at least that many node edits.
	remaining := s.a1.n - i
	unused := 0
	for _, u := range s.used {
		if !u {
			unused++
		}
	}
	lb := float64(remaining - unused)
	if lb < 0 {
		lb = -lb
	}
	if cost+lb >= s.best {
		return
	}

	for j := 0; j < s.a2.n; j++ {
		if s.used[j] {
			continue
		}
		s.mapping[i] = j
		s.used[j] = true
		s.visit(i+1, cost+s.mapCost(i, j))
		s.used[j] = false
	}

	s.mapping[i] = deleted
	s.visit(i+1, cost+1+s.deleteCost(i))
}

// mapCost charges edge mismatches between node i (mapped to j) and every
// previously decided g1 node.
func (s *gedSearch) mapCost(i, j int) float64 {
	c := 0.0
	for p := 0; p < i; p++ {
		q := s.mapping[p]
		switch {
		case q == deleted:
			if s.a1.edges[i][p] {
				c++ // edge lost with its deleted endpoint
			}
		case s.a1.edges[i][p] != s.a2.edges[j][q]:
			c++
		}
	}
	return c
}

// deleteCost charges every g1 edge incident to node i whose other endpoint
// was already decided; each edge is counted exactly once, at its later
// endpoint.
func (s *gedSearch) deleteCost(i int) float64 {
	c := 0.0
	for p := 0; p < i; p++ {
		if s.a1.edges[i][p] {
			c++
		}
	}
	return c
}

// insertionCost charges unused g2 nodes and every g2 edge with at least
// one unused endpoint.
func (s *gedSearch) insertionCost() float64 {
	c := 0.0
	for j, u := range s.used {
		if !u {
			c++
		}
		for k := j + 1; k < s.a2.n; k++ {
			if s.a2.edges[j][k] && (!u || !s.used[k]) {
				c++
			}
		}
	}
	return c
}
