// Package netgraph provides the weighted undirected graph type shared by
// forester's components: PCSF solution forests, interaction networks built
// from edge lists, and any graph loaded back from disk.
//
// Node identity is the biological identifier (a STRING ID or gene symbol);
// the package maps those onto gonum node IDs internally so that gonum's
// shortest-path, centrality and community algorithms can run directly on
// the backing graph. Arbitrary per-node attributes (centrality scores,
// cluster labels) ride along as metadata, mirroring how annotated solution
// forests are consumed downstream.
package netgraph

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
)

var (
	// ErrEmptyNodeID is returned when a node identifier is the empty string.
	ErrEmptyNodeID = errors.New("netgraph: node ID must not be empty")

	// ErrSelfLoop is returned by [Graph.SetEdge] for edges whose endpoints
	// are the same node. The backing gonum graph rejects self loops, and a
	// self interaction carries no path or solution information here.
	ErrSelfLoop = errors.New("netgraph: self loops are not supported")

	// ErrUnknownNode is returned when an operation references a node that
	// is not in the graph.
	ErrUnknownNode = errors.New("netgraph: unknown node")
)

// Edge is a weighted undirected edge between two named nodes.
// From and To carry no direction; they are ordered lexically by [Graph.Edges]
// for deterministic output.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is a weighted undirected graph with string node IDs and per-node
// attribute storage. The zero value is not usable; call [New].
type Graph struct {
	w     *simple.WeightedUndirectedGraph
	ids   map[string]int64
	names map[int64]string
	attrs map[string]map[string]any
	next  int64
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		w:     simple.NewWeightedUndirectedGraph(0, 0),
		ids:   make(map[string]int64),
		names: make(map[int64]string),
		attrs: make(map[string]map[string]any),
	}
}

// AddNode ensures a node with the given ID exists.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.ids[id]; ok {
		return nil
	}
	nid := g.next
	g.next++
	g.ids[id] = nid
	g.names[nid] = id
	g.w.AddNode(simple.Node(nid))
	return nil
}

// HasNode reports whether the graph contains the node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.ids[id]
	return ok
}

// SetEdge adds an undirected weighted edge, creating endpoints as needed.
// Setting an existing edge replaces its weight.
func (g *Graph) SetEdge(u, v string, weight float64) error {
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfLoop, u)
	}
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}
	g.w.SetWeightedEdge(simple.WeightedEdge{
		F: simple.Node(g.ids[u]),
		T: simple.Node(g.ids[v]),
		W: weight,
	})
	return nil
}

// Weight returns the weight of the edge between u and v.
func (g *Graph) Weight(u, v string) (float64, bool) {
	uid, ok := g.ids[u]
	if !ok {
		return 0, false
	}
	vid, ok := g.ids[v]
	if !ok {
		return 0, false
	}
	if !g.w.HasEdgeBetween(uid, vid) {
		return 0, false
	}
	w, ok := g.w.Weight(uid, vid)
	return w, ok
}

// Nodes returns all node IDs in sorted order.
func (g *Graph) Nodes() []string {
	return slices.Sorted(maps.Keys(g.ids))
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	n := 0
	it := g.w.WeightedEdges()
	for it.Next() {
		n++
	}
	return n
}

// Degree returns the number of neighbors of the node, or 0 if absent.
func (g *Graph) Degree(id string) int {
	nid, ok := g.ids[id]
	if !ok {
		return 0
	}
	return g.w.From(nid).Len()
}

// Edges returns all edges with From < To, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	var out []Edge
	it := g.w.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		a, b := g.names[e.From().ID()], g.names[e.To().ID()]
		if b < a {
			a, b = b, a
		}
		out = append(out, Edge{From: a, To: b, Weight: e.Weight()})
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if x.From != y.From {
			if x.From < y.From {
				return -1
			}
			return 1
		}
		if x.To < y.To {
			return -1
		}
		if x.To > y.To {
			return 1
		}
		return 0
	})
	return out
}

// SetAttr attaches an attribute value to a node.
func (g *Graph) SetAttr(id, key string, value any) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	m, ok := g.attrs[id]
	if !ok {
		m = make(map[string]any)
		g.attrs[id] = m
	}
	m[key] = value
	return nil
}

// Attr returns a node attribute value if present.
func (g *Graph) Attr(id, key string) (any, bool) {
	m, ok := g.attrs[id]
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// Attrs returns a copy of all attributes stored for a node.
func (g *Graph) Attrs(id string) map[string]any {
	m, ok := g.attrs[id]
	if !ok {
		return nil
	}
	return maps.Clone(m)
}

// Weighted exposes the backing gonum graph for algorithm packages.
// Callers must not mutate it directly; use [Graph.SetEdge] and
// [Graph.AddNode] so the ID maps stay consistent.
func (g *Graph) Weighted() *simple.WeightedUndirectedGraph { return g.w }

// NodeID returns the gonum node ID for a named node.
func (g *Graph) NodeID(id string) (int64, bool) {
	nid, ok := g.ids[id]
	return nid, ok
}

// Name returns the node name for a gonum node ID, or "" if unknown.
func (g *Graph) Name(nid int64) string { return g.names[nid] }
