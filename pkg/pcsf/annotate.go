package pcsf

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/mat"

	"github.com/forester-bio/forester/pkg/netgraph"
)

// Attribute keys attached by [Annotate].
const (
	AttrBetweenness = "b_centrality"
	AttrEigenvector = "ev_centrality"
	AttrDegree      = "deg_centrality"
	AttrLouvain     = "louvain_clusters"
)

// ErrNoConvergence is returned when eigenvector centrality power iteration
// fails to converge within its iteration budget.
var ErrNoConvergence = errors.New("pcsf: eigenvector centrality did not converge")

const (
	eigenMaxIter = 100
	eigenTol     = 1e-6
)

// Annotate attaches betweenness, eigenvector and degree centrality plus a
// Louvain community label (stringified) to every node of g. Metrics are
// computed over g itself, so callers annotating a solution forest get
// forest-local structure, not properties of the original network.
func Annotate(g *netgraph.Graph) error {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	if err := annotateBetweenness(g, nodes); err != nil {
		return err
	}
	if err := annotateEigenvector(g, nodes); err != nil {
		return err
	}
	if err := annotateDegree(g, nodes); err != nil {
		return err
	}
	return annotateLouvain(g, nodes)
}

// annotateBetweenness stores betweenness centrality normalized over the
// (n-1)(n-2) ordered node pairs, matching the convention used for
// undirected biological networks. gonum omits zero-valued nodes, so every
// node is written explicitly.
func annotateBetweenness(g *netgraph.Graph, nodes []string) error {
	raw := network.Betweenness(g.Weighted())
	n := float64(len(nodes))
	scale := 0.0
	if n > 2 {
		scale = 1.0 / ((n - 1) * (n - 2))
	}
	for _, id := range nodes {
		nid, _ := g.NodeID(id)
		if err := g.SetAttr(id, AttrBetweenness, raw[nid]*scale); err != nil {
			return err
		}
	}
	return nil
}

// annotateEigenvector computes eigenvector centrality by power iteration on
// the shifted adjacency matrix (A + I); the shift avoids oscillation on
// bipartite components. The result is normalized to unit Euclidean length.
func annotateEigenvector(g *netgraph.Graph, nodes []string) error {
	n := len(nodes)
	adj := mat.NewDense(n, n, nil)
	for i, u := range nodes {
		adj.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			if _, ok := g.Weight(u, nodes[j]); ok {
				adj.Set(i, j, 1)
				adj.Set(j, i, 1)
			}
		}
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, 1/float64(n))
	}

	next := mat.NewVecDense(n, nil)
	converged := false
	for iter := 0; iter < eigenMaxIter; iter++ {
		next.MulVec(adj, x)
		norm := mat.Norm(next, 2)
		if norm == 0 {
			break
		}
		next.ScaleVec(1/norm, next)

		delta := 0.0
		for i := 0; i < n; i++ {
			delta += math.Abs(next.AtVec(i) - x.AtVec(i))
		}
		x.CopyVec(next)
		if delta < float64(n)*eigenTol {
			converged = true
			break
		}
	}
	if !converged && n > 1 {
		return ErrNoConvergence
	}

	for i, id := range nodes {
		if err := g.SetAttr(id, AttrEigenvector, x.AtVec(i)); err != nil {
			return err
		}
	}
	return nil
}

// annotateDegree stores degree centrality: degree scaled by 1/(n-1).
func annotateDegree(g *netgraph.Graph, nodes []string) error {
	denom := float64(len(nodes) - 1)
	for _, id := range nodes {
		c := 0.0
		if denom > 0 {
			c = float64(g.Degree(id)) / denom
		}
		if err := g.SetAttr(id, AttrDegree, c); err != nil {
			return err
		}
	}
	return nil
}

// annotateLouvain runs Louvain modularization and stores the community
// label for each node as a string. Communities are numbered in order of
// their lexically smallest member so labels are stable across runs with the
// same partition.
func annotateLouvain(g *netgraph.Graph, nodes []string) error {
	reduced := community.Modularize(g.Weighted(), 1.0, nil)

	groups := make([][]string, 0)
	for _, c := range reduced.Communities() {
		names := make([]string, len(c))
		for i, n := range c {
			names[i] = g.Name(n.ID())
		}
		slices.Sort(names)
		groups = append(groups, names)
	}
	slices.SortFunc(groups, func(a, b []string) int {
		if a[0] < b[0] {
			return -1
		}
		if a[0] > b[0] {
			return 1
		}
		return 0
	})

	for label, names := range groups {
		for _, id := range names {
			if err := g.SetAttr(id, AttrLouvain, fmt.Sprintf("%d", label)); err != nil {
				return err
			}
		}
	}
	return nil
}
