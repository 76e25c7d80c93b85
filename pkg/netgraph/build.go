package netgraph

import (
	"errors"
	"fmt"

	"github.com/forester-bio/forester/pkg/table"
)

// ErrEdgeListShape is returned by [FromEdgeList] when the table has fewer
// than three columns.
var ErrEdgeListShape = errors.New("netgraph: edge list needs head, tail and weight columns")

// FromEdgeList builds an undirected weighted graph from an edge-list table.
// By convention the first column is the head of each edge, the second the
// tail, and the third the weight/cost; any further columns are ignored.
// Column names do not matter, matching the positional contract of the
// interaction-network files this tool consumes.
func FromEdgeList(t *table.Table) (*Graph, error) {
	if t.Width() < 3 {
		return nil, fmt.Errorf("%w: got %d columns", ErrEdgeListShape, t.Width())
	}
	heads, err := t.StringsAt(0)
	if err != nil {
		return nil, err
	}
	tails, err := t.StringsAt(1)
	if err != nil {
		return nil, err
	}
	weights, err := t.FloatsAt(2)
	if err != nil {
		return nil, err
	}

	g := New()
	for i := range heads {
		if err := g.SetEdge(heads[i], tails[i], weights[i]); err != nil {
			return nil, fmt.Errorf("netgraph: edge list row %d: %w", i, err)
		}
	}
	return g, nil
}
