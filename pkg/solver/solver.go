// Package solver defines the contract with the external Prize-Collecting
// Steiner Forest solver and provides a subprocess-based implementation.
//
// The solver is an opaque collaborator reached through a three-call
// protocol, mirroring how PCSF engines are driven in practice:
//
//  1. [Solver.NewInstance] constructs a solver instance from the
//     interaction network (adjacency table) and a parameter set.
//  2. [Instance.PreparePrizes] injects the prize table of seed nodes.
//  3. [Instance.Solve] runs the optimization and returns the solution's
//     vertex and edge sets.
//
// This package performs no retries and no recovery: any construction or
// solve failure propagates to the caller, and solutions whose edges
// reference vertices outside the vertex set are rejected rather than
// silently accepted.
package solver

import (
	"context"

	"github.com/forester-bio/forester/pkg/errors"
	"github.com/forester-bio/forester/pkg/table"
)

// Edge is one interaction consumed by or returned from the solver.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Cost   float64 `json:"cost"`
}

// Prize is one seed node with its importance for the objective.
// Score and Gene are annotations carried through to the solver untouched.
type Prize struct {
	Name  string  `json:"name"`
	Prize float64 `json:"prize"`
	Score float64 `json:"score,omitempty"`
	Gene  string  `json:"gene,omitempty"`
}

// Solution is the forest returned by the solver: a vertex set and the
// edges selected between them.
type Solution struct {
	Vertices []string `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// Validate checks that every solution edge references vertices present in
// the vertex set. A violation means the solver emitted garbled output.
func (s *Solution) Validate() error {
	verts := make(map[string]bool, len(s.Vertices))
	for _, v := range s.Vertices {
		if v == "" {
			return errors.New(errors.ErrCodeSolverOutput, "solution contains an empty vertex name")
		}
		verts[v] = true
	}
	for _, e := range s.Edges {
		if !verts[e.Source] || !verts[e.Target] {
			return errors.New(errors.ErrCodeSolverOutput,
				"solution edge %s-%s references a vertex outside the vertex set", e.Source, e.Target)
		}
	}
	return nil
}

// Instance is a constructed solver run awaiting prizes and execution.
type Instance interface {
	// PreparePrizes injects the prize table. Must be called before Solve.
	PreparePrizes(prizes *table.Table) error

	// Solve runs the optimization and returns the solution forest.
	Solve(ctx context.Context) (*Solution, error)
}

// Solver constructs instances from an interaction network and parameters.
type Solver interface {
	NewInstance(adjacency *table.Table, params Params) (Instance, error)
}

// EdgesFromTable extracts solver edges from an adjacency table. The first
// column is the head of each edge, the second the tail, the third the cost,
// by the same positional contract as netgraph.FromEdgeList.
func EdgesFromTable(t *table.Table) ([]Edge, error) {
	if t.Width() < 3 {
		return nil, errors.New(errors.ErrCodeInvalidTable,
			"adjacency table needs head, tail and cost columns; got %d", t.Width())
	}
	heads, err := t.StringsAt(0)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "adjacency table")
	}
	tails, err := t.StringsAt(1)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "adjacency table")
	}
	costs, err := t.FloatsAt(2)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "adjacency table")
	}
	edges := make([]Edge, len(heads))
	for i := range heads {
		edges[i] = Edge{Source: heads[i], Target: tails[i], Cost: costs[i]}
	}
	return edges, nil
}

// PrizesFromTable extracts prizes from a prize table. The table must carry
// "name" and "prize" columns; "score" and "gene" are passed through when
// present.
func PrizesFromTable(t *table.Table) ([]Prize, error) {
	for _, col := range []string{"name", "prize"} {
		if !t.HasColumn(col) {
			return nil, errors.New(errors.ErrCodeMissingColumn, "prize table lacks column %q", col)
		}
	}
	names, err := t.Strings("name")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "prize table")
	}
	values, err := t.Floats("prize")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "prize table")
	}

	var scores []float64
	if t.HasColumn("score") {
		if scores, err = t.Floats("score"); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "prize table")
		}
	}
	var genes []string
	if t.HasColumn("gene") {
		if genes, err = t.Strings("gene"); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidTable, err, "prize table")
		}
	}

	prizes := make([]Prize, len(names))
	for i := range names {
		p := Prize{Name: names[i], Prize: values[i]}
		if scores != nil {
			p.Score = scores[i]
		}
		if genes != nil {
			p.Gene = genes[i]
		}
		prizes[i] = p
	}
	return prizes, nil
}
