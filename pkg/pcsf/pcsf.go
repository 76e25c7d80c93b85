// Package pcsf drives Prize-Collecting Steiner Forest analysis: it feeds a
// prize table and an interaction network to an external solver, converts
// the returned vertex and edge sets into a [netgraph.Graph], and annotates
// the solution forest with centrality and community structure.
//
// The flow mirrors how PCSF engines are deployed against protein-protein
// interaction networks:
//
//	slv := solver.NewCommand("pcsf-solve")
//	forest, err := pcsf.Run(ctx, slv, prizes, network, params)
//
// The hard optimization is owned entirely by the solver; this package only
// marshals data in and out and computes post-hoc metrics on the result.
package pcsf

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/forester-bio/forester/pkg/netgraph"
	"github.com/forester-bio/forester/pkg/solver"
	"github.com/forester-bio/forester/pkg/table"
)

// Options configures a PCSF run.
type Options struct {
	annotate bool
	logger   *log.Logger
}

// Option is a functional option for [Run].
type Option func(*Options)

// WithoutAnnotations skips attaching centrality and community attributes
// to the solution forest.
func WithoutAnnotations() Option {
	return func(o *Options) { o.annotate = false }
}

// WithLogger enables timestamped progress logging, useful when profiling
// successive solver calls.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		annotate: true,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// Run executes a PCSF analysis: construct a solver instance from the
// adjacency table and params, inject the prize table, solve, and build the
// solution forest. Unless [WithoutAnnotations] is given, the forest's nodes
// carry b_centrality, ev_centrality, deg_centrality and louvain_clusters
// attributes computed over the returned forest (not the input network).
//
// Failures in construction, solving or annotation propagate unwrapped to
// the caller; there is no partial result.
func Run(ctx context.Context, slv solver.Solver, prizes, network *table.Table, params solver.Params, opts ...Option) (*netgraph.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	inst, err := slv.NewInstance(network, params)
	if err != nil {
		return nil, err
	}
	if err := inst.PreparePrizes(prizes); err != nil {
		return nil, err
	}

	o.logger.Info("solving PCSF", "edges", network.Len(), "prizes", prizes.Len())
	sol, err := inst.Solve(ctx)
	if err != nil {
		return nil, err
	}
	o.logger.Info("solver finished",
		"vertices", len(sol.Vertices),
		"edges", len(sol.Edges),
		"elapsed", time.Since(start).Round(time.Millisecond))

	forest, err := forestFromSolution(sol)
	if err != nil {
		return nil, err
	}

	if o.annotate {
		if err := Annotate(forest); err != nil {
			return nil, err
		}
	}
	return forest, nil
}

// forestFromSolution converts the solver's vertex and edge sets into a
// graph. The solution is validated first so a solver returning edges
// outside its vertex set is rejected for every [solver.Solver]
// implementation, not just the subprocess driver. Vertices are added before
// edges so prized nodes kept without incident edges survive as isolated
// trees.
func forestFromSolution(sol *solver.Solution) (*netgraph.Graph, error) {
	if err := sol.Validate(); err != nil {
		return nil, err
	}
	g := netgraph.New()
	for _, v := range sol.Vertices {
		if err := g.AddNode(v); err != nil {
			return nil, err
		}
	}
	for _, e := range sol.Edges {
		if err := g.SetEdge(e.Source, e.Target, e.Cost); err != nil {
			return nil, err
		}
	}
	return g, nil
}
