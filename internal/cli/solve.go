package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/forester-bio/forester/pkg/cache"
	"github.com/forester-bio/forester/pkg/netgraph"
	"github.com/forester-bio/forester/pkg/pcsf"
	"github.com/forester-bio/forester/pkg/solver"
	"github.com/forester-bio/forester/pkg/table"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	solverPath string   // path to the external solver binary
	solverArgs []string // extra arguments passed to the solver
	paramsPath string   // TOML parameter file
	output     string   // solution JSON output path (stdout if empty)
	refresh    bool     // bypass the solution cache
	noAnnotate bool     // skip centrality and community annotation
	manifest   bool     // write a run manifest next to the solution
}

// newSolveCmd creates the solve command. It loads the adjacency and prize
// tables, runs the external solver (or serves the solution from cache), and
// writes the annotated forest as graph JSON.
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <network.tsv> <prizes.tsv>",
		Short: "Run the PCSF solver and write the annotated solution forest",
		Long: `Solve runs the external prize-collecting Steiner forest solver on an
edge-list network and a prize table, annotates the solution forest with
centrality and community metrics, and writes it as graph JSON.

Solutions are cached by content hash of the network, prizes and parameters;
--refresh forces a fresh solver run.

Examples:
  forester solve network.tsv prizes.tsv --solver pcsf-solver -o forest.json
  forester solve network.tsv prizes.tsv --solver pcsf-solver --params sweep.toml --refresh`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runSolve(c.Context(), &opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.solverPath, "solver", "", "path to the PCSF solver binary (required)")
	cmd.Flags().StringArrayVar(&opts.solverArgs, "solver-arg", nil, "extra argument passed to the solver (repeatable)")
	cmd.Flags().StringVar(&opts.paramsPath, "params", "", "TOML file with solver parameters")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "solution output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the solution cache")
	cmd.Flags().BoolVar(&opts.noAnnotate, "no-annotate", false, "skip centrality and community annotation")
	cmd.Flags().BoolVar(&opts.manifest, "manifest", true, "write a run manifest next to the solution")
	_ = cmd.MarkFlagRequired("solver")

	return cmd
}

func runSolve(ctx context.Context, opts *solveOpts, networkPath, prizesPath string) error {
	logger := loggerFromContext(ctx)

	network, err := table.ReadTSV(networkPath)
	if err != nil {
		return err
	}
	prizes, err := table.ReadTSV(prizesPath)
	if err != nil {
		return err
	}

	params := solver.Params{}
	if opts.paramsPath != "" {
		if params, err = solver.LoadParams(opts.paramsPath); err != nil {
			return err
		}
	}

	base := solver.NewCommand(opts.solverPath, opts.solverArgs...)
	base.Logger = logger
	store := newSolutionCache(opts.refresh)
	defer store.Close()
	slv := &cachingSolver{inner: base, store: store, logger: logger}

	runOpts := []pcsf.Option{pcsf.WithLogger(logger)}
	if opts.noAnnotate {
		runOpts = append(runOpts, pcsf.WithoutAnnotations())
	}

	logger.Infof("Solving %s with prizes from %s", networkPath, prizesPath)
	prog := newProgress(logger)
	start := time.Now()
	g, err := pcsf.Run(ctx, slv, prizes, network, params, runOpts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Forest has %d nodes and %d edges", g.NodeCount(), g.EdgeCount()))

	if err := writeForest(g, opts.output); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote solution to %s", opts.output)
		printFile(opts.output)
		printStats(g.NodeCount(), g.EdgeCount(), slv.hit)
	}

	if opts.manifest && opts.output != "" {
		path := opts.output + ".manifest.json"
		if err := writeManifest(path, opts, params, g, slv.hit, time.Since(start)); err != nil {
			printWarning("Manifest not written: %v", err)
		} else {
			printFile(path)
		}
	}
	return nil
}

func writeForest(g *netgraph.Graph, path string) error {
	if path == "" {
		return g.WriteJSON(os.Stdout)
	}
	return g.WriteJSONFile(path)
}

// runManifest records the provenance of one solve invocation.
type runManifest struct {
	RunID     string        `json:"run_id"`
	CreatedAt time.Time     `json:"created_at"`
	Params    solver.Params `json:"params"`
	Nodes     int           `json:"nodes"`
	Edges     int           `json:"edges"`
	Cached    bool          `json:"cached"`
	Duration  string        `json:"duration"`
}

func writeManifest(path string, opts *solveOpts, params solver.Params, g *netgraph.Graph, cached bool, elapsed time.Duration) error {
	m := runManifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Params:    params,
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		Cached:    cached,
		Duration:  elapsed.Round(time.Millisecond).String(),
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// cachingSolver wraps a solver with the content-addressed solution cache.
// The key covers the adjacency table, the prize table and the parameters, so
// any input change misses.
type cachingSolver struct {
	inner  solver.Solver
	store  cache.Cache
	logger *charmlog.Logger
	hit    bool
}

func (s *cachingSolver) NewInstance(adjacency *table.Table, params solver.Params) (solver.Instance, error) {
	inner, err := s.inner.NewInstance(adjacency, params)
	if err != nil {
		return nil, err
	}
	return &cachingInstance{
		parent:    s,
		inner:     inner,
		adjacency: adjacency,
		params:    params,
	}, nil
}

type cachingInstance struct {
	parent    *cachingSolver
	inner     solver.Instance
	adjacency *table.Table
	params    solver.Params
	prizes    *table.Table
}

func (i *cachingInstance) PreparePrizes(prizes *table.Table) error {
	i.prizes = prizes
	return i.inner.PreparePrizes(prizes)
}

func (i *cachingInstance) Solve(ctx context.Context) (*solver.Solution, error) {
	key, err := i.key()
	if err != nil {
		i.parent.logger.Warnf("Cache key unavailable, solving fresh: %v", err)
		return i.inner.Solve(ctx)
	}

	if data, ok, err := i.parent.store.Get(ctx, key); err == nil && ok {
		var sol solver.Solution
		if err := json.Unmarshal(data, &sol); err == nil && sol.Validate() == nil {
			i.parent.logger.Debug("Solution served from cache")
			i.parent.hit = true
			return &sol, nil
		}
		_ = i.parent.store.Delete(ctx, key)
	}

	sol, err := i.inner.Solve(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(sol); err == nil {
		if err := i.parent.store.Set(ctx, key, data, 0); err != nil {
			i.parent.logger.Warnf("Solution not cached: %v", err)
		}
	}
	return sol, nil
}

func (i *cachingInstance) key() (string, error) {
	if i.prizes == nil {
		return cache.SolveKey(i.adjacency, table.New(), i.params)
	}
	return cache.SolveKey(i.adjacency, i.prizes, i.params)
}
