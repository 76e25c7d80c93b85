package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forester-bio/forester/pkg/errors"
	"github.com/forester-bio/forester/pkg/netgraph"
	"github.com/forester-bio/forester/pkg/similarity"
	"github.com/forester-bio/forester/pkg/table"
)

const (
	methodJaccard      = "jaccard"      // node-set overlap ratio
	methodEditDistance = "editdistance" // exact topological edit distance
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	method string // similarity notion: jaccard or editdistance
	output string // output file path (stdout if empty)
}

// newCompareCmd creates the compare command. It computes a pairwise
// similarity matrix over saved solution graphs.
func newCompareCmd() *cobra.Command {
	var opts compareOpts

	cmd := &cobra.Command{
		Use:   "compare <graph.json>...",
		Short: "Pairwise similarity between saved solutions",
		Long: `Compare loads two or more solution graphs and computes a square matrix
of pairwise similarities, named by file basename.

Methods:
  jaccard        node-set overlap ratio |A∩B| / |A∪B|
  editdistance   exact graph edit distance with unit node/edge costs;
                 exponential in graph size, small forests only

Examples:
  forester compare run1.json run2.json run3.json
  forester compare run*.json --method editdistance -o distances.tsv`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runCompare(c.Context(), &opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", methodJaccard, "similarity method: jaccard or editdistance")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runCompare(ctx context.Context, opts *compareOpts, paths []string) error {
	logger := loggerFromContext(ctx)

	graphs := make(map[string]*netgraph.Graph, len(paths))
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, dup := graphs[name]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate solution name %q", name)
		}
		g, err := netgraph.ReadJSONFile(path)
		if err != nil {
			return err
		}
		graphs[name] = g
	}

	prog := newProgress(logger)
	var (
		names []string
		at    func(a, b string) float64
	)
	switch opts.method {
	case methodJaccard:
		m := similarity.JaccardMatrix(similarity.NodeSets(graphs))
		names = m.Names()
		at = func(a, b string) float64 {
			v, _ := m.At(a, b)
			return v
		}
	case methodEditDistance:
		d := similarity.EditDistances(graphs)
		names = sortedNames(graphs)
		at = func(a, b string) float64 {
			return d[similarity.Pair{A: a, B: b}]
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown method %q (jaccard or editdistance)", opts.method)
	}
	prog.done(fmt.Sprintf("Compared %d solutions (%s)", len(graphs), opts.method))

	out := table.New(append([]string{"name"}, names...)...)
	for _, a := range names {
		row := make([]string, 0, len(names)+1)
		row = append(row, a)
		for _, b := range names {
			row = append(row, strconv.FormatFloat(at(a, b), 'g', -1, 64))
		}
		if err := out.Append(row...); err != nil {
			return err
		}
	}

	w, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer w.Close()
	return out.Write(w, '\t')
}

func sortedNames(graphs map[string]*netgraph.Graph) []string {
	names := make([]string, 0, len(graphs))
	for name := range graphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
