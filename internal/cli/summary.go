package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/forester-bio/forester/pkg/netgraph"
	"github.com/forester-bio/forester/pkg/pcsf"
	"github.com/forester-bio/forester/pkg/summary"
)

// summaryOpts holds the command-line flags for the summary command.
type summaryOpts struct {
	atts   []string // attributes to extract, one column each
	sortBy string   // attribute to sort descending by
	output string   // output file path (stdout if empty)
}

// defaultAtts are the attributes the solve command annotates forests with.
var defaultAtts = []string{
	pcsf.AttrBetweenness,
	pcsf.AttrEigenvector,
	pcsf.AttrDegree,
	pcsf.AttrLouvain,
}

// newSummaryCmd creates the summary command. It tabulates node attributes
// of a saved solution graph.
func newSummaryCmd() *cobra.Command {
	var opts summaryOpts

	cmd := &cobra.Command{
		Use:   "summary <graph.json>",
		Short: "Tabulate node attributes of a solution",
		Long: `Summary produces a row-per-node table of the requested attributes from a
saved solution graph. Missing attributes yield empty cells. By default the
four annotation attributes written by solve are extracted.

Examples:
  forester summary forest.json
  forester summary forest.json --att b_centrality --sort-by b_centrality -o top.tsv`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSummary(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.atts, "att", defaultAtts, "attribute to extract (repeatable)")
	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "attribute to sort descending by")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runSummary(ctx context.Context, opts *summaryOpts, path string) error {
	logger := loggerFromContext(ctx)

	g, err := netgraph.ReadJSONFile(path)
	if err != nil {
		return err
	}

	var sumOpts []summary.Option
	if opts.sortBy != "" {
		sumOpts = append(sumOpts, summary.WithSortBy(opts.sortBy))
	}
	t, err := summary.NodeTable(g, opts.atts, sumOpts...)
	if err != nil {
		return err
	}
	logger.Debugf("Summarized %d nodes with %d attributes", t.Len(), len(opts.atts))

	w, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := t.Write(w, '\t'); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Wrote %d node rows to %s", t.Len(), opts.output)
	}
	return nil
}
