package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/forester-bio/forester/pkg/idmap"
	"github.com/forester-bio/forester/pkg/netgraph"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path (stdout if empty)
	dotOnly   bool   // emit DOT source instead of SVG
	mapPath   string // optional ID map for gene-symbol labels
	noCluster bool   // disable community coloring
}

// newRenderCmd creates the render command. It draws a saved solution graph
// as SVG (or DOT source) via graphviz.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Generate DOT or SVG views of a solution",
		Long: `Render draws a saved solution graph with graphviz. Nodes are colored by
their Louvain community when the graph carries cluster annotations, and
--map relabels nodes with gene symbols from a STRING ID mapping file.

Examples:
  forester render forest.json -o forest.svg
  forester render forest.json --map map.tsv --dot -o forest.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRender(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.dotOnly, "dot", false, "emit DOT source instead of SVG")
	cmd.Flags().StringVar(&opts.mapPath, "map", "", "ID mapping file for gene-symbol labels")
	cmd.Flags().BoolVar(&opts.noCluster, "no-cluster-colors", false, "disable community coloring")

	return cmd
}

func runRender(ctx context.Context, opts *renderOpts, path string) error {
	logger := loggerFromContext(ctx)

	g, err := netgraph.ReadJSONFile(path)
	if err != nil {
		return err
	}

	var labels map[string]string
	if opts.mapPath != "" {
		if labels, err = symbolLabels(g, opts.mapPath); err != nil {
			return err
		}
	}

	dot := g.ToDOT(netgraph.DOTOptions{
		Labels:         labels,
		ColorByCluster: !opts.noCluster,
	})
	if opts.dotOnly {
		return writeBytes(opts.output, []byte(dot))
	}

	spin := newSpinnerWithContext(ctx, "Rendering SVG...")
	spin.Start()
	svg, err := netgraph.RenderSVG(ctx, dot)
	spin.Stop()
	if err != nil {
		return err
	}
	logger.Debugf("Rendered %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	if err := writeBytes(opts.output, svg); err != nil {
		return err
	}
	if opts.output != "" {
		printSuccess("Rendered %s", path)
		printFile(opts.output)
	}
	return nil
}

// symbolLabels builds a node label map translating STRING IDs to gene
// symbols; nodes absent from the map keep their ID.
func symbolLabels(g *netgraph.Graph, mapPath string) (map[string]string, error) {
	ids := g.Nodes()
	symbols, err := idmap.GeneSymbols(ids, mapPath)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]string, len(ids))
	for i, id := range ids {
		labels[id] = symbols[i]
	}
	return labels, nil
}

func writeBytes(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
