package netgraph

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures DOT export of a solution forest.
type DOTOptions struct {
	// Labels maps node IDs to display labels (e.g. gene symbols).
	// Nodes without an entry are labelled with their ID.
	Labels map[string]string

	// ColorByCluster fills nodes according to their louvain_clusters
	// attribute, one color per community, cycling through the palette.
	ColorByCluster bool
}

// clusterPalette is the fill rotation for community coloring.
var clusterPalette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
	"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
}

// ToDOT converts the graph to Graphviz DOT format as an undirected graph.
// Edge weights become edge labels. The resulting string can be rendered
// with [RenderSVG] or fed to any graphviz toolchain.
func (g *Graph) ToDOT(opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph forest {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=11];\n")
	buf.WriteString("\n")

	colors := g.clusterColors(opts)
	for _, id := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(id, opts.Labels))}
		if c, ok := colors[id]; ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q [label=\"%.3g\"];\n", e.From, e.To, e.Weight)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(id string, labels map[string]string) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return id
}

// clusterColors assigns a palette color per louvain_clusters label.
// Labels are visited in sorted node order so color assignment is stable.
func (g *Graph) clusterColors(opts DOTOptions) map[string]string {
	if !opts.ColorByCluster {
		return nil
	}
	byLabel := make(map[string]string)
	out := make(map[string]string)
	for _, id := range g.Nodes() {
		v, ok := g.Attr(id, "louvain_clusters")
		if !ok {
			continue
		}
		label := fmt.Sprint(v)
		c, ok := byLabel[label]
		if !ok {
			c = clusterPalette[len(byLabel)%len(clusterPalette)]
			byLabel[label] = c
		}
		out[id] = c
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("netgraph: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("netgraph: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("netgraph: render: %w", err)
	}
	return buf.Bytes(), nil
}
