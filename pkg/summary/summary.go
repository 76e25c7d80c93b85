// Package summary extracts tabular per-node views from annotated graphs.
package summary

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/forester-bio/forester/pkg/errors"
	"github.com/forester-bio/forester/pkg/netgraph"
	"github.com/forester-bio/forester/pkg/table"
)

// NodeColumn is the name of the leading node-identifier column.
const NodeColumn = "node"

// Option configures NodeTable.
type Option func(*options)

type options struct {
	sortBy string
}

// WithSortBy sorts the table descending by the named attribute column. The
// attribute must be among the requested ones.
func WithSortBy(att string) Option {
	return func(o *options) { o.sortBy = att }
}

// NodeTable builds a table with one row per node and one column per
// requested attribute. Nodes appear in sorted ID order unless WithSortBy
// reorders them. A node missing an attribute gets an empty cell.
func NodeTable(g *netgraph.Graph, atts []string, opts ...Option) (*table.Table, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sortBy != "" && !slices.Contains(atts, o.sortBy) {
		return nil, errors.New(errors.ErrCodeUnknownAttribute,
			"sort attribute %q not among requested attributes %v", o.sortBy, atts)
	}

	nodes := g.Nodes()
	if o.sortBy != "" {
		sortNodes(g, nodes, o.sortBy)
	}

	t := table.New(append([]string{NodeColumn}, atts...)...)
	for _, id := range nodes {
		row := make([]string, 0, len(atts)+1)
		row = append(row, id)
		for _, att := range atts {
			v, ok := g.Attr(id, att)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, formatAttr(v))
		}
		if err := t.Append(row...); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "summary row for %q", id)
		}
	}
	return t, nil
}

// sortNodes orders node IDs descending by a numeric attribute. Nodes
// lacking the attribute (or holding a non-numeric value) sort last; ties
// keep ID order.
func sortNodes(g *netgraph.Graph, nodes []string, att string) {
	slices.SortStableFunc(nodes, func(a, b string) int {
		av, aok := numericAttr(g, a, att)
		bv, bok := numericAttr(g, b, att)
		switch {
		case aok && bok && av != bv:
			if av > bv {
				return -1
			}
			return 1
		case aok && !bok:
			return -1
		case !aok && bok:
			return 1
		default:
			return 0
		}
	})
}

func numericAttr(g *netgraph.Graph, id, att string) (float64, bool) {
	v, ok := g.Attr(id, att)
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func formatAttr(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}
