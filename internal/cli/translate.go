package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forester-bio/forester/pkg/idmap"
)

// newTranslateCmd creates the translate command. It converts node
// identifiers between the STRING and gene-symbol namespaces using a
// two-column mapping file.
func newTranslateCmd() *cobra.Command {
	var toSTRING bool

	cmd := &cobra.Command{
		Use:   "translate <map.tsv> <id>...",
		Short: "Convert between STRING IDs and gene symbols",
		Long: `Translate converts identifiers using a tab-separated mapping file with
"STRING" and "display name" columns. IDs absent from the map pass through
unchanged. By default STRING IDs become gene symbols; --to-string reverses
the direction.

Examples:
  forester translate map.tsv 9606.ENSP00000269305
  forester translate map.tsv TP53 EGFR --to-string`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			mapPath, ids := args[0], args[1:]

			var (
				out []string
				err error
			)
			if toSTRING {
				out, err = idmap.StringIDs(ids, mapPath)
			} else {
				out, err = idmap.GeneSymbols(ids, mapPath)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(c.OutOrStdout(), strings.Join(out, "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&toSTRING, "to-string", false, "translate gene symbols to STRING IDs")

	return cmd
}
