package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the beam kinds and their dimensions",
	Long: `List every catalog beam with the aliases accepted on the command line
and the dimensions it takes, in argument order.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		printHeader(w, "BEAM CATALOG")

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Kind\tLabel\tAliases\tDimensions\n")
		fmt.Fprintf(tw, "  ────\t─────\t───────\t──────────\n")
		for _, e := range beam.Catalog() {
			dims := e.FieldIDs()
			if e.Kind == beam.DoubleTBeam {
				dims = "(not supported)"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", e.Kind, e.Label, strings.Join(e.Aliases, ", "), dims)
		}
		tw.Flush()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Custom sections are described in files, see 'beamprops section --help'.")
		fmt.Fprintln(w)
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
