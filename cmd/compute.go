package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/diagram"
	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/spf13/cobra"
)

var (
	computeShowDiagram bool
	computeExportFile  string
)

var computeCmd = &cobra.Command{
	Use:   "compute [flags] <kind> <dim>...",
	Short: "Compute the properties of a catalog beam",
	Long: `Compute area, centroid and moment of inertia of a catalog beam.

Dimensions follow the order listed by 'beamprops kinds' and may be
integers, decimals or fractions. Flags must come before the kind.

Examples:
  beamprops compute rect 10 12
  beamprops compute --format decimal IBeam 10 2 2 6 6 2
  beamprops compute --diagram -o pipe.png pipe 4 2
  beamprops compute TBeam 8 2 2 6`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	// dimensions are positional, so stop flag parsing at the kind
	computeCmd.Flags().SetInterspersed(false)

	computeCmd.Flags().BoolVar(&computeShowDiagram, "diagram", false, "Show ASCII section diagram")
	computeCmd.Flags().StringVarP(&computeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runCompute(cmd *cobra.Command, args []string) error {
	e, ok := beam.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %q (run 'beamprops kinds' for the list)", beam.ErrUnknownBeam, args[0])
	}

	dims, err := parseDims(e, args[1:])
	if err != nil {
		return err
	}

	logger.Debug("constructing beam", "kind", e.Kind, "dims", args[1:])
	b, err := e.Construct(dims)
	if err != nil {
		return fmt.Errorf("%s: %w", describeError(err), err)
	}

	props, err := b.Properties()
	if err != nil {
		return fmt.Errorf("%s: %w", describeError(err), err)
	}

	w := cmd.OutOrStdout()
	printHeader(w, strings.ToUpper(e.Label))

	printSubheader(w, "DIMENSIONS")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, f := range e.Fields {
		fmt.Fprintf(tw, "  %s:\t%s\n", f.Label, output.RenderRational(dims[i]))
	}
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprint(w, diagram.DrawSummaryBox("SECTION PROPERTIES", []string{
		"Area (A)                 = " + output.Render(props.Area),
		"Centroid (x)             = " + output.Render(props.CentroidX),
		"Centroid (y)             = " + output.Render(props.CentroidY),
		"Moment of inertia (Ix)   = " + output.Render(props.MomentOfInertia),
	}))
	fmt.Fprintln(w)

	if computeShowDiagram {
		printSubheader(w, "SECTION")
		fmt.Fprint(w, diagram.DrawASCIISection(b))
		fmt.Fprintln(w)
	}

	if computeExportFile != "" {
		path, err := diagram.ExportSectionDiagram(b, props, computeExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(w, "  Diagram exported to: %s\n\n", path)
	}

	return nil
}

// parseDims reads each argument as an exact number, naming the field on failure
func parseDims(e beam.Entry, args []string) ([]rational.Rational, error) {
	dims := make([]rational.Rational, len(args))
	for i, a := range args {
		field := fmt.Sprintf("dimension %d", i+1)
		if i < len(e.Fields) {
			field = e.Fields[i].ID
		}
		d, err := rational.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		dims[i] = d
	}
	return dims, nil
}
