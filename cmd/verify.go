package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/beamprops/internal/verify"
	"github.com/spf13/cobra"
)

var verifyFile string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check computed properties against reference fixtures",
	Long: `Run every fixture through the calculator and compare the exact
results with the expected values.

Without --file the built-in fixtures covering every catalog beam are
used. A fixture file lists entries with kind, dims, area, centroid_x,
centroid_y and moment; π-scaled values are written as 16π or 16pi.

Examples:
  beamprops verify
  beamprops verify -f fixtures.yaml`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyFile, "file", "f", "", "Fixture YAML or JSON file (default: built-in fixtures)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	fixtures := verify.Fixtures()
	if verifyFile != "" {
		var err error
		fixtures, err = verify.LoadFixtures(verifyFile)
		if err != nil {
			return fmt.Errorf("loading fixtures: %w", err)
		}
	}
	logger.Debug("running fixtures", "count", len(fixtures))

	report := verify.Run(fixtures)

	w := cmd.OutOrStdout()
	printHeader(w, "PROPERTY VERIFICATION")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Fixture\tArea\tCentroid (x)\tCentroid (y)\tIx\tStatus\n")
	fmt.Fprintf(tw, "  ───────\t────\t────────────\t────────────\t──\t──────\n")
	for _, o := range report.Outcomes {
		if o.Err != nil {
			fmt.Fprintf(tw, "  %s\t-\t-\t-\t-\t✗ %s\n", o.Fixture, describeError(o.Err))
			continue
		}
		status := "✓"
		if !o.Passed() {
			status = "✗"
		}
		p := o.Computed
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n", o.Fixture,
			output.Render(p.Area), output.Render(p.CentroidX), output.Render(p.CentroidY),
			output.Render(p.MomentOfInertia), status)
	}
	tw.Flush()
	fmt.Fprintln(w)

	for _, o := range report.Outcomes {
		if o.Passed() {
			continue
		}
		if o.Err != nil {
			fmt.Fprintf(w, "  %s: %v\n", o.Fixture, o.Err)
		}
		for _, m := range o.Mismatches {
			fmt.Fprintf(w, "  %s: %s\n", o.Fixture, m)
		}
	}

	if n := report.Failed(); n > 0 {
		fmt.Fprintln(w)
		return fmt.Errorf("%d of %d fixtures failed", n, len(report.Outcomes))
	}
	fmt.Fprintf(w, "  All %d fixtures passed.\n\n", len(report.Outcomes))
	return nil
}
