package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/beamprops/internal/config"
	"github.com/alexiusacademia/beamprops/internal/version"
	"github.com/spf13/cobra"
)

var (
	configFile string

	// resolved in PersistentPreRunE before any subcommand runs
	output *config.Output
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "beamprops",
	Short: "Exact cross-section properties of beams",
	Long: `beamprops - exact geometric properties of beam cross-sections

Computes area, centroid and moment of inertia about the horizontal
centroidal axis for common beam shapes, using exact rational arithmetic.
Circular sections are reported as multiples of π.

Supported sections:
  - Rectangular and hollow rectangular
  - T, I and H beams
  - Circular and hollow circular
  - Custom sections composed of rectangles, triangles and circles

Dimensions may be integers, decimals (2.5) or fractions (7/2).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.New(configFile)
		if err != nil {
			return err
		}
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		output, err = config.Load(v)
		if err != nil {
			return err
		}
		logger = config.NewLogger(cmd.ErrOrStderr(), output.Verbose)
		if used := v.ConfigFileUsed(); used != "" {
			logger.Debug("loaded config", "file", used)
		}
		logger.Debug("output settings", "format", output.Format, "precision", output.Precision)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintf(w, "  ║   beamprops v%-45s║\n", version.Version)
		fmt.Fprintln(w, "  ║   Exact Beam Cross-Section Properties                     ║")
		fmt.Fprintf(w, "  ║   %-56s║\n", version.Author+" © "+version.Year)
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintln(w, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Features:")
		fmt.Fprintln(w, "    • Area, centroid and moment of inertia as exact fractions")
		fmt.Fprintln(w, "    • Catalog of common beam sections")
		fmt.Fprintln(w, "    • Batch calculation from YAML or JSON section files")
		fmt.Fprintln(w, "    • Section diagrams in the terminal or as png, svg and pdf")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Use 'beamprops --help' to see available commands.")
		fmt.Fprintln(w)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default $HOME/.config/beamprops/beamprops.yaml or ./beamprops.yaml)")
	flags.String("format", string(config.FormatFraction), "Output format: fraction or decimal")
	flags.Int32("precision", config.DefaultPrecision, "Decimal places for decimal output")
	flags.BoolP("verbose", "v", false, "Log diagnostics to stderr")
}
