package cmd

import (
	"fmt"

	"github.com/alexiusacademia/beamprops/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beamprops",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		fmt.Fprintln(cmd.OutOrStdout(), "Exact Beam Cross-Section Properties")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
