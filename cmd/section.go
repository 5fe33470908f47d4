package cmd

import (
	"fmt"

	"github.com/alexiusacademia/beamprops/internal/codec"
	"github.com/alexiusacademia/beamprops/internal/diagram"
	"github.com/alexiusacademia/beamprops/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile        string
	sectionWriteFile   string
	sectionShowDiagram bool
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute every section in a YAML or JSON file",
	Long: `Compute properties for a batch of sections defined in a YAML or JSON
file. A failing section is reported and the rest are still computed.

Catalog sections give a kind and its dims. Custom sections list
rectangles, triangles and circles placed by the lower-left corner of
their bounding box; void shapes are subtracted.

Example YAML file:
  sections:
    - name: Box girder
      kind: HollowRectangleBeam
      dims: [12, 12, 6, 6]
    - name: Plate with hole
      kind: custom
      shapes:
        - {type: rectangle, width: 10, height: 12}
        - {type: circle, x: 3, y: 4, radius: 2, void: true}

Examples:
  beamprops section -f beams.yaml
  beamprops section -f beams.json -w results.yaml`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section YAML or JSON file [required]")
	sectionCmd.MarkFlagRequired("file")

	sectionCmd.Flags().StringVarP(&sectionWriteFile, "write", "w", "", "Write results to a YAML or JSON file")
	sectionCmd.Flags().BoolVar(&sectionShowDiagram, "diagram", false, "Show ASCII section diagrams")
}

func runSection(cmd *cobra.Command, args []string) error {
	f, err := section.LoadFromFile(sectionFile)
	if err != nil {
		return fmt.Errorf("loading sections: %w", err)
	}
	logger.Debug("loaded sections", "file", sectionFile, "count", len(f.Sections))

	results := section.ComputeAll(f)

	w := cmd.OutOrStdout()
	printHeader(w, "SECTION PROPERTIES")

	failed := 0
	records := make([]section.Record, len(results))
	for i, r := range results {
		records[i] = r.Record(output.Render)

		printSubheader(w, fmt.Sprintf("[%d] %s (%s)", i+1, r.Section.Label(), r.Section.Kind))
		if r.Section.Description != "" {
			fmt.Fprintf(w, "  %s\n", r.Section.Description)
		}
		if r.Err != nil {
			failed++
			logger.Warn("section failed", "section", r.Section.Label(), "error", r.Err)
			fmt.Fprintf(w, "  ✗ %s: %v\n\n", describeError(r.Err), r.Err)
			continue
		}
		printProperties(w, r.Properties)
		if sectionShowDiagram {
			fmt.Fprint(w, diagram.DrawASCIISection(r.Beam))
		}
		fmt.Fprintln(w)
	}

	if sectionWriteFile != "" {
		if err := codec.EncodeFile(sectionWriteFile, section.ResultFile{Results: records}); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		fmt.Fprintf(w, "  Results written to: %s\n\n", sectionWriteFile)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sections failed", failed, len(results))
	}
	return nil
}
