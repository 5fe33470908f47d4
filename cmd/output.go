package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/section"
	"github.com/alexiusacademia/beamprops/internal/shape"
)

const rule = "───────────────────────────────────────────────────────────────"

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

func printSubheader(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, rule)
}

func printProperties(w io.Writer, props *beam.Properties) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Area (A):\t%s\n", output.Render(props.Area))
	fmt.Fprintf(tw, "  Centroid (x):\t%s\n", output.Render(props.CentroidX))
	fmt.Fprintf(tw, "  Centroid (y):\t%s\n", output.Render(props.CentroidY))
	fmt.Fprintf(tw, "  Moment of inertia (Ix):\t%s\n", output.Render(props.MomentOfInertia))
	tw.Flush()
}

// describeError names the failure class for messages and result tables
func describeError(err error) string {
	var ve *section.ValidationError
	switch {
	case errors.As(err, &ve):
		return "invalid section"
	case errors.Is(err, rational.ErrParse):
		return "parse error"
	case errors.Is(err, shape.ErrInvalidDimension):
		return "invalid dimension"
	case errors.Is(err, beam.ErrDegenerateGeometry):
		return "degenerate geometry"
	case errors.Is(err, rational.ErrDivideByZero):
		return "division by zero"
	case errors.Is(err, shape.ErrMixedScale):
		return "mixed π scale"
	case errors.Is(err, beam.ErrUnsupportedBeam):
		return "unsupported beam"
	case errors.Is(err, beam.ErrUnknownBeam):
		return "unknown beam"
	}
	return "error"
}
