package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/shape"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// circleSegments is the polygon resolution used to draw circles
const circleSegments = 72

var (
	solidFill   = color.RGBA{R: 176, G: 196, B: 222, A: 255}
	outlineGray = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	axisRed     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSectionDiagram draws the section with its centroid and horizontal
// neutral axis. The format follows the extension (.png, .svg, .pdf, .jpg,
// .eps, .tif); a missing or unknown extension appends .png. It returns the
// path actually written.
func ExportSectionDiagram(b *beam.Beam, props *beam.Properties, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Section", b.Kind())
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	// solids first so voids paint over them
	shapes := b.Shapes()
	for _, filled := range []bool{true, false} {
		for _, s := range shapes {
			if s.Filled() != filled {
				continue
			}
			poly, err := plotter.NewPolygon(outline(s))
			if err != nil {
				return "", err
			}
			poly.Color = solidFill
			if !filled {
				poly.Color = color.White
			}
			poly.LineStyle.Width = vg.Points(1.5)
			poly.LineStyle.Color = outlineGray
			p.Add(poly)
		}
	}

	minX, minY, maxX, maxY := floatBounds(b)
	margin := 0.1 * math.Max(maxX-minX, maxY-minY)

	if props != nil {
		cx, cy := props.CentroidX.Float64(), props.CentroidY.Float64()

		naLine, err := plotter.NewLine(plotter.XYs{
			{X: minX - margin, Y: cy},
			{X: maxX + margin, Y: cy},
		})
		if err != nil {
			return "", err
		}
		naLine.LineStyle.Width = vg.Points(1.5)
		naLine.LineStyle.Color = axisRed
		naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(naLine)

		centroid, err := plotter.NewScatter(plotter.XYs{{X: cx, Y: cy}})
		if err != nil {
			return "", err
		}
		centroid.GlyphStyle.Color = axisRed
		centroid.GlyphStyle.Radius = vg.Points(4)
		centroid.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(centroid)

		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs: []plotter.XY{
				{X: cx, Y: cy},
				{X: maxX + margin, Y: cy},
			},
			Labels: []string{
				fmt.Sprintf("  C(%s, %s)", props.CentroidX.DecimalString(3), props.CentroidY.DecimalString(3)),
				"N.A.",
			},
		})
		if err != nil {
			return "", err
		}
		p.Add(labels)
	}

	// equal spans on both axes keep the section undistorted
	span := math.Max(maxX-minX, maxY-minY) + 2*margin
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	p.X.Min, p.X.Max = midX-span/2, midX+span/2
	p.Y.Min, p.Y.Max = midY-span/2, midY+span/2

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	path := filename
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
	default:
		path += ".png"
	}

	size := 6 * vg.Inch
	if err := p.Save(size, size, path); err != nil {
		return "", err
	}
	return path, nil
}

// outline returns the vertices of s in counter-clockwise order. Circles are
// approximated by a regular polygon.
func outline(s shape.Shape) plotter.XYs {
	x, y := s.X().Float64(), s.Y().Float64()
	w, h := s.Width().Float64(), s.Height().Float64()

	switch s.Kind() {
	case shape.Circle:
		r := s.Radius().Float64()
		pts := make(plotter.XYs, circleSegments)
		for i := range pts {
			t := 2 * math.Pi * float64(i) / circleSegments
			pts[i] = plotter.XY{X: x + r + r*math.Cos(t), Y: y + r + r*math.Sin(t)}
		}
		return pts
	case shape.IsocelesTriangle:
		return plotter.XYs{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w/2, Y: y + h},
		}
	default:
		return plotter.XYs{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		}
	}
}
