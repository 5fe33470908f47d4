package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/shape"
)

const (
	maxCols = 40
	maxRows = 20

	// terminal cells are roughly twice as tall as they are wide
	cellAspect = 2.0
)

// DrawASCIISection rasterizes the section into characters. Solid material is
// drawn as █, voids and empty space as blanks, and the centroid as +.
func DrawASCIISection(b *beam.Beam) string {
	minX, minY, maxX, maxY := floatBounds(b)
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return "  (empty section)\n"
	}

	cols, rows := gridSize(w, h)
	cellW := w / float64(cols)
	cellH := h / float64(rows)

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		// row 0 is the top of the section
		py := maxY - (float64(r)+0.5)*cellH
		for c := range grid[r] {
			px := minX + (float64(c)+0.5)*cellW
			if solidAt(b.Shapes(), px, py) {
				grid[r][c] = '█'
			} else {
				grid[r][c] = ' '
			}
		}
	}

	if cx, err := b.CentroidX(); err == nil {
		if cy, err := b.CentroidY(); err == nil {
			c := clamp(int((cx.Float64()-minX)/cellW), 0, cols-1)
			r := clamp(int((maxY-cy.Float64())/cellH), 0, rows-1)
			grid[r][c] = '+'
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("  %.4g × %.4g, + = centroid\n", w, h))

	return sb.String()
}

func gridSize(w, h float64) (cols, rows int) {
	cols = maxCols
	rows = int(math.Round(float64(cols) * h / w / cellAspect))
	if rows > maxRows {
		rows = maxRows
		cols = int(math.Round(float64(rows) * w / h * cellAspect))
	}
	return clamp(cols, 1, maxCols), clamp(rows, 1, maxRows)
}

// solidAt reports whether (px, py) lies in some solid and in no void
func solidAt(shapes []shape.Shape, px, py float64) bool {
	solid := false
	for _, s := range shapes {
		if !contains(s, px, py) {
			continue
		}
		if !s.Filled() {
			return false
		}
		solid = true
	}
	return solid
}

func contains(s shape.Shape, px, py float64) bool {
	x, y := s.X().Float64(), s.Y().Float64()
	w, h := s.Width().Float64(), s.Height().Float64()

	switch s.Kind() {
	case shape.Circle:
		r := s.Radius().Float64()
		dx, dy := px-(x+r), py-(y+r)
		return dx*dx+dy*dy <= r*r
	case shape.IsocelesTriangle:
		if py < y || py > y+h || h == 0 {
			return false
		}
		half := w / 2 * (1 - (py-y)/h)
		return math.Abs(px-(x+w/2)) <= half
	default:
		return px >= x && px <= x+w && py >= y && py <= y+h
	}
}

func floatBounds(b *beam.Beam) (minX, minY, maxX, maxY float64) {
	x0, y0, x1, y1 := b.Bounds()
	return x0.Float64(), y0.Float64(), x1.Float64(), y1.Float64()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes and misaligns π
func pad(s string, n int) string {
	if k := utf8.RuneCountInString(s); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
