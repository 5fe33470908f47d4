// Package verify runs fixed input/output fixtures against the beam catalog
// and reports every exact mismatch.
package verify

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/codec"
	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/shape"
)

// Fixture is one expected result. Quantities use the ParseQuantity text form
// ("120", "63/11", "16π").
type Fixture struct {
	Kind      string       `json:"kind" yaml:"kind"`
	Dims      []codec.Text `json:"dims" yaml:"dims"`
	Area      codec.Text   `json:"area" yaml:"area"`
	CentroidX codec.Text   `json:"centroid_x" yaml:"centroid_x"`
	CentroidY codec.Text   `json:"centroid_y" yaml:"centroid_y"`
	Moment    codec.Text   `json:"moment" yaml:"moment"`
}

// String renders the fixture as Kind(d1, d2, ...)
func (f Fixture) String() string {
	return fmt.Sprintf("%s(%s)", f.Kind, strings.Join(codec.Strings(f.Dims), ", "))
}

// Fixtures returns the built-in regression table
func Fixtures() []Fixture {
	return []Fixture{
		{"RectangleBeam", []codec.Text{"10", "12"}, "120", "5", "6", "1440"},
		{"HollowRectangleBeam", []codec.Text{"12", "12", "6", "6"}, "108", "6", "6", "1620"},
		{"HollowRectangleBeam", []codec.Text{"10", "12", "5", "6"}, "90", "5", "6", "1350"},
		{"TBeam", []codec.Text{"12", "6", "3", "12"}, "108", "6", "12", "2592"},
		{"TBeam", []codec.Text{"8", "2", "2", "6"}, "28", "4", "37/7", "3172/21"},
		{"IBeam", []codec.Text{"20", "5", "5", "20", "20", "5"}, "300", "10", "15", "35000"},
		{"IBeam", []codec.Text{"10", "2", "2", "6", "6", "2"}, "44", "5", "63/11", "17668/33"},
		{"HBeam", []codec.Text{"5", "20", "20", "5", "5", "20"}, "300", "15", "10", "6875"},
		{"HBeam", []codec.Text{"2", "10", "4", "2", "2", "6"}, "40", "17/5", "5", "616/3"},
		{"CircleBeam", []codec.Text{"4"}, "16π", "4", "4", "64π"},
		{"HollowCircleBeam", []codec.Text{"4", "2"}, "12π", "4", "4", "60π"},
	}
}

// Mismatch is one property that differs from its fixture
type Mismatch struct {
	Property string
	Got      shape.Quantity
	Want     shape.Quantity
}

// String renders the mismatch as "property: got x, want y"
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %s, want %s", m.Property, m.Got, m.Want)
}

// Outcome is the result of checking one fixture
type Outcome struct {
	Fixture    Fixture
	Computed   *beam.Properties
	Mismatches []Mismatch
	Err        error // construction, parse or query failure
}

// Passed reports whether the fixture computed without error or mismatch
func (o Outcome) Passed() bool {
	return o.Err == nil && len(o.Mismatches) == 0
}

// Report collects the outcomes of a run
type Report struct {
	Outcomes []Outcome
}

// Failed counts the outcomes that did not pass
func (r *Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Passed() {
			n++
		}
	}
	return n
}

// Run checks every fixture. It never stops early: each failure is recorded
// in its outcome.
func Run(fixtures []Fixture) *Report {
	report := &Report{Outcomes: make([]Outcome, 0, len(fixtures))}
	for _, f := range fixtures {
		report.Outcomes = append(report.Outcomes, check(f))
	}
	return report
}

func check(f Fixture) Outcome {
	out := Outcome{Fixture: f}

	dims := make([]rational.Rational, len(f.Dims))
	for i, text := range f.Dims {
		d, err := rational.Parse(string(text))
		if err != nil {
			out.Err = fmt.Errorf("dimension %d: %w", i+1, err)
			return out
		}
		dims[i] = d
	}

	want := make([]shape.Quantity, 4)
	for i, text := range []codec.Text{f.Area, f.CentroidX, f.CentroidY, f.Moment} {
		q, err := shape.ParseQuantity(string(text))
		if err != nil {
			out.Err = fmt.Errorf("expected %s: %w", propertyNames[i], err)
			return out
		}
		want[i] = q
	}

	b, err := beam.Construct(f.Kind, dims)
	if err != nil {
		out.Err = err
		return out
	}
	props, err := b.Properties()
	if err != nil {
		out.Err = err
		return out
	}
	out.Computed = props

	got := []shape.Quantity{props.Area, props.CentroidX, props.CentroidY, props.MomentOfInertia}
	for i := range got {
		if !got[i].Equal(want[i]) {
			out.Mismatches = append(out.Mismatches, Mismatch{Property: propertyNames[i], Got: got[i], Want: want[i]})
		}
	}
	return out
}

var propertyNames = []string{"area", "centroid_x", "centroid_y", "moment"}
