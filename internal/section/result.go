package section

import (
	"runtime"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/shape"
	"golang.org/x/sync/errgroup"
)

// Result is the computed outcome of one section, ready for display or export.
// Exactly one of Properties and Err is set.
type Result struct {
	Section    *Section
	Beam       *beam.Beam
	Properties *beam.Properties
	Err        error
}

// Compute builds the section and computes its properties. Failures are
// recorded on the result so one bad section does not stop a batch.
func Compute(s *Section) Result {
	r := Result{Section: s}
	b, err := s.Build()
	if err != nil {
		r.Err = err
		return r
	}
	r.Beam = b

	props, err := b.Properties()
	if err != nil {
		r.Err = err
		return r
	}
	r.Properties = props
	return r
}

// ComputeAll computes every section of f. Sections are independent, so they
// run in parallel; results keep the file order.
func ComputeAll(f *File) []Result {
	results := make([]Result, len(f.Sections))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range f.Sections {
		g.Go(func() error {
			results[i] = Compute(&f.Sections[i])
			return nil
		})
	}
	g.Wait()

	return results
}

// Record is the exported form of a Result
type Record struct {
	Name            string `json:"name" yaml:"name"`
	Kind            string `json:"kind" yaml:"kind"`
	Area            string `json:"area,omitempty" yaml:"area,omitempty"`
	CentroidX       string `json:"centroid_x,omitempty" yaml:"centroid_x,omitempty"`
	CentroidY       string `json:"centroid_y,omitempty" yaml:"centroid_y,omitempty"`
	MomentOfInertia string `json:"moment_of_inertia,omitempty" yaml:"moment_of_inertia,omitempty"`
	Error           string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Formatter renders a quantity for export
type Formatter func(q shape.Quantity) string

// Record converts r using format for every quantity
func (r Result) Record(format Formatter) Record {
	rec := Record{Name: r.Section.Label(), Kind: r.Section.Kind}
	if r.Err != nil {
		rec.Error = r.Err.Error()
		return rec
	}
	rec.Area = format(r.Properties.Area)
	rec.CentroidX = format(r.Properties.CentroidX)
	rec.CentroidY = format(r.Properties.CentroidY)
	rec.MomentOfInertia = format(r.Properties.MomentOfInertia)
	return rec
}

// ResultFile is the document written by the section command's --write flag
type ResultFile struct {
	Results []Record `json:"results" yaml:"results"`
}
