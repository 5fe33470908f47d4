package beam

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/shape"
)

// ErrDegenerateGeometry is returned when the signed area of a section is zero,
// which leaves the centroid undefined
var ErrDegenerateGeometry = errors.New("degenerate geometry: total area is zero")

// Beam is a composite cross-section: an ordered list of solid and void shapes
// in one local coordinate frame. A Beam never changes after construction.
type Beam struct {
	kind   Kind
	shapes []shape.Shape
}

// Compose builds a section directly from primitives. The catalog
// constructors go through here; it is also used for custom sections.
func Compose(kind Kind, shapes ...shape.Shape) (*Beam, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("%w: section has no shapes", ErrDegenerateGeometry)
	}
	owned := make([]shape.Shape, len(shapes))
	copy(owned, shapes)
	return &Beam{kind: kind, shapes: owned}, nil
}

// Kind returns the catalog kind the section was built as
func (b *Beam) Kind() Kind {
	return b.kind
}

// Shapes returns a copy of the constituent shapes in construction order
func (b *Beam) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(b.shapes))
	copy(out, b.shapes)
	return out
}

// Area is the sum of signed shape areas: solids add, voids subtract
func (b *Beam) Area() (shape.Quantity, error) {
	var total shape.Quantity
	for i, s := range b.shapes {
		a := s.SignedArea()
		if i == 0 {
			total = a
			continue
		}
		var err error
		if total, err = total.Add(a); err != nil {
			return shape.Quantity{}, err
		}
	}
	return total, nil
}

// CentroidX is the area-weighted mean of the shape centroids along x
func (b *Beam) CentroidX() (rational.Rational, error) {
	return b.centroid(shape.Shape.CentroidX)
}

// CentroidY is the area-weighted mean of the shape centroids along y
func (b *Beam) CentroidY() (rational.Rational, error) {
	return b.centroid(shape.Shape.CentroidY)
}

func (b *Beam) centroid(coord func(shape.Shape) rational.Rational) (rational.Rational, error) {
	area, err := b.Area()
	if err != nil {
		return rational.Rational{}, err
	}
	if area.IsZero() {
		return rational.Rational{}, ErrDegenerateGeometry
	}

	var moment shape.Quantity
	for i, s := range b.shapes {
		m := s.SignedArea().Scale(coord(s))
		if i == 0 {
			moment = m
			continue
		}
		if moment, err = moment.Add(m); err != nil {
			return rational.Rational{}, err
		}
	}

	return moment.Ratio(area)
}

// MomentOfInertia is the second moment of area about the horizontal axis
// through the section centroid. Each shape contributes its own centroidal
// moment plus area·dy² (parallel axis theorem); voids contribute negatively.
func (b *Beam) MomentOfInertia() (shape.Quantity, error) {
	ybar, err := b.CentroidY()
	if err != nil {
		return shape.Quantity{}, err
	}

	var total shape.Quantity
	for i, s := range b.shapes {
		dy := s.CentroidY().Sub(ybar)
		contrib, err := s.SelfMoment().Add(s.Area().Scale(dy.Pow(2)))
		if err != nil {
			return shape.Quantity{}, err
		}
		if !s.Filled() {
			contrib = contrib.Neg()
		}
		if i == 0 {
			total = contrib
			continue
		}
		if total, err = total.Add(contrib); err != nil {
			return shape.Quantity{}, err
		}
	}
	return total, nil
}

// Properties holds the four section properties of a beam
type Properties struct {
	Area            shape.Quantity
	CentroidX       shape.Quantity
	CentroidY       shape.Quantity
	MomentOfInertia shape.Quantity
}

// Properties computes area, centroid and moment of inertia in one pass
func (b *Beam) Properties() (*Properties, error) {
	area, err := b.Area()
	if err != nil {
		return nil, err
	}
	cx, err := b.CentroidX()
	if err != nil {
		return nil, err
	}
	cy, err := b.CentroidY()
	if err != nil {
		return nil, err
	}
	moi, err := b.MomentOfInertia()
	if err != nil {
		return nil, err
	}

	return &Properties{
		Area:            area,
		CentroidX:       shape.Plain(cx),
		CentroidY:       shape.Plain(cy),
		MomentOfInertia: moi,
	}, nil
}

// Bounds returns the bounding box of all shapes
func (b *Beam) Bounds() (minX, minY, maxX, maxY rational.Rational) {
	for i, s := range b.shapes {
		x0, y0, x1, y1 := s.Bounds()
		if i == 0 {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			continue
		}
		minX = rational.Min(minX, x0)
		minY = rational.Min(minY, y0)
		maxX = rational.Max(maxX, x1)
		maxY = rational.Max(maxY, y1)
	}
	return minX, minY, maxX, maxY
}
