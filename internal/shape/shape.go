package shape

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/beamprops/internal/rational"
)

// ErrInvalidDimension is matched by every *DimensionError
var ErrInvalidDimension = errors.New("invalid dimension")

// DimensionError reports a dimension that makes the geometry impossible
type DimensionError struct {
	Field string
	msg   string
}

// NewDimensionError builds a DimensionError for field with a formatted reason
func NewDimensionError(field, format string, args ...any) *DimensionError {
	return &DimensionError{Field: field, msg: fmt.Sprintf(format, args...)}
}

func (e *DimensionError) Error() string {
	if e.Field == "" {
		return e.msg
	}
	return e.Field + ": " + e.msg
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}

// Kind tags the Shape variant
type Kind int

const (
	Rectangle Kind = iota
	IsocelesTriangle
	Circle
)

// String returns the lower-case shape name
func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case IsocelesTriangle:
		return "triangle"
	case Circle:
		return "circle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is a primitive cross-section placed in the local beam frame.
// X, Y locate the lower-left corner of the bounding box. A solid shape adds
// to the section; a void (Filled == false) is subtracted.
//
// Field use per kind:
//
//	Rectangle         Width, Height
//	IsocelesTriangle  Width (base), Height
//	Circle            Width (radius)
type Shape struct {
	kind   Kind
	x, y   rational.Rational
	width  rational.Rational
	height rational.Rational
	filled bool
}

// NewRectangle returns a solid width × height rectangle at (x, y)
func NewRectangle(x, y, width, height rational.Rational) (Shape, error) {
	if err := nonNegative("width", width); err != nil {
		return Shape{}, err
	}
	if err := nonNegative("height", height); err != nil {
		return Shape{}, err
	}
	return Shape{kind: Rectangle, x: x, y: y, width: width, height: height, filled: true}, nil
}

// NewTriangle returns a solid isoceles triangle with its base on y and
// its apex centered over the base
func NewTriangle(x, y, base, height rational.Rational) (Shape, error) {
	if err := nonNegative("base", base); err != nil {
		return Shape{}, err
	}
	if err := nonNegative("height", height); err != nil {
		return Shape{}, err
	}
	return Shape{kind: IsocelesTriangle, x: x, y: y, width: base, height: height, filled: true}, nil
}

// NewCircle returns a solid circle whose bounding box starts at (x, y)
func NewCircle(x, y, radius rational.Rational) (Shape, error) {
	if err := nonNegative("radius", radius); err != nil {
		return Shape{}, err
	}
	return Shape{kind: Circle, x: x, y: y, width: radius, filled: true}, nil
}

func nonNegative(field string, v rational.Rational) error {
	if v.Sign() < 0 {
		return NewDimensionError(field, "must not be negative, got %s", v)
	}
	return nil
}

// Void returns a copy of s marked as a hole
func (s Shape) Void() Shape {
	s.filled = false
	return s
}

// Kind returns the variant of s
func (s Shape) Kind() Kind { return s.kind }

// X returns the left edge of the bounding box
func (s Shape) X() rational.Rational { return s.x }

// Y returns the bottom edge of the bounding box
func (s Shape) Y() rational.Rational { return s.y }

// Filled reports whether s adds material. Voids return false.
func (s Shape) Filled() bool { return s.filled }

// Width returns the rectangle width, the triangle base or the circle radius
func (s Shape) Width() rational.Rational { return s.width }

// Height returns the rectangle or triangle height. It is zero for circles.
func (s Shape) Height() rational.Rational { return s.height }

// Radius is only meaningful for circles
func (s Shape) Radius() rational.Rational { return s.width }

// Area returns the unsigned area. For circles the coefficient is r² with Pi = 1.
func (s Shape) Area() Quantity {
	switch s.kind {
	case Rectangle:
		return Plain(s.width.Mul(s.height))
	case IsocelesTriangle:
		return Plain(s.width.Mul(s.height).Half())
	case Circle:
		return Scaled(s.width.Pow(2))
	}
	panic("shape: unknown kind " + s.kind.String())
}

// SignedArea is Area, negated for voids
func (s Shape) SignedArea() Quantity {
	if !s.filled {
		return s.Area().Neg()
	}
	return s.Area()
}

// CentroidX is the x coordinate of the shape's own centroid
func (s Shape) CentroidX() rational.Rational {
	if s.kind == Circle {
		return s.x.Add(s.width)
	}
	// rectangles and isoceles triangles are symmetric about the base midpoint
	return s.x.Add(s.width.Half())
}

// CentroidY is the y coordinate of the shape's own centroid
func (s Shape) CentroidY() rational.Rational {
	switch s.kind {
	case Rectangle:
		return s.y.Add(s.height.Half())
	case IsocelesTriangle:
		return s.y.Add(s.height.Mul(rational.New(1, 3)))
	case Circle:
		return s.y.Add(s.width)
	}
	panic("shape: unknown kind " + s.kind.String())
}

// SelfMoment is the unsigned second moment of area about the shape's own
// horizontal centroidal axis
func (s Shape) SelfMoment() Quantity {
	switch s.kind {
	case Rectangle:
		return Plain(s.width.Mul(s.height.Pow(3)).Mul(rational.New(1, 12)))
	case IsocelesTriangle:
		return Plain(s.width.Mul(s.height.Pow(3)).Mul(rational.New(1, 36)))
	case Circle:
		return Scaled(s.width.Pow(4).Mul(rational.New(1, 4)))
	}
	panic("shape: unknown kind " + s.kind.String())
}

// Bounds returns the lower-left and upper-right corners of the bounding box
func (s Shape) Bounds() (minX, minY, maxX, maxY rational.Rational) {
	w, h := s.width, s.height
	if s.kind == Circle {
		w = s.width.Add(s.width)
		h = w
	}
	return s.x, s.y, s.x.Add(w), s.y.Add(h)
}

// String describes the shape for logs and verbose output
func (s Shape) String() string {
	fill := "solid"
	if !s.filled {
		fill = "void"
	}
	if s.kind == Circle {
		return fmt.Sprintf("%s %s r=%s at (%s, %s)", fill, s.kind, s.width, s.x, s.y)
	}
	return fmt.Sprintf("%s %s %s×%s at (%s, %s)", fill, s.kind, s.width, s.height, s.x, s.y)
}
