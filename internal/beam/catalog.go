package beam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/shape"
)

var (
	// ErrUnsupportedBeam is returned for catalog kinds that exist but cannot be built
	ErrUnsupportedBeam = errors.New("unsupported beam")

	// ErrUnknownBeam is returned when a kind identifier matches no catalog entry
	ErrUnknownBeam = errors.New("unknown beam kind")
)

// Kind identifies a catalog beam
type Kind string

const (
	RectangleBeam       Kind = "RectangleBeam"
	HollowRectangleBeam Kind = "HollowRectangleBeam"
	TBeam               Kind = "TBeam"
	IBeam               Kind = "IBeam"
	HBeam               Kind = "HBeam"
	CircleBeam          Kind = "CircleBeam"
	HollowCircleBeam    Kind = "HollowCircleBeam"
	DoubleTBeam         Kind = "DoubleTBeam"

	// Custom marks sections composed from explicit primitives
	Custom Kind = "Custom"
)

// Field is one named input dimension of a catalog beam
type Field struct {
	ID    string // e.g. "upper-base"
	Label string // e.g. "Upper Base"
}

// Constructor builds a beam from dimensions ordered as the entry's Fields
type Constructor func(dims []rational.Rational) (*Beam, error)

// Entry describes one beam kind in the catalog
type Entry struct {
	Kind    Kind
	Label   string
	Aliases []string
	Fields  []Field
	Build   Constructor
}

var catalog = []Entry{
	{
		Kind:    RectangleBeam,
		Label:   "Rectangular Beam",
		Aliases: []string{"rect", "rectangle"},
		Fields:  fields("base", "height"),
		Build: func(d []rational.Rational) (*Beam, error) {
			return NewRectangleBeam(d[0], d[1])
		},
	},
	{
		Kind:    HollowRectangleBeam,
		Label:   "Hollow Rectangular Beam",
		Aliases: []string{"hollow-rect", "hollow-rectangle", "box"},
		Fields:  fields("base", "height", "inner-base", "inner-height"),
		Build: func(d []rational.Rational) (*Beam, error) {
			return NewHollowRectangleBeam(d[0], d[1], d[2], d[3])
		},
	},
	{
		Kind:    TBeam,
		Label:   "T Beam",
		Aliases: []string{"t", "tee"},
		Fields:  fields("upper-base", "upper-height", "lower-base", "lower-height"),
		Build: func(d []rational.Rational) (*Beam, error) {
			return NewTBeam(d[0], d[1], d[2], d[3])
		},
	},
	{
		Kind:    IBeam,
		Label:   "I Beam",
		Aliases: []string{"i"},
		Fields:  fields("upper-base", "upper-height", "middle-base", "middle-height", "lower-base", "lower-height"),
		Build: func(d []rational.Rational) (*Beam, error) {
			return NewIBeam(d[0], d[1], d[2], d[3], d[4], d[5])
		},
	},
	{
		Kind:    HBeam,
		Label:   "H Beam",
		Aliases: []string{"h"},
		Fields:  fields("left-base", "left-height", "middle-base", "middle-height", "right-base", "right-height"),
		Build: func(d []rational.Rational) (*Beam, error) {
			return NewHBeam(d[0], d[1], d[2], d[3], d[4], d[5])
		},
	},
	{
		Kind:    CircleBeam,
		Label:   "Circular Beam",
		Aliases: []string{"circle", "round"},
		Fields:  fields("radius"),
		Build: func(d []rational.Rational) (*Beam, error) {
			return NewCircleBeam(d[0])
		},
	},
	{
		Kind:    HollowCircleBeam,
		Label:   "Hollow Circular Beam",
		Aliases: []string{"hollow-circle", "pipe", "tube"},
		Fields:  fields("outer-radius", "inner-radius"),
		Build: func(d []rational.Rational) (*Beam, error) {
			return NewHollowCircleBeam(d[0], d[1])
		},
	},
	{
		Kind:    DoubleTBeam,
		Label:   "Double T Beam",
		Aliases: []string{"double-t", "tt"},
		Build: func(d []rational.Rational) (*Beam, error) {
			return NewDoubleTBeam(d...)
		},
	},
}

// fields derives labels from kebab-case IDs: "inner-base" -> "Inner Base"
func fields(ids ...string) []Field {
	out := make([]Field, len(ids))
	for i, id := range ids {
		words := strings.Split(id, "-")
		for j, w := range words {
			words[j] = strings.ToUpper(w[:1]) + w[1:]
		}
		out[i] = Field{ID: id, Label: strings.Join(words, " ")}
	}
	return out
}

// Catalog returns all entries in selector order
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an entry by kind identifier, display label or alias, ignoring case
func Lookup(name string) (Entry, bool) {
	name = strings.TrimSpace(name)
	for _, e := range catalog {
		if strings.EqualFold(name, string(e.Kind)) || strings.EqualFold(name, e.Label) {
			return e, true
		}
		for _, a := range e.Aliases {
			if strings.EqualFold(name, a) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Construct builds the named beam from dimensions ordered as in its Fields.
// Every dimension must be non-negative.
func Construct(name string, dims []rational.Rational) (*Beam, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBeam, name)
	}
	return e.Construct(dims)
}

// Construct checks arity and signs, then runs the entry's constructor
func (e Entry) Construct(dims []rational.Rational) (*Beam, error) {
	if e.Kind == DoubleTBeam {
		return e.Build(dims)
	}
	if len(dims) != len(e.Fields) {
		return nil, shape.NewDimensionError("", "%s takes %d dimensions (%s), got %d",
			e.Kind, len(e.Fields), e.FieldIDs(), len(dims))
	}
	for i, d := range dims {
		if d.Sign() < 0 {
			return nil, shape.NewDimensionError(e.Fields[i].ID, "must not be negative, got %s", d)
		}
	}
	return e.Build(dims)
}

// FieldIDs joins the field identifiers for messages
func (e Entry) FieldIDs() string {
	ids := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		ids[i] = f.ID
	}
	return strings.Join(ids, ", ")
}

// NewRectangleBeam is a single solid rectangle at the origin
func NewRectangleBeam(base, height rational.Rational) (*Beam, error) {
	r, err := shape.NewRectangle(rational.Zero, rational.Zero, base, height)
	if err != nil {
		return nil, err
	}
	return Compose(RectangleBeam, r)
}

// NewHollowRectangleBeam is a solid rectangle with a centered rectangular void.
// The void must be strictly smaller than the outline on both axes.
func NewHollowRectangleBeam(base, height, innerBase, innerHeight rational.Rational) (*Beam, error) {
	if !innerBase.LessThan(base) {
		return nil, shape.NewDimensionError("inner-base", "%s must be less than base %s", innerBase, base)
	}
	if !innerHeight.LessThan(height) {
		return nil, shape.NewDimensionError("inner-height", "%s must be less than height %s", innerHeight, height)
	}

	outer, err := shape.NewRectangle(rational.Zero, rational.Zero, base, height)
	if err != nil {
		return nil, err
	}
	dx := base.Sub(innerBase).Half()
	dy := height.Sub(innerHeight).Half()
	inner, err := shape.NewRectangle(dx, dy, innerBase, innerHeight)
	if err != nil {
		return nil, err
	}
	return Compose(HollowRectangleBeam, outer, inner.Void())
}

// NewTBeam is a stem centered under a flange. The stem cannot be wider than the flange.
func NewTBeam(upperBase, upperHeight, lowerBase, lowerHeight rational.Rational) (*Beam, error) {
	if lowerBase.GreaterThan(upperBase) {
		return nil, shape.NewDimensionError("lower-base", "%s must not exceed upper-base %s", lowerBase, upperBase)
	}

	dx := upperBase.Sub(lowerBase).Half()
	stem, err := shape.NewRectangle(dx, rational.Zero, lowerBase, lowerHeight)
	if err != nil {
		return nil, err
	}
	flange, err := shape.NewRectangle(rational.Zero, lowerHeight, upperBase, upperHeight)
	if err != nil {
		return nil, err
	}
	return Compose(TBeam, stem, flange)
}

// NewIBeam stacks lower flange, web and upper flange. The wider flange sits
// at x = 0; the narrower flange and the web are centered on it.
func NewIBeam(upperBase, upperHeight, middleBase, middleHeight, lowerBase, lowerHeight rational.Rational) (*Beam, error) {
	maxX := rational.Max(upperBase, lowerBase)
	upperX := maxX.Sub(upperBase).Half()
	lowerX := maxX.Sub(lowerBase).Half()

	lower, err := shape.NewRectangle(lowerX, rational.Zero, lowerBase, lowerHeight)
	if err != nil {
		return nil, err
	}
	web, err := shape.NewRectangle(maxX.Sub(middleBase).Half(), lowerHeight, middleBase, middleHeight)
	if err != nil {
		return nil, err
	}
	upper, err := shape.NewRectangle(upperX, lowerHeight.Add(middleHeight), upperBase, upperHeight)
	if err != nil {
		return nil, err
	}
	return Compose(IBeam, lower, web, upper)
}

// NewHBeam places left flange, web and right flange side by side. The taller
// flange sits at y = 0; the shorter flange and the web are centered on it.
func NewHBeam(leftBase, leftHeight, middleBase, middleHeight, rightBase, rightHeight rational.Rational) (*Beam, error) {
	maxY := rational.Max(leftHeight, rightHeight)
	leftY := maxY.Sub(leftHeight).Half()
	rightY := maxY.Sub(rightHeight).Half()

	left, err := shape.NewRectangle(rational.Zero, leftY, leftBase, leftHeight)
	if err != nil {
		return nil, err
	}
	web, err := shape.NewRectangle(leftBase, maxY.Sub(middleHeight).Half(), middleBase, middleHeight)
	if err != nil {
		return nil, err
	}
	right, err := shape.NewRectangle(leftBase.Add(middleBase), rightY, rightBase, rightHeight)
	if err != nil {
		return nil, err
	}
	return Compose(HBeam, left, web, right)
}

// NewCircleBeam is a single solid circle at the origin
func NewCircleBeam(radius rational.Rational) (*Beam, error) {
	c, err := shape.NewCircle(rational.Zero, rational.Zero, radius)
	if err != nil {
		return nil, err
	}
	return Compose(CircleBeam, c)
}

// NewHollowCircleBeam is a solid circle with a concentric circular void
func NewHollowCircleBeam(outerRadius, innerRadius rational.Rational) (*Beam, error) {
	if !innerRadius.LessThan(outerRadius) {
		return nil, shape.NewDimensionError("inner-radius", "%s must be less than outer-radius %s", innerRadius, outerRadius)
	}

	outer, err := shape.NewCircle(rational.Zero, rational.Zero, outerRadius)
	if err != nil {
		return nil, err
	}
	thickness := outerRadius.Sub(innerRadius)
	inner, err := shape.NewCircle(thickness, thickness, innerRadius)
	if err != nil {
		return nil, err
	}
	return Compose(HollowCircleBeam, outer, inner.Void())
}

// NewDoubleTBeam is listed in the catalog but not supported.
// It always fails and builds nothing.
func NewDoubleTBeam(dims ...rational.Rational) (*Beam, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedBeam, DoubleTBeam)
}
