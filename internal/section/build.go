package section

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/codec"
	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/shape"
)

// LoadFromFile loads and validates a section file (.yaml, .yml or .json)
func LoadFromFile(path string) (*File, error) {
	var f File
	if err := codec.DecodeFile(path, &f); err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Build parses the dimension text and constructs the beam
func (s *Section) Build() (*beam.Beam, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if s.IsCustom() {
		shapes := make([]shape.Shape, 0, len(s.Shapes))
		for i, spec := range s.Shapes {
			sh, err := spec.build()
			if err != nil {
				return nil, fmt.Errorf("shape %d: %w", i+1, err)
			}
			shapes = append(shapes, sh)
		}
		return beam.Compose(beam.Custom, shapes...)
	}

	e, _ := beam.Lookup(s.Kind)
	dims := make([]rational.Rational, len(s.Dims))
	for i, text := range s.Dims {
		field := fmt.Sprintf("dim %d", i+1)
		if i < len(e.Fields) {
			field = e.Fields[i].ID
		}
		d, err := rational.Parse(string(text))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		dims[i] = d
	}
	return e.Construct(dims)
}

func (sh ShapeSpec) build() (shape.Shape, error) {
	x, err := parseOptional("x", sh.X)
	if err != nil {
		return shape.Shape{}, err
	}
	y, err := parseOptional("y", sh.Y)
	if err != nil {
		return shape.Shape{}, err
	}

	var out shape.Shape
	switch strings.ToLower(sh.Type) {
	case "rectangle", "rect":
		w, h, err := parsePair("width", sh.Width, "height", sh.Height)
		if err != nil {
			return shape.Shape{}, err
		}
		out, err = shape.NewRectangle(x, y, w, h)
		if err != nil {
			return shape.Shape{}, err
		}
	case "triangle":
		b, h, err := parsePair("base", sh.Base, "height", sh.Height)
		if err != nil {
			return shape.Shape{}, err
		}
		out, err = shape.NewTriangle(x, y, b, h)
		if err != nil {
			return shape.Shape{}, err
		}
	case "circle":
		rad, err := rational.Parse(string(sh.Radius))
		if err != nil {
			return shape.Shape{}, fmt.Errorf("radius: %w", err)
		}
		out, err = shape.NewCircle(x, y, rad)
		if err != nil {
			return shape.Shape{}, err
		}
	default:
		return shape.Shape{}, fmt.Errorf("unknown shape type %q", sh.Type)
	}

	if sh.Void {
		out = out.Void()
	}
	return out, nil
}

// parseOptional treats empty text as zero
func parseOptional(field string, text codec.Text) (rational.Rational, error) {
	if text == "" {
		return rational.Zero, nil
	}
	v, err := rational.Parse(string(text))
	if err != nil {
		return rational.Rational{}, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

func parsePair(f1 string, t1 codec.Text, f2 string, t2 codec.Text) (rational.Rational, rational.Rational, error) {
	a, err := rational.Parse(string(t1))
	if err != nil {
		return rational.Rational{}, rational.Rational{}, fmt.Errorf("%s: %w", f1, err)
	}
	b, err := rational.Parse(string(t2))
	if err != nil {
		return rational.Rational{}, rational.Rational{}, fmt.Errorf("%s: %w", f2, err)
	}
	return a, b, nil
}
