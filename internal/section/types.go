package section

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/codec"
)

// File is a batch of section requests read from YAML or JSON
type File struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is one calculation request.
// Either Kind names a catalog beam and Dims lists its dimensions in field
// order, or Kind is "custom" and Shapes lists the primitives directly.
type Section struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        string       `json:"kind" yaml:"kind"`
	Dims        []codec.Text `json:"dims,omitempty" yaml:"dims,omitempty"`
	Shapes      []ShapeSpec  `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

// ShapeSpec describes one primitive of a custom section.
// X and Y locate the lower-left corner of the bounding box.
type ShapeSpec struct {
	Type   string     `json:"type" yaml:"type"` // rectangle, triangle or circle
	X      codec.Text `json:"x,omitempty" yaml:"x,omitempty"`
	Y      codec.Text `json:"y,omitempty" yaml:"y,omitempty"`
	Width  codec.Text `json:"width,omitempty" yaml:"width,omitempty"`
	Height codec.Text `json:"height,omitempty" yaml:"height,omitempty"`
	Base   codec.Text `json:"base,omitempty" yaml:"base,omitempty"`
	Radius codec.Text `json:"radius,omitempty" yaml:"radius,omitempty"`

	// Void marks the shape as a hole
	Void bool `json:"void,omitempty" yaml:"void,omitempty"`
}

// IsCustom reports whether the section is built from explicit shapes
func (s *Section) IsCustom() bool {
	return strings.EqualFold(s.Kind, "custom")
}

// Label is the name used in output, falling back to the kind
func (s *Section) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Kind
}

// Validate checks the request is structurally complete. Dimension values are
// checked when the section is built.
func (s *Section) Validate() error {
	if s.Kind == "" {
		return &ValidationError{"section kind is required"}
	}

	if s.IsCustom() {
		if len(s.Shapes) == 0 {
			return &ValidationError{"custom section must have at least one shape"}
		}
		if len(s.Dims) > 0 {
			return &ValidationError{"custom section takes shapes, not dims"}
		}
		for i, sh := range s.Shapes {
			if err := sh.validate(); err != nil {
				return &ValidationError{fmt.Sprintf("shape %d: %v", i+1, err)}
			}
		}
		return nil
	}

	e, ok := beam.Lookup(s.Kind)
	if !ok {
		return &ValidationError{fmt.Sprintf("unknown beam kind %q", s.Kind)}
	}
	if len(s.Shapes) > 0 {
		return &ValidationError{fmt.Sprintf("%s takes dims, not shapes", e.Kind)}
	}
	if e.Kind != beam.DoubleTBeam && len(s.Dims) != len(e.Fields) {
		return &ValidationError{fmt.Sprintf("%s needs %d dims (%s), got %d",
			e.Kind, len(e.Fields), e.FieldIDs(), len(s.Dims))}
	}
	return nil
}

func (sh ShapeSpec) validate() error {
	switch strings.ToLower(sh.Type) {
	case "rectangle", "rect":
		if sh.Width == "" || sh.Height == "" {
			return fmt.Errorf("rectangle needs width and height")
		}
	case "triangle":
		if sh.Base == "" || sh.Height == "" {
			return fmt.Errorf("triangle needs base and height")
		}
	case "circle":
		if sh.Radius == "" {
			return fmt.Errorf("circle needs radius")
		}
	default:
		return fmt.Errorf("unknown shape type %q", sh.Type)
	}
	return nil
}

// Validate checks every section in the file
func (f *File) Validate() error {
	if len(f.Sections) == 0 {
		return &ValidationError{"file must contain at least one section"}
	}
	for i := range f.Sections {
		if err := f.Sections[i].Validate(); err != nil {
			return &ValidationError{fmt.Sprintf("section %d (%s): %v", i+1, f.Sections[i].Label(), err)}
		}
	}
	return nil
}

// ValidationError represents a section file validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
