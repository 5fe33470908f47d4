package section

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/codec"
	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `sections:
  - name: Box girder
    kind: HollowRectangleBeam
    dims: [12, 12, 6, 6]
  - name: Pipe
    kind: pipe
    dims: ["4", "2"]
  - name: Too wide void
    kind: box
    dims: [10, 10, 12, 5]
  - name: Roof ridge
    kind: custom
    shapes:
      - type: rectangle
        width: 6
        height: 3
      - type: triangle
        y: 3
        base: 6
        height: 3
  - name: Plate with hole
    kind: custom
    shapes:
      - type: rectangle
        width: 10
        height: 12
      - type: rectangle
        x: 5/2
        y: 3
        width: 5
        height: 6
        void: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAndComputeYAML(t *testing.T) {
	f, err := LoadFromFile(writeFile(t, "beams.yaml", sampleYAML))
	require.NoError(t, err)
	require.Len(t, f.Sections, 5)

	results := ComputeAll(f)
	require.Len(t, results, 5)

	records := make([]Record, len(results))
	for i, r := range results {
		records[i] = r.Record(shape.Quantity.FractionString)
	}

	assert.Equal(t, Record{Name: "Box girder", Kind: "HollowRectangleBeam",
		Area: "108", CentroidX: "6", CentroidY: "6", MomentOfInertia: "1620"}, records[0])
	assert.Equal(t, Record{Name: "Pipe", Kind: "pipe",
		Area: "12π", CentroidX: "4", CentroidY: "4", MomentOfInertia: "60π"}, records[1])

	assert.ErrorIs(t, results[2].Err, shape.ErrInvalidDimension)
	assert.Contains(t, records[2].Error, "inner-base")
	assert.Empty(t, records[2].Area)

	assert.Equal(t, "27", records[3].Area)
	assert.Equal(t, "7/3", records[3].CentroidY)
	assert.Equal(t, "111/2", records[3].MomentOfInertia)
	assert.Equal(t, beam.Custom, results[3].Beam.Kind())

	assert.Equal(t, "90", records[4].Area)
	assert.Equal(t, "1350", records[4].MomentOfInertia)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "beams.json", `{"sections": [
		{"name": "I", "kind": "IBeam", "dims": [20, 5, 5, 20, 20, 5]},
		{"kind": "CircleBeam", "dims": ["2.5"]}
	]}`)

	f, err := LoadFromFile(path)
	require.NoError(t, err)

	results := ComputeAll(f)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "35000", results[0].Properties.MomentOfInertia.String())

	require.NoError(t, results[1].Err)
	assert.Equal(t, "CircleBeam", f.Sections[1].Label())
	assert.Equal(t, "25/4π", results[1].Properties.Area.String())
	assert.Equal(t, "6.25π", results[1].Record(func(q shape.Quantity) string { return q.DecimalString(4) }).Area)
}

func TestComputeAllKeepsOrder(t *testing.T) {
	f := &File{}
	for i := 1; i <= 50; i++ {
		f.Sections = append(f.Sections, Section{
			Kind: "rect",
			Dims: []codec.Text{codec.Text(rational.FromInt(int64(i)).String()), "2"},
		})
	}

	results := ComputeAll(f)
	require.Len(t, results, 50)
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, rational.FromInt(int64(2*(i+1))).String(), r.Properties.Area.String())
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "sections: []\n"},
		{"no kind", "sections:\n  - dims: [1, 2]\n"},
		{"unknown kind", "sections:\n  - kind: Polygon\n    dims: [1]\n"},
		{"wrong arity", "sections:\n  - kind: TBeam\n    dims: [1, 2]\n"},
		{"custom without shapes", "sections:\n  - kind: custom\n"},
		{"custom with dims", "sections:\n  - kind: custom\n    dims: [1]\n    shapes:\n      - {type: circle, radius: 1}\n"},
		{"catalog with shapes", "sections:\n  - kind: CircleBeam\n    dims: [1]\n    shapes:\n      - {type: circle, radius: 1}\n"},
		{"bad shape type", "sections:\n  - kind: custom\n    shapes:\n      - {type: hexagon}\n"},
		{"rectangle missing height", "sections:\n  - kind: custom\n    shapes:\n      - {type: rectangle, width: 2}\n"},
		{"circle missing radius", "sections:\n  - kind: custom\n    shapes:\n      - {type: circle}\n"},
		{"triangle missing base", "sections:\n  - kind: custom\n    shapes:\n      - {type: triangle, height: 2}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeFile(t, "s.yaml", tt.yaml))
			require.Error(t, err)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve), "got %T: %v", err, err)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := LoadFromFile(writeFile(t, "s.yaml", "sections: [\n"))
	assert.Error(t, err)

	_, err = LoadFromFile(writeFile(t, "s.txt", "sections: []\n"))
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	s := &Section{Kind: "RectangleBeam", Dims: []codec.Text{"ten", "4"}}
	_, err := s.Build()
	assert.ErrorIs(t, err, rational.ErrParse)
	assert.Contains(t, err.Error(), "base")

	s = &Section{Kind: "rect", Dims: []codec.Text{"-2", "4"}}
	_, err = s.Build()
	assert.ErrorIs(t, err, shape.ErrInvalidDimension)

	s = &Section{Kind: "double-t"}
	_, err = s.Build()
	assert.ErrorIs(t, err, beam.ErrUnsupportedBeam)

	s = &Section{Kind: "custom", Shapes: []ShapeSpec{{Type: "circle", Radius: "1", X: "abc"}}}
	_, err = s.Build()
	assert.ErrorIs(t, err, rational.ErrParse)

	s = &Section{Kind: "custom", Shapes: []ShapeSpec{{Type: "triangle", Base: "-1", Height: "2"}}}
	_, err = s.Build()
	assert.ErrorIs(t, err, shape.ErrInvalidDimension)

	r := Compute(&Section{Kind: "custom", Shapes: []ShapeSpec{
		{Type: "rectangle", Width: "2", Height: "2"},
		{Type: "circle", Radius: "1"},
	}})
	assert.ErrorIs(t, r.Err, shape.ErrMixedScale)
	assert.NotNil(t, r.Beam)
	assert.Nil(t, r.Properties)
}
