package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/beamprops/internal/beam"
	"github.com/alexiusacademia/beamprops/internal/codec"
	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/section"
	"github.com/alexiusacademia/beamprops/internal/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag state
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	configFile = ""
	computeShowDiagram, computeExportFile = false, ""
	sectionFile, sectionWriteFile, sectionShowDiagram = "", "", false
	verifyFile = ""

	flags := rootCmd.PersistentFlags()
	require.NoError(t, flags.Set("format", "fraction"))
	require.NoError(t, flags.Set("precision", "6"))
	require.NoError(t, flags.Set("verbose", "false"))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestComputeFractions(t *testing.T) {
	out, err := execute(t, "compute", "IBeam", "10", "2", "2", "6", "6", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "I BEAM")
	assert.Contains(t, out, "Upper Base:")
	assert.Contains(t, out, "63/11")
	assert.Contains(t, out, "17668/33")
}

func TestComputeDecimalWithDiagram(t *testing.T) {
	out, err := execute(t, "compute", "--format", "decimal", "--precision", "3", "--diagram", "pipe", "4", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "12π")
	assert.Contains(t, out, "60π")
	assert.Contains(t, out, "█")
}

func TestComputeExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tee.svg")

	out, err := execute(t, "compute", "-o", path, "tee", "12", "6", "3", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Diagram exported to")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestComputeExportReportsWrittenPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tee")

	out, err := execute(t, "compute", "-o", path, "tee", "12", "6", "3", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Diagram exported to: "+path+".png")

	_, err = os.Stat(path + ".png")
	assert.NoError(t, err)
}

func TestComputeErrors(t *testing.T) {
	_, err := execute(t, "compute", "rect", "-2", "4")
	assert.ErrorIs(t, err, shape.ErrInvalidDimension)
	assert.Contains(t, err.Error(), "base")

	_, err = execute(t, "compute", "rect", "10", "twelve")
	assert.ErrorIs(t, err, rational.ErrParse)
	assert.Contains(t, err.Error(), "height")

	_, err = execute(t, "compute", "rect", "10")
	assert.ErrorIs(t, err, shape.ErrInvalidDimension)

	_, err = execute(t, "compute", "octagon", "1")
	assert.ErrorIs(t, err, beam.ErrUnknownBeam)

	_, err = execute(t, "compute", "DoubleTBeam")
	assert.ErrorIs(t, err, beam.ErrUnsupportedBeam)

	_, err = execute(t, "compute", "rect", "0", "4")
	assert.ErrorIs(t, err, beam.ErrDegenerateGeometry)

	_, err = execute(t, "compute", "--format", "octal", "rect", "1", "1")
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	for _, e := range beam.Catalog() {
		assert.Contains(t, out, string(e.Kind))
	}
	assert.Contains(t, out, "inner-radius")
	assert.Contains(t, out, "(not supported)")
}

func TestSectionCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "beams.yaml")
	require.NoError(t, os.WriteFile(in, []byte(`sections:
  - name: Girder
    kind: box
    dims: [12, 12, 6, 6]
  - name: Broken
    kind: rect
    dims: [1/0, 2]
`), 0644))
	resultPath := filepath.Join(dir, "out", "results.json")

	out, err := execute(t, "section", "-f", in, "-w", resultPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 sections failed")
	assert.Contains(t, out, "[1] Girder (box)")
	assert.Contains(t, out, "1620")
	assert.Contains(t, out, "parse error")

	var written section.ResultFile
	require.NoError(t, codec.DecodeFile(resultPath, &written))
	require.Len(t, written.Results, 2)
	assert.Equal(t, "1620", written.Results[0].MomentOfInertia)
	assert.NotEmpty(t, written.Results[1].Error)
}

func TestSectionMissingFile(t *testing.T) {
	_, err := execute(t, "section", "-f", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestVerifyBuiltIn(t *testing.T) {
	out, err := execute(t, "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "All 11 fixtures passed.")
	assert.Contains(t, out, "HollowCircleBeam(4, 2)")
}

func TestVerifyFailingFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`fixtures:
  - kind: RectangleBeam
    dims: [10, 12]
    area: 120
    centroid_x: 5
    centroid_y: 6
    moment: 1441
`), 0644))

	out, err := execute(t, "verify", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 fixtures failed")
	assert.Contains(t, out, "moment: got 1440, want 1441")
}

func TestVersionAndBanner(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "beamprops v")

	out, err = execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Exact Beam Cross-Section Properties")
}
