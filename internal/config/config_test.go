package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/beamprops/internal/rational"
	"github.com/alexiusacademia/beamprops/internal/shape"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the developer's own beamprops.yaml out of the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestDefaults(t *testing.T) {
	isolate(t)

	v, err := New("")
	require.NoError(t, err)
	out, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, &Output{Format: FormatFraction, Precision: DefaultPrecision}, out)
}

func TestConfigFileAndEnv(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: decimal\nprecision: 2\n"), 0644))

	v, err := New(path)
	require.NoError(t, err)
	out, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, FormatDecimal, out.Format)
	assert.Equal(t, int32(2), out.Precision)

	t.Setenv("BEAMPROPS_PRECISION", "4")
	t.Setenv("BEAMPROPS_VERBOSE", "true")
	v, err = New(path)
	require.NoError(t, err)
	out, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, int32(4), out.Precision)
	assert.True(t, out.Verbose)
}

func TestDefaultFileInWorkingDir(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("beamprops.yaml", []byte("format: decimal\n"), 0644))

	v, err := New("")
	require.NoError(t, err)
	out, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, FormatDecimal, out.Format)
}

func TestDotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("BEAMPROPS_FORMAT=decimal\nBEAMPROPS_PRECISION=2\nOTHER=1\n"), 0644))

	v, err := New("")
	require.NoError(t, err)
	out, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, FormatDecimal, out.Format)
	assert.Equal(t, int32(2), out.Precision)
	_, set := os.LookupEnv("BEAMPROPS_FORMAT")
	assert.False(t, set, "dotenv must not leak into the environment")

	t.Setenv("BEAMPROPS_PRECISION", "5")
	v, err = New("")
	require.NoError(t, err)
	out, err = Load(v)
	require.NoError(t, err)
	assert.Equal(t, int32(5), out.Precision)
}

func TestMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("BEAMPROPS_FORMAT", "decimal")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "fraction", "")
	flags.Int32("precision", DefaultPrecision, "")
	require.NoError(t, flags.Parse([]string{"--format=fraction", "--precision=3"}))

	v, err := New("")
	require.NoError(t, err)
	require.NoError(t, BindFlags(v, flags))

	out, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, FormatFraction, out.Format)
	assert.Equal(t, int32(3), out.Precision)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Output{Format: "hex", Precision: 2}).Validate())
	assert.Error(t, (&Output{Format: FormatDecimal, Precision: -1}).Validate())
	assert.NoError(t, (&Output{Format: FormatDecimal}).Validate())

	isolate(t)
	t.Setenv("BEAMPROPS_FORMAT", "roman")
	v, err := New("")
	require.NoError(t, err)
	_, err = Load(v)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	q := shape.Scaled(rational.New(25, 4))

	frac := &Output{Format: FormatFraction, Precision: 2}
	assert.Equal(t, "25/4π", frac.Render(q))
	assert.Equal(t, "1/3", frac.RenderRational(rational.New(1, 3)))

	dec := &Output{Format: FormatDecimal, Precision: 3}
	assert.Equal(t, "6.25π", dec.Render(q))
	assert.Equal(t, "0.333", dec.RenderRational(rational.New(1, 3)))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, true).Debug("shown", "kind", "IBeam")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "kind=IBeam")
}
