package codec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name string `json:"name" yaml:"name"`
	Dims []Text `json:"dims" yaml:"dims"`
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path   string
		format string
	}{
		{"a.yaml", "yaml"},
		{"dir/b.YML", "yaml"},
		{"c.json", "json"},
	}
	for _, tt := range tests {
		c, err := ForPath(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.format, c.Format())
	}

	_, err := ForPath("beams.toml")
	assert.Error(t, err)
}

func TestTextAcceptsNumbersAndStrings(t *testing.T) {
	var d doc
	err := NewJSONCodec().Decode(strings.NewReader(`{"name": "t", "dims": [12, "7/2", 2.5, "-1"]}`), &d)
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "7/2", "2.5", "-1"}, Strings(d.Dims))

	err = NewJSONCodec().Decode(strings.NewReader(`{"dims": [true]}`), &d)
	assert.Error(t, err)

	var y doc
	err = NewYAMLCodec().Decode(strings.NewReader("name: t\ndims: [12, 7/2, 2.5]\n"), &y)
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "7/2", "2.5"}, Strings(y.Dims))
}

func TestUnknownFieldsRejected(t *testing.T) {
	var d doc
	assert.Error(t, NewJSONCodec().Decode(strings.NewReader(`{"nmae": "x"}`), &d))
	assert.Error(t, NewYAMLCodec().Decode(strings.NewReader("nmae: x\n"), &d))
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := doc{Name: "box", Dims: []Text{"12", "12", "6", "6"}}

	for _, name := range []string{"out.yaml", "nested/out.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, EncodeFile(path, in))

		_, err := os.Stat(path)
		require.NoError(t, err)

		var out doc
		require.NoError(t, DecodeFile(path, &out))
		assert.Equal(t, in, out, name)
	}

	var out doc
	assert.Error(t, DecodeFile(filepath.Join(dir, "missing.yaml"), &out))
}
