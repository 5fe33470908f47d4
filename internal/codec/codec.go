// Package codec reads and writes section and fixture files as YAML or JSON,
// chosen by file extension.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Codec decodes and encodes one file format
type Codec interface {
	Decode(r io.Reader, v any) error
	Encode(w io.Writer, v any) error
	Format() string
}

// ForPath picks a codec from the file extension: .yaml/.yml or .json
func ForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec(), nil
	case ".json":
		return NewJSONCodec(), nil
	}
	return nil, fmt.Errorf("unsupported file type %q (want .yaml, .yml or .json)", filepath.Ext(path))
}

// DecodeFile reads path into v using the codec for its extension
func DecodeFile(path string, v any) error {
	c, err := ForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Decode(f, v)
}

// EncodeFile writes v to path using the codec for its extension
func EncodeFile(path string, v any) error {
	c, err := ForPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf, v); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Text is a scalar kept as its source text. In JSON it accepts both numbers
// and strings, so dimensions can be written as 12, "12" or "7/2".
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected number or string, got %s", data)
	}
	*t = Text(n.String())
	return nil
}

// Strings converts a Text slice
func Strings(ts []Text) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}
