package verify

import (
	"fmt"

	"github.com/alexiusacademia/beamprops/internal/codec"
)

// FixtureFile is the on-disk layout of a fixture table
type FixtureFile struct {
	Fixtures []Fixture `json:"fixtures" yaml:"fixtures"`
}

// LoadFixtures reads a fixture table from a .yaml, .yml or .json file
func LoadFixtures(path string) ([]Fixture, error) {
	var f FixtureFile
	if err := codec.DecodeFile(path, &f); err != nil {
		return nil, err
	}
	if len(f.Fixtures) == 0 {
		return nil, fmt.Errorf("%s: no fixtures", path)
	}
	for i, fx := range f.Fixtures {
		if fx.Kind == "" {
			return nil, fmt.Errorf("%s: fixture %d has no kind", path, i+1)
		}
	}
	return f.Fixtures, nil
}
