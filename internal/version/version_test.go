package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	old := GitCommit
	t.Cleanup(func() { GitCommit = old })

	GitCommit = "abc1234"
	assert.Equal(t, "beamprops v"+Version+" (commit abc1234, built "+BuildTime+")", String())
}
