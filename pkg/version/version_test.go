package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}

func TestFull(t *testing.T) {
	s := Full()

	assert.True(t, strings.HasPrefix(s, "repoasset "))
	assert.Contains(t, s, Version)
	assert.Contains(t, s, Commit)
	assert.Contains(t, s, runtime.Version())
}
