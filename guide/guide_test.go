package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	main, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, main, "# ms")

	named, err := Get("guide")
	require.NoError(t, err)
	assert.Equal(t, main, named)

	units, err := Get("units")
	require.NoError(t, err)
	assert.Contains(t, units, "31,557,600,000")

	_, err = Get("missing")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.Equal(t, []string{"format", "units"}, names)
}
