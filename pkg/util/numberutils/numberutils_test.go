package numberutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIntWithDefault(t *testing.T) {
	assert.Equal(t, 6379, ToIntWithDefault("6379", 1))
	assert.Equal(t, 1, ToIntWithDefault("redis", 1))
}

func TestFloatHelpers(t *testing.T) {
	assert.True(t, IsFinite(1.5))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))

	assert.Equal(t, 0.0, Clamp(-8.5, 0, 100))
	assert.Equal(t, 100.0, Clamp(140, 0, 100))
	assert.Equal(t, 6.375, Clamp(6.375, 0, 100))

	assert.Equal(t, 2.5, Round(2.45, 1))
	assert.Equal(t, -3.0, Round(-2.5, 0))
}

func TestParseOptionalFloat(t *testing.T) {
	v, err := ParseOptionalFloat(" 22.5229 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 22.5229, *v)

	v, err = ParseOptionalFloat("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ParseOptionalFloat("north")
	assert.Error(t, err)
	_, err = ParseOptionalFloat("NaN")
	assert.Error(t, err)
}
