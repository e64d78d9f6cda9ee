package archive2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBuildNumberLegacyScaling(t *testing.T) {
	// Builds before 21.0 are encoded scaled by 10 (e.g. 190 -> 19.00).
	assert.InDelta(t, 19.0, float32(DecodeBuildNumber(190)), 0.001)
	assert.InDelta(t, 11.1, float32(DecodeBuildNumber(111)), 0.001)
}

func TestDecodeBuildNumberModernScaling(t *testing.T) {
	// Builds from 21.0 onward are encoded scaled by 100.
	assert.InDelta(t, 21.0, float32(DecodeBuildNumber(2100)), 0.001)
	assert.InDelta(t, 23.5, float32(DecodeBuildNumber(2350)), 0.001)
}

func TestBuildNumberString(t *testing.T) {
	assert.Equal(t, "19.00", DecodeBuildNumber(190).String())
}

func TestBuildNumberAtLeast(t *testing.T) {
	b := DecodeBuildNumber(2100)
	assert.True(t, b.AtLeast(20.0))
	assert.False(t, b.AtLeast(22.0))
}

func TestBuildContextObserve(t *testing.T) {
	var bc buildContext
	assert.False(t, bc.known)

	bc.observe(DecodeBuildNumber(190))
	assert.True(t, bc.known)
	assert.InDelta(t, 19.0, float32(bc.build), 0.001)
}
