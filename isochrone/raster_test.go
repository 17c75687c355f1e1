package isochrone

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transitaccess/accesscore/grid"
)

func TestSampleValuePadding(t *testing.T) {
	extents := grid.Extents{Zoom: 10, West: 0, North: 0, Width: 2, Height: 2}
	times := []int{10, 20, 30, 40}

	assert.Equal(t, 10.0, sampleValue(0, 0, times, extents))
	assert.True(t, sampleInside(-1, -1, times, extents, 1) == false)
}

func TestSampleInsideRespectsCutoff(t *testing.T) {
	extents := grid.Extents{Zoom: 10, West: 0, North: 0, Width: 2, Height: 2}
	times := []int{10, 20, 30, 40}

	assert.True(t, sampleInside(0, 0, times, extents, 15))
	assert.False(t, sampleInside(1, 1, times, extents, 15))
}

func TestInterpolationParamBoundariesAndMidpoint(t *testing.T) {
	assert.Equal(t, 0.0, interpolationParam(0, 100, 0))
	assert.Equal(t, 1.0, interpolationParam(0, 100, 100))
	assert.Equal(t, 0.5, interpolationParam(0, 100, 50))
	assert.Equal(t, 0.5, interpolationParam(5, 5, 5))
}

func TestInterpolationParamClampsOutOfRangeCutoff(t *testing.T) {
	assert.Equal(t, 0.0, interpolationParam(10, 20, 5))
	assert.Equal(t, 1.0, interpolationParam(10, 20, 25))
}
