package isochrone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) Ring {
	return Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
}

func TestRingContainsPointSimpleSquare(t *testing.T) {
	r := square(0, 0, 10, 10)

	assert.True(t, ringContainsPoint(r, Point{5, 5}))
	assert.False(t, ringContainsPoint(r, Point{15, 15}))
}

func TestClassifyRingsAssignsNestedOppositeSignRingAsHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := Ring{{3, 3}, {3, 7}, {7, 7}, {7, 3}, {3, 3}} // wound oppositely to outer

	polys, warnings := classifyRings([]Ring{outer, inner})
	require.Len(t, polys, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, outer, polys[0].Shell)
	require.Len(t, polys[0].Holes, 1)
	assert.Equal(t, inner, polys[0].Holes[0])
}

func TestClassifyRingsWarnsOnUnassignedHole(t *testing.T) {
	a := square(0, 0, 10, 10)
	// Wound oppositely to a (same convention as the nested-hole case above)
	// but placed entirely outside a: a hole candidate with no containing
	// shell.
	orphan := Ring{{100, 100}, {100, 104}, {104, 104}, {104, 100}, {100, 100}}

	polys, warnings := classifyRings([]Ring{a, orphan})
	require.Len(t, polys, 1)
	assert.NotEmpty(t, warnings)
}

func TestClassifyRingsTwoDisjointShellsSameSign(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(100, 100, 110, 110)

	polys, warnings := classifyRings([]Ring{a, b})
	assert.Len(t, polys, 2)
	assert.Empty(t, warnings)
}
