package bootstrap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitaccess/accesscore/accessgrid"
	"github.com/transitaccess/accesscore/grid"
)

func TestTestReturnsZeroWhenPointEstimatesEqual(t *testing.T) {
	a := []int32{100, 90, 110, 95}
	b := []int32{100, 85, 120, 99}

	assert.Equal(t, int32(0), Test(a, b))
}

func TestTestClampsToZeroAndOneHundredThousand(t *testing.T) {
	// b strictly dominates a on every replicate: p must clamp to its
	// minimum, so the scaled output saturates at 1e5.
	a := []int32{50, 10, 11, 12}
	b := []int32{100, 200, 201, 202}

	got := Test(a, b)
	assert.Equal(t, int32(100000), got)
}

func TestSortedMatchesNaiveOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		na := 1 + rng.Intn(40)
		nb := 1 + rng.Intn(40)

		a := make([]int32, na+1)
		b := make([]int32, nb+1)
		for i := range a {
			a[i] = int32(rng.Intn(200) - 100)
		}
		for j := range b {
			b[j] = int32(rng.Intn(200) - 100)
		}

		want := Test(a, b)
		got := TestSorted(a, b)
		assert.Equal(t, want, got, "trial %d: na=%d nb=%d", trial, na, nb)
	}
}

func TestSortedMatchesNaiveWithDuplicates(t *testing.T) {
	a := []int32{10, 5, 5, 5, 7, 7}
	b := []int32{20, 5, 7, 7, 7, 9}

	assert.Equal(t, Test(a, b), TestSorted(a, b))
}

func TestCountPairsSortedAgreesWithBruteForce(t *testing.T) {
	sa := []int32{1, 3, 3, 5, 8}
	sb := []int32{2, 3, 3, 6}

	gotPos, gotNeg, gotZero := countPairsSorted(sa, sb)

	var wantPos, wantNeg, wantZero int64
	for _, ai := range sa {
		for _, bj := range sb {
			switch {
			case bj > ai:
				wantPos++
			case bj < ai:
				wantNeg++
			default:
				wantZero++
			}
		}
	}

	assert.Equal(t, wantPos, gotPos)
	assert.Equal(t, wantNeg, gotNeg)
	assert.Equal(t, wantZero, gotZero)
}

func TestTestGridRunsPerPixelAndRejectsMismatch(t *testing.T) {
	extents := grid.Extents{Zoom: 4, West: 0, North: 0, Width: 2, Height: 1}

	// pixel (0,0): identical point estimates -> delta 0 -> score 0.
	// pixel (1,0): b strictly dominates a -> p-value 0 -> score 100000.
	a := &accessgrid.Grid{Extents: extents, NIterations: 3, Values: []int32{
		100, 90, 110, // pixel (0,0)
		50, 10, 11, // pixel (1,0)
	}}
	b := &accessgrid.Grid{Extents: extents, NIterations: 3, Values: []int32{
		100, 85, 120, // pixel (0,0), same point estimate as a
		100, 200, 201, // pixel (1,0), strictly dominates a
	}}

	got, err := TestGrid(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Opportunity(0, 0))
	assert.Equal(t, 100000.0, got.Opportunity(1, 0))

	mismatched := &accessgrid.Grid{
		Extents:     grid.Extents{Zoom: 4, West: 0, North: 0, Width: 3, Height: 1},
		NIterations: 3,
		Values:      make([]int32, 9),
	}
	_, err = TestGrid(a, mismatched)
	require.Error(t, err)
}
