package reducer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentileIndexBoundaries(t *testing.T) {
	// p=0 must land on index 0, p=100 must land on the max index, for any N.
	assert.Equal(t, 0, percentileIndex(0, 10))
	assert.Equal(t, 9, percentileIndex(100, 10))
	assert.Equal(t, 0, percentileIndex(100, 1))
}

func TestPercentileReducerReplicatesSingleIterationAcrossPercentiles(t *testing.T) {
	r, err := NewPercentileReducer([]int{10, 50, 90}, 1)
	require.NoError(t, err)

	got := r.Reduce([]int{300})
	assert.Equal(t, []int{5, 5, 5}, got)
}

func TestPercentileReducerSortsAndFloors(t *testing.T) {
	r, err := NewPercentileReducer([]int{0, 50, 100}, 4)
	require.NoError(t, err)

	got := r.Reduce([]int{600, 0, 179, 121})
	// sorted: [0, 121, 179, 600]; idx(0,4)=0, idx(50,4)=round(1.5)=2, idx(100,4)=3
	assert.Equal(t, []int{0, 2, 10}, got)
}

func TestPercentileReducerUnreachedPropagates(t *testing.T) {
	r, err := NewPercentileReducer([]int{50, 90}, 3)
	require.NoError(t, err)

	got := r.Reduce([]int{0, Unreached, Unreached})
	// sorted: [0, Unreached, Unreached]; idx(50,3)=1, idx(90,3)=round(1.8)=2
	assert.Equal(t, []int{Unreached, Unreached}, got)
}

func TestNewPercentileReducerRejectsBadConfig(t *testing.T) {
	_, err := NewPercentileReducer(nil, 4)
	require.Error(t, err)

	_, err = NewPercentileReducer([]int{50}, 0)
	require.Error(t, err)

	_, err = NewPercentileReducer([]int{150}, 4)
	require.Error(t, err)
}
