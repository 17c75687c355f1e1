package pointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/transitaccess/accesscore/grid"
)

func TestGriddedBasics(t *testing.T) {
	g := &grid.Grid{
		Extents:       grid.Extents{Zoom: 10, West: 0, North: 0, Width: 2, Height: 2},
		Opportunities: []float64{1, 2, 3, 4},
	}
	ps := NewGridded(g)
	assert.Equal(t, 4, ps.Count())
	assert.Equal(t, 1.0, ps.Opportunities(0))
	assert.Equal(t, 4.0, ps.Opportunities(3))
	_, ok := ps.ID(0)
	assert.False(t, ok)
	ext, ok := ps.Extents()
	assert.True(t, ok)
	assert.Equal(t, g.Extents, ext)
}

func TestFreeformBasics(t *testing.T) {
	ps := &Freeform{
		Lats: []float64{1, 2},
		Lons: []float64{3, 4},
		Opps: []float64{5, 6},
		IDs:  []string{"a"},
	}
	assert.Equal(t, 2, ps.Count())
	id, ok := ps.ID(0)
	assert.True(t, ok)
	assert.Equal(t, "a", id)
	_, ok = ps.ID(1)
	assert.False(t, ok)
	_, ok = ps.Extents()
	assert.False(t, ok)
}

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry()
	ps := &Freeform{Lats: []float64{0}, Lons: []float64{0}, Opps: []float64{1}}
	r.Register(ID("a"), ps)

	got, ok := r.Get(ID("a"))
	assert.True(t, ok)
	assert.Same(t, ps, got)

	_, ok = r.Get(ID("missing"))
	assert.False(t, ok)

	r.Delete(ID("a"))
	_, ok = r.Get(ID("a"))
	assert.False(t, ok)
}
