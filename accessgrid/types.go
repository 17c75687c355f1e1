// Package accessgrid implements the Access Grid binary format: a persisted,
// per-origin-pixel time series of accessibility values used for regional
// bootstrapping (bootstrap.TestGrid reads two of these sharing extents).
//
// A Grid is the in-memory counterpart of grid.Grid but carries an extra
// axis — NIterations per-iteration accessibility values per pixel, which
// bootstrap.TestGrid reads as a point estimate at index 0 followed by
// bootstrap replicates — rather than a single scalar per pixel.
package accessgrid

import (
	"fmt"

	"github.com/transitaccess/accesscore/grid"
)

// Grid holds one regional accessibility time series: extents shared with
// the opportunity grid's pixel-pyramid window, NIterations snapshots per
// pixel, and a flat row-major (y,x,iteration) Values slice.
type Grid struct {
	Extents     grid.Extents
	NIterations int
	Values      []int32
}

// New allocates a zero-valued Grid for extents and nIterations snapshots
// per pixel.
func New(extents grid.Extents, nIterations int) (*Grid, error) {
	if err := extents.Validate(); err != nil {
		return nil, newBadConfigErr("accessgrid.New", err)
	}
	if nIterations <= 0 {
		return nil, newBadConfigErr("accessgrid.New", errNonPositiveIterations)
	}
	return &Grid{
		Extents:     extents,
		NIterations: nIterations,
		Values:      make([]int32, extents.Width*extents.Height*nIterations),
	}, nil
}

// index returns the flat offset of pixel (x,y)'s iter-th snapshot.
func (g *Grid) index(x, y, iter int) int {
	return (y*g.Extents.Width+x)*g.NIterations + iter
}

// At returns the iter-th snapshot value at pixel (x,y).
func (g *Grid) At(x, y, iter int) int32 {
	return g.Values[g.index(x, y, iter)]
}

// Set stores v as the iter-th snapshot value at pixel (x,y).
func (g *Grid) Set(x, y, iter int, v int32) {
	g.Values[g.index(x, y, iter)] = v
}

// String renders a compact summary for debugging and test failure output.
func (g *Grid) String() string {
	return fmt.Sprintf("accessgrid.Grid{%dx%d, zoom=%d, iterations=%d}",
		g.Extents.Width, g.Extents.Height, g.Extents.Zoom, g.NIterations)
}
