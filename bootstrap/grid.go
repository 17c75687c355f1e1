package bootstrap

import (
	"github.com/transitaccess/accesscore/accessgrid"
	"github.com/transitaccess/accesscore/accesserr"
	"github.com/transitaccess/accesscore/grid"
)

// TestGrid runs TestSorted once per origin pixel across two Access Grid
// streams that share extents, producing a grid.Grid whose Opportunities
// hold each pixel's scaled two-tailed p-value. Each pixel's NIterations
// values are read in place — index 0 is the point estimate, the rest are
// bootstrap replicates — matching Test/TestSorted's [0]+[1:] convention.
func TestGrid(a, b *accessgrid.Grid) (*grid.Grid, error) {
	if a.Extents != b.Extents {
		return nil, accesserr.New(accesserr.BadConfig, "bootstrap.TestGrid", errMismatchedExtents)
	}
	if a.NIterations != b.NIterations {
		return nil, accesserr.New(accesserr.BadConfig, "bootstrap.TestGrid", errMismatchedIterations)
	}

	width, height, n := a.Extents.Width, a.Extents.Height, a.NIterations
	scores := make([]float64, width*height)

	rowA := make([]int32, n)
	rowB := make([]int32, n)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base := (y*width + x) * n
			copy(rowA, a.Values[base:base+n])
			copy(rowB, b.Values[base:base+n])

			scores[a.Extents.Index(x, y)] = float64(TestSorted(rowA, rowB))
		}
	}

	return &grid.Grid{Extents: a.Extents, Opportunities: scores}, nil
}
