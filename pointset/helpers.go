package pointset

import (
	"github.com/transitaccess/accesscore/grid"
	"github.com/transitaccess/accesscore/mercator"
)

// latOfRow returns the latitude of the center of grid row y.
func latOfRow(g *grid.Grid, y int) float64 {
	return mercator.PixelToCenterLat(float64(g.North+y), g.Zoom)
}

// lonOfCol returns the longitude of the center of grid column x.
func lonOfCol(g *grid.Grid, x int) float64 {
	return mercator.PixelToCenterLon(float64(g.West+x), g.Zoom)
}
