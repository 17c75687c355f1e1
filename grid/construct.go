package grid

import "github.com/transitaccess/accesscore/mercator"

// Point is a single point-source opportunity observation: amount
// opportunities located at (lat, lon).
type Point struct {
	Lat, Lon float64
	Amount   float64
}

// Polygon is a single polygon-source opportunity observation: amount
// opportunities distributed pycnophylactically (area-weighted) over Ring.
type Polygon struct {
	Ring  mercator.Ring
	Value float64
}

// ExtentsFromBounds computes the integer Extents covering the WGS84
// rectangle (north, east, south, west) at the given zoom, via the same
// pixel-floor arithmetic as package mercator.
func ExtentsFromBounds(zoom int, north, east, south, west float64) Extents {
	x0 := mercator.LonToPixelFloor(west, zoom)
	x1 := mercator.LonToPixelFloor(east, zoom)
	y0 := mercator.LatToPixelFloor(north, zoom) // north has the smaller pixel row
	y1 := mercator.LatToPixelFloor(south, zoom)

	width := x1 - x0 + 1
	height := y1 - y0 + 1
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return Extents{Zoom: zoom, West: x0, North: y0, Width: width, Height: height}
}

// FromPoints builds a Grid over extents from a slice of point observations.
func FromPoints(extents Extents, points []Point, opts ...Option) *Grid {
	b := NewBuilder(extents, opts...)
	for _, p := range points {
		b.IncrementPoint(p.Lat, p.Lon, p.Amount)
	}

	return b.Build()
}

// FromPolygons builds a Grid over extents from a slice of polygon
// observations, rasterized pycnophylactically. Returns the first
// InvalidGeometry error encountered, if any, alongside the grid built from
// the polygons processed before the failure.
func FromPolygons(extents Extents, polys []Polygon, opts ...Option) (*Grid, error) {
	b := NewBuilder(extents, opts...)
	for _, p := range polys {
		if err := b.RasterizePolygon(p.Ring, p.Value); err != nil {
			return b.Build(), err
		}
	}

	return b.Build(), nil
}
