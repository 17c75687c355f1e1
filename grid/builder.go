package grid

import (
	"github.com/transitaccess/accesscore/mercator"
)

// OutOfBoundsHook is invoked by Builder.IncrementPoint when a point falls
// outside the builder's extents, for callers that want visibility into
// dropped points instead of silent loss.
type OutOfBoundsHook func(lat, lon float64)

// Option configures a Builder following the functional-options pattern:
// each Option sets a field on the Builder being constructed, and later
// options override earlier ones.
type Option func(*Builder)

// WithOutOfBoundsHook installs fn to be called for every point passed to
// IncrementPoint that falls outside the builder's extents.
func WithOutOfBoundsHook(fn OutOfBoundsHook) Option {
	return func(b *Builder) {
		b.oobHook = fn
	}
}

// Builder assembles a Grid's opportunity density array before it is frozen
// into an immutable Grid via Build. Only the Builder's methods may mutate
// cell values; the resulting Grid is read-only forever after.
type Builder struct {
	extents Extents
	cells   []float64
	oobHook OutOfBoundsHook
}

// NewBuilder returns a Builder over a zeroed cells array sized to extents.
// Panics if extents fails Validate — this is a programmer error (bad
// configuration caught at the earliest possible point), never a
// data-dependent runtime condition.
func NewBuilder(extents Extents, opts ...Option) *Builder {
	if err := extents.Validate(); err != nil {
		panic(err)
	}

	b := &Builder{
		extents: extents,
		cells:   make([]float64, extents.Count()),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// IncrementPoint adds amount (which may be fractional) to the cell
// containing (lat, lon). Points outside the builder's extents are dropped;
// if an OutOfBoundsHook was installed via WithOutOfBoundsHook, it is called
// with the dropped point's coordinates instead.
func (b *Builder) IncrementPoint(lat, lon, amount float64) {
	x := mercator.LonToPixelFloor(lon, b.extents.Zoom) - b.extents.West
	y := mercator.LatToPixelFloor(lat, b.extents.Zoom) - b.extents.North

	if !b.extents.InBounds(x, y) {
		if b.oobHook != nil {
			b.oobHook(lat, lon)
		}

		return
	}

	b.cells[b.extents.Index(x, y)] += amount
}

// RasterizePolygon accumulates w*value into every cell whose pixel
// rectangle intersects ring, where w = area(cell ∩ ring) / area(ring)
// (pycnophylactic area weighting). Returns an InvalidGeometry error if
// ring's planar area is <= 1e-12.
func (b *Builder) RasterizePolygon(ring mercator.Ring, value float64) error {
	weights, err := b.PixelWeights(ring)
	if err != nil {
		return err
	}
	for cell, w := range weights {
		b.cells[b.extents.Index(cell[0], cell[1])] += w * value
	}

	return nil
}

// PixelWeights returns, for every grid cell whose pixel rectangle
// intersects ring, the fraction of ring's area falling in that cell. The
// map is retained separately from RasterizePolygon so a caller can
// rasterize multiple attributes of the same feature without recomputing
// the geometry intersection each time.
func (b *Builder) PixelWeights(ring mercator.Ring) (map[[2]int]float64, error) {
	area := polygonArea(ring)
	if area <= 1e-12 {
		return nil, newGeometryErr("grid.PixelWeights", errDegenerateArea)
	}

	minLon, minLat, maxLon, maxLat := envelope(ring)
	zoom := b.extents.Zoom

	xLo := mercator.LonToPixelFloor(minLon, zoom) - b.extents.West
	xHi := mercator.LonToPixelFloor(maxLon, zoom) - b.extents.West
	yLo := mercator.LatToPixelFloor(maxLat, zoom) - b.extents.North // larger lat -> smaller y (north)
	yHi := mercator.LatToPixelFloor(minLat, zoom) - b.extents.North

	if xLo < 0 {
		xLo = 0
	}
	if yLo < 0 {
		yLo = 0
	}
	if xHi > b.extents.Width-1 {
		xHi = b.extents.Width - 1
	}
	if yHi > b.extents.Height-1 {
		yHi = b.extents.Height - 1
	}

	weights := make(map[[2]int]float64)
	for y := yLo; y <= yHi; y++ {
		for x := xLo; x <= xHi; x++ {
			cellRing := mercator.PixelGeometry(x+b.extents.West, y+b.extents.North, zoom)
			clipped := clipPolygon(ring, cellRing)
			if len(clipped) < 3 {
				continue
			}
			clipped = append(clipped, clipped[0])
			intersection := polygonArea(clipped)
			if intersection <= 0 {
				continue
			}
			weights[[2]int{x, y}] = intersection / area
		}
	}

	return weights, nil
}

// Build freezes the builder's current cell values into a new, independent
// Grid. The builder remains usable afterward, but further mutation does not
// affect previously built Grids (each Build deep-copies the backing array).
func (b *Builder) Build() *Grid {
	cells := make([]float64, len(b.cells))
	copy(cells, b.cells)

	return &Grid{Extents: b.extents, Opportunities: cells}
}
