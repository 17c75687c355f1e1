package grid

import (
	"math"

	"github.com/transitaccess/accesscore/mercator"
)

// TransformWrapper is a virtual pointset that re-indexes a source Grid
// through a target Extents window, upsampling with exact power-of-two
// conservation of opportunities. It implements the same
// capability-set methods package pointset's PointSet interface expects
// (Count/Lat/Lon/Opportunities/ID/Extents), without importing package
// pointset, so that pointset can depend on grid without a cycle; package
// pointset asserts at compile time that TransformWrapper satisfies its
// interface.
//
// TransformWrapper derives a read-only view over an existing Grid without
// copying its backing array: it never allocates more than O(1) per call.
type TransformWrapper struct {
	source *Grid
	target Extents
	dz     int     // target.Zoom - source.Zoom, in [0,3]
	scale  float64 // 1 / 4^dz
}

// NewTransformWrapper constructs a TransformWrapper re-indexing source
// through target. Returns a BadConfig accesserr if target.Zoom - source.Zoom
// is not in [0,3] (only upsampling is supported).
func NewTransformWrapper(source *Grid, target Extents) (*TransformWrapper, error) {
	if err := target.Validate(); err != nil {
		return nil, newBadConfigErr("grid.NewTransformWrapper", err)
	}

	dz := target.Zoom - source.Zoom
	if dz < 0 || dz > 3 {
		return nil, newBadConfigErr("grid.NewTransformWrapper",
			errOnlyUpsamplingSupported)
	}

	return &TransformWrapper{
		source: source,
		target: target,
		dz:     dz,
		scale:  1.0 / math.Pow(4, float64(dz)),
	}, nil
}

// Count is the number of cells in the target window.
func (w *TransformWrapper) Count() int { return w.target.Count() }

// Lat returns the latitude of the center of target cell i.
func (w *TransformWrapper) Lat(i int) float64 {
	y := i / w.target.Width
	return mercator.PixelToCenterLat(float64(w.target.North+y), w.target.Zoom)
}

// Lon returns the longitude of the center of target cell i.
func (w *TransformWrapper) Lon(i int) float64 {
	x := i % w.target.Width
	return mercator.PixelToCenterLon(float64(w.target.West+x), w.target.Zoom)
}

// ID returns (_, false): TransformWrapper cells have no external identifier.
func (w *TransformWrapper) ID(int) (string, bool) { return "", false }

// Extents returns the target window this wrapper presents.
func (w *TransformWrapper) Extents() (Extents, bool) { return w.target, true }

// Opportunities maps target index ti to a source cell via integer pixel
// arithmetic at the fixed
// dz = target.Zoom - source.Zoom, scaling the source opportunity density by
// 1/4^dz (an exact power-of-two fraction in binary floating point, so total
// mass is conserved exactly).
func (w *TransformWrapper) Opportunities(ti int) float64 {
	tx := ti % w.target.Width
	ty := ti / w.target.Width

	sx := ((tx + w.target.West) - (w.source.West << w.dz)) >> w.dz
	sy := ((ty + w.target.North) - (w.source.North << w.dz)) >> w.dz

	if !w.source.InBounds(sx, sy) {
		return 0
	}

	return w.source.Opportunity(sx, sy) * w.scale
}
