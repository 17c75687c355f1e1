package isochrone

import "github.com/transitaccess/accesscore/grid"

// Extract runs marching squares over times (a row-major travel-time raster
// covering extents) at cutoffSeconds, classifies the resulting rings into
// shells and holes, and simplifies each ring with the default tolerance.
// It returns ErrAmbiguousRing (wrapped as InvalidGeometry) if a saddle cell
// or an unresolvable self-intersection is encountered.
func Extract(cutoffSeconds int, times []int, extents grid.Extents) (MultiPolygon, []Warning, error) {
	rings, ringWarnings, err := assembleRings(times, extents, float64(cutoffSeconds))
	if err != nil {
		return nil, nil, err
	}

	polygons, classifyWarnings := classifyRings(rings)

	mp := make(MultiPolygon, len(polygons))
	for i, poly := range polygons {
		mp[i] = Polygon{
			Shell: Simplify(poly.Shell, SimplifyToleranceDegrees),
			Holes: make([]Ring, len(poly.Holes)),
		}
		for j, h := range poly.Holes {
			mp[i].Holes[j] = Simplify(h, SimplifyToleranceDegrees)
		}
	}

	warnings := append(ringWarnings, classifyWarnings...)

	return mp, warnings, nil
}
