package isochrone

import "github.com/transitaccess/accesscore/mercator"

// toMercatorRing copies r into a mercator.Ring so grid.SignedArea (which
// operates on the shared Mercator ring representation) can be reused here
// instead of re-implementing the shoelace formula.
func toMercatorRing(r Ring) mercator.Ring {
	out := make(mercator.Ring, len(r))
	for i, p := range r {
		out[i] = [2]float64{p[0], p[1]}
	}
	return out
}
