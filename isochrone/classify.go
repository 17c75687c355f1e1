package isochrone

import (
	"math"
	"sort"

	"github.com/transitaccess/accesscore/grid"
)

// classifyRings partitions rings into shells and assigns holes to their
// containing shell. Shell-vs-hole is determined by SignedArea's sign:
// the largest ring by |area| is always a shell (nothing can contain it),
// and any ring sharing its sign is an independent shell too; an
// enclosed ring is always wound opposite to the shell enclosing it — a
// property marching squares guarantees for any single consistent
// direction convention, regardless of which absolute winding that
// convention happens to produce — so a ring with the opposite sign is a
// hole candidate, assigned to the smallest shell that contains it.
// Shells are kept sorted largest-first and each hole is tested against them
// from the smallest up, so the first shell found to contain it is the
// smallest containing one. Unassigned holes are dropped with a Warning.
func classifyRings(rings []Ring) ([]Polygon, []Warning) {
	if len(rings) == 0 {
		return nil, nil
	}

	type scored struct {
		ring Ring
		area float64 // signed
	}

	scoredRings := make([]scored, len(rings))
	for i, r := range rings {
		scoredRings[i] = scored{ring: r, area: grid.SignedArea(toMercatorRing(r))}
	}

	sort.Slice(scoredRings, func(i, j int) bool {
		return math.Abs(scoredRings[i].area) > math.Abs(scoredRings[j].area)
	})

	shellSign := sign(scoredRings[0].area)

	var shells []Polygon
	var holes []Ring
	for _, sr := range scoredRings {
		if sign(sr.area) == shellSign {
			shells = append(shells, Polygon{Shell: sr.ring})
		} else {
			holes = append(holes, sr.ring)
		}
	}

	var warnings []Warning
	for _, hole := range holes {
		assigned := false
		for i := len(shells) - 1; i >= 0; i-- {
			if ringContainsPoint(shells[i].Shell, hole[0]) {
				shells[i].Holes = append(shells[i].Holes, hole)
				assigned = true
				break
			}
		}
		if !assigned {
			warnings = append(warnings, Warning("hole ring not contained by any shell, dropped"))
		}
	}

	return shells, warnings
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

// ringContainsPoint reports whether p lies inside ring via the standard
// ray-casting even-odd rule.
func ringContainsPoint(ring Ring, p Point) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		intersects := (yi > p[1]) != (yj > p[1]) &&
			p[0] < (xj-xi)*(p[1]-yi)/(yj-yi)+xi
		if intersects {
			inside = !inside
		}
	}

	return inside
}
