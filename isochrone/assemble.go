package isochrone

import (
	"fmt"

	"github.com/transitaccess/accesscore/grid"
)

// assembleRings runs marching squares over the full raster for cutoffSeconds
// and traces the resulting directed edge graph into closed Rings. It
// returns ErrAmbiguousRing immediately on the first saddle cell encountered,
// per the fail-fast resolution recorded for this contract.
func assembleRings(times []int, extents grid.Extents, cutoffSeconds float64) ([]Ring, []Warning, error) {
	next := make(map[edgeID]edgeID)

	for y := -1; y < extents.Height; y++ {
		for x := -1; x < extents.Width; x++ {
			tl := sampleInside(x, y, times, extents, cutoffSeconds)
			tr := sampleInside(x+1, y, times, extents, cutoffSeconds)
			br := sampleInside(x+1, y+1, times, extents, cutoffSeconds)
			bl := sampleInside(x, y+1, times, extents, cutoffSeconds)

			c := cellCase(tl, tr, br, bl)
			if isSaddle(c) {
				return nil, nil, newAmbiguousRing("isochrone.assembleRings")
			}

			top, right, bottom, left := cellEdges(x, y)
			from, to, ok := caseSegment(c, top, right, bottom, left)
			if !ok {
				continue
			}

			if _, dup := next[from]; dup {
				return nil, nil, newAmbiguousRing("isochrone.assembleRings")
			}
			next[from] = to
		}
	}

	return traceRings(next, times, extents, cutoffSeconds)
}

// traceRings walks next, a permutation of edgeIDs forming disjoint cycles,
// into Rings. Rings over MaxRingSize are truncated and a Warning is
// recorded; rings under MinRingSize are discarded.
func traceRings(next map[edgeID]edgeID, times []int, extents grid.Extents, cutoffSeconds float64) ([]Ring, []Warning, error) {
	visited := make(map[edgeID]bool, len(next))
	var rings []Ring
	var warnings []Warning

	for start := range next {
		if visited[start] {
			continue
		}

		var verts []Point
		truncated := false

		cur := start
		for {
			if visited[cur] {
				if cur != start {
					return nil, nil, newAmbiguousRing("isochrone.traceRings")
				}
				break
			}
			visited[cur] = true

			if len(verts) >= MaxRingSize {
				truncated = true
				break
			}
			verts = append(verts, pointAt(cur, times, extents, cutoffSeconds))

			nxt, ok := next[cur]
			if !ok {
				return nil, nil, newAmbiguousRing("isochrone.traceRings")
			}
			cur = nxt
		}

		if truncated {
			warnings = append(warnings, Warning(fmt.Sprintf("ring truncated at %d vertices", MaxRingSize)))
		}

		if len(verts) < MinRingSize {
			continue
		}

		ring := make(Ring, len(verts)+1)
		copy(ring, verts)
		ring[len(verts)] = verts[0]
		rings = append(rings, ring)
	}

	return rings, warnings, nil
}
