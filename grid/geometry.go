package grid

import "github.com/transitaccess/accesscore/mercator"

// polygonArea returns the unsigned planar area of ring via the shoelace
// formula. ring is treated as WGS84 degrees; this is tolerable because the
// per-row scale distortion cancels at the latitudes a single grid cell
// spans.
func polygonArea(ring mercator.Ring) float64 {
	if len(ring) < 4 { // closed ring needs >= 3 distinct vertices + closing point
		return 0
	}

	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		x0, y0 := ring[i][0], ring[i][1]
		x1, y1 := ring[i+1][0], ring[i+1][1]
		sum += x0*y1 - x1*y0
	}

	area := sum / 2.0
	if area < 0 {
		area = -area
	}

	return area
}

// SignedArea returns the signed planar area of ring, half the sum of
// (x1-x0)*(y1+y0) over its edges: positive for clockwise winding with x
// (lon) to the right and y (lat) up, negative for counter-clockwise. Used by
// isochrone shell/hole classification.
func SignedArea(ring mercator.Ring) float64 {
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		x0, y0 := ring[i][0], ring[i][1]
		x1, y1 := ring[i+1][0], ring[i+1][1]
		sum += (x1 - x0) * (y1 + y0)
	}

	return sum / 2
}

// envelope returns the axis-aligned bounding box (minLon, minLat, maxLon,
// maxLat) of ring.
func envelope(ring mercator.Ring) (minLon, minLat, maxLon, maxLat float64) {
	minLon, minLat = ring[0][0], ring[0][1]
	maxLon, maxLat = ring[0][0], ring[0][1]
	for _, v := range ring[1:] {
		if v[0] < minLon {
			minLon = v[0]
		}
		if v[0] > maxLon {
			maxLon = v[0]
		}
		if v[1] < minLat {
			minLat = v[1]
		}
		if v[1] > maxLat {
			maxLat = v[1]
		}
	}

	return minLon, minLat, maxLon, maxLat
}

// clipPolygon clips subject (possibly concave, any winding) against clip
// (convex, e.g. a pixel rectangle from mercator.PixelGeometry) using the
// Sutherland-Hodgman algorithm, returning the resulting closed polygon
// (unclosed internally during computation; the caller only needs its area,
// so the returned ring is not re-closed).
func clipPolygon(subject, clip mercator.Ring) mercator.Ring {
	output := make(mercator.Ring, len(subject)-1)
	copy(output, subject[:len(subject)-1])

	for i := 0; i < len(clip)-1; i++ {
		if len(output) == 0 {
			return output
		}
		edgeA := clip[i]
		edgeB := clip[i+1]
		output = clipEdge(output, edgeA, edgeB)
	}

	return output
}

// clipEdge clips polygon against the half-plane to the left of directed
// edge a->b (inside = left side, consistent with a CCW-or-CW convex clip
// ring as long as the same orientation is used for every edge).
func clipEdge(polygon mercator.Ring, a, b [2]float64) mercator.Ring {
	if len(polygon) == 0 {
		return polygon
	}

	var output mercator.Ring
	prev := polygon[len(polygon)-1]
	prevInside := isInside(prev, a, b)

	for _, curr := range polygon {
		currInside := isInside(curr, a, b)
		switch {
		case currInside && prevInside:
			output = append(output, curr)
		case currInside && !prevInside:
			output = append(output, intersect(prev, curr, a, b), curr)
		case !currInside && prevInside:
			output = append(output, intersect(prev, curr, a, b))
		}
		prev = curr
		prevInside = currInside
	}

	return output
}

// isInside reports whether p is on the interior side of directed edge a->b.
// mercator.PixelGeometry rings wind clockwise in (lon,lat) space, so the
// interior lies where the cross product of (b-a) and (p-a) is <= 0.
func isInside(p, a, b [2]float64) bool {
	cross := (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])

	return cross <= 0
}

// intersect returns the intersection point of segment p1->p2 with the
// infinite line through a->b.
func intersect(p1, p2, a, b [2]float64) [2]float64 {
	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := a[0], a[1]
	x4, y4 := b[0], b[1]

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return p2
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom

	return [2]float64{x1 + t*(x2-x1), y1 + t*(y2-y1)}
}
