package isochrone

// Simplify applies Visvalingam-Whyatt area-based simplification to ring,
// iteratively removing the vertex whose triangle (formed with its two
// neighbors) has the smallest effective area, until every remaining
// interior vertex's triangle area is at or above the tolerance threshold.
// The first and last vertex (the shared closing point) are never removed,
// preserving topology.
func Simplify(ring Ring, toleranceDegrees float64) Ring {
	if len(ring) <= MinRingSize {
		return ring
	}

	minArea := toleranceDegrees * toleranceDegrees / 2

	pts := make(Ring, len(ring)-1) // drop the duplicated closing point
	copy(pts, ring[:len(ring)-1])

	for len(pts) > 3 {
		minIdx := -1
		minTriArea := -1.0

		for i := 1; i < len(pts)-1; i++ {
			area := triangleArea(pts[i-1], pts[i], pts[i+1])
			if minTriArea < 0 || area < minTriArea {
				minTriArea = area
				minIdx = i
			}
		}

		if minIdx < 0 || minTriArea >= minArea {
			break
		}

		pts = append(pts[:minIdx], pts[minIdx+1:]...)
	}

	out := make(Ring, len(pts)+1)
	copy(out, pts)
	out[len(pts)] = pts[0]

	return out
}

// triangleArea returns the unsigned area of the triangle formed by three
// points via the shoelace formula.
func triangleArea(a, b, c Point) float64 {
	area := (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
	if area < 0 {
		area = -area
	}

	return area / 2
}
