package isochrone

// edgeKind distinguishes the two edge orientations a cell boundary can have.
type edgeKind int

const (
	horizontal edgeKind = iota
	vertical
)

// edgeID canonically identifies one crossing point on the raster's cell
// lattice. A horizontal edge {horizontal, cx, cy} connects corners (cx,cy)
// and (cx+1,cy); a vertical edge {vertical, cx, cy} connects (cx,cy) and
// (cx,cy+1). Two adjacent cells that share a boundary always compute the
// same edgeID for it, so segments stitch together by exact integer key
// rather than by comparing interpolated float coordinates.
type edgeID struct {
	kind   edgeKind
	cx, cy int
}

// cellCase is the 4-bit marching-squares case index for one cell, built
// from which corners are "inside" (time below cutoff), weighted
// TL=8, TR=4, BR=2, BL=1.
func cellCase(tl, tr, br, bl bool) int {
	c := 0
	if tl {
		c |= 8
	}
	if tr {
		c |= 4
	}
	if br {
		c |= 2
	}
	if bl {
		c |= 1
	}

	return c
}

// cellEdges returns cell (x,y)'s four boundary edgeIDs in marching-squares
// N/E/S/W order.
func cellEdges(x, y int) (top, right, bottom, left edgeID) {
	top = edgeID{horizontal, x, y}
	bottom = edgeID{horizontal, x, y + 1}
	left = edgeID{vertical, x, y}
	right = edgeID{vertical, x + 1, y}

	return top, right, bottom, left
}

// caseSegment returns the single directed (from, to) edge crossing for
// case c, given the cell's four edges, and ok=false for the trivial
// (no-contour) and saddle cases — saddles are handled by the caller, which
// fails fast with ErrAmbiguousRing rather than guessing a resolution.
//
// Direction convention: case k's segment and case (15-k)'s segment connect
// the same two edges in reverse, so that when the "inside" side of a
// boundary flips, the directed segment flips with it — this is what keeps
// the assembled rings' winding consistent with which side is inside.
func caseSegment(c int, top, right, bottom, left edgeID) (from, to edgeID, ok bool) {
	switch c {
	case 1:
		return bottom, left, true
	case 2:
		return right, bottom, true
	case 3:
		return right, left, true
	case 4:
		return top, right, true
	case 6:
		return top, bottom, true
	case 7:
		return top, left, true
	case 8:
		return left, top, true
	case 9:
		return bottom, top, true
	case 11:
		return right, top, true
	case 12:
		return left, right, true
	case 13:
		return bottom, right, true
	case 14:
		return left, bottom, true
	default:
		// 0, 15: no contour in this cell. 5, 10: saddle, caller's concern.
		return edgeID{}, edgeID{}, false
	}
}

// isSaddle reports whether case c is one of the two ambiguous diagonal
// cases (5: TR+BL, 10: TL+BR).
func isSaddle(c int) bool {
	return c == 5 || c == 10
}
