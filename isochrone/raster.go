package isochrone

import (
	"math"

	"github.com/transitaccess/accesscore/grid"
	"github.com/transitaccess/accesscore/mercator"
)

// sampleValue returns the travel time, in seconds, at sample (cx,cy) —
// cx,cy are raster cell coordinates, so 0 <= cx < extents.Width and
// 0 <= cy < extents.Height for real samples. Positions outside that range
// are the padding border and read as +Inf, which is how "cells never leave
// the window" is enforced: no contour can cross the padding into nothing.
func sampleValue(cx, cy int, times []int, extents grid.Extents) float64 {
	if cx < 0 || cx >= extents.Width || cy < 0 || cy >= extents.Height {
		return math.Inf(1)
	}

	return float64(times[extents.Index(cx, cy)])
}

// sampleInside reports whether sample (cx,cy) is reached within cutoffSeconds.
func sampleInside(cx, cy int, times []int, extents grid.Extents, cutoffSeconds float64) bool {
	return sampleValue(cx, cy, times, extents) < cutoffSeconds
}

// pointAt returns the (lon,lat) position where the cutoff crosses edge e,
// via linear interpolation between its two sample values.
func pointAt(e edgeID, times []int, extents grid.Extents, cutoffSeconds float64) Point {
	var v0, v1 float64
	var px0, py0, px1, py1 float64

	switch e.kind {
	case horizontal:
		v0 = sampleValue(e.cx, e.cy, times, extents)
		v1 = sampleValue(e.cx+1, e.cy, times, extents)
		px0, py0 = float64(e.cx), float64(e.cy)
		px1, py1 = float64(e.cx+1), float64(e.cy)
	default: // vertical
		v0 = sampleValue(e.cx, e.cy, times, extents)
		v1 = sampleValue(e.cx, e.cy+1, times, extents)
		px0, py0 = float64(e.cx), float64(e.cy)
		px1, py1 = float64(e.cx), float64(e.cy+1)
	}

	t := interpolationParam(v0, v1, cutoffSeconds)
	px := px0 + t*(px1-px0)
	py := py0 + t*(py1-py0)

	worldX := float64(extents.West) + px
	worldY := float64(extents.North) + py

	lon := mercator.PixelToLon(worldX, extents.Zoom)
	lat := mercator.PixelToLat(worldY, extents.Zoom)

	return Point{lon, lat}
}

// interpolationParam returns t in [0,1] such that v0 + t*(v1-v0) == cutoff,
// clamped to [0,1]. Equal values (including both infinite, which can only
// occur in an all-padding cell that never reaches caseSegment) give 0.5; a
// +Inf padding v0 gives 1, the limit of the formula, placing the vertex on
// the finite sample.
func interpolationParam(v0, v1, cutoff float64) float64 {
	if v0 == v1 {
		return 0.5
	}
	if math.IsInf(v0, 1) {
		return 1
	}

	t := (cutoff - v0) / (v1 - v0)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}

	return t
}
