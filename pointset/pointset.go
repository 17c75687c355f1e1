// Package pointset provides the uniform capability-set interface over
// gridded and freeform destination sets, plus a process-lifetime identity
// registry.
//
// PointSet is intentionally a narrow, read-only facade exposing small
// capability methods rather than one large mutable struct, so that
// Gridded, Freeform, and grid.TransformWrapper can all satisfy it without
// sharing an implementation.
package pointset

import "github.com/transitaccess/accesscore/grid"

// PointSet is the uniform interface over any destination set a reducer can
// consume: gridded opportunity grids, freeform point collections, and
// grid.TransformWrapper's upsampled view.
type PointSet interface {
	// Count returns the number of points (targets) in the set.
	Count() int
	// Lat returns the latitude of point i.
	Lat(i int) float64
	// Lon returns the longitude of point i.
	Lon(i int) float64
	// Opportunities returns the opportunity count at point i.
	Opportunities(i int) float64
	// ID returns point i's external identifier, if it has one.
	ID(i int) (id string, ok bool)
	// Extents returns the set's grid extents, if it is grid-aligned.
	Extents() (grid.Extents, bool)
}

// Ensure the grid package's wrapper types satisfy PointSet without grid
// needing to import pointset (avoiding an import cycle): grid depends only
// on mercator, pointset depends on grid.
var (
	_ PointSet = (*grid.TransformWrapper)(nil)
	_ PointSet = (*Gridded)(nil)
	_ PointSet = (*Freeform)(nil)
)

// Gridded adapts a *grid.Grid to the PointSet interface, one point per
// grid cell, ordered row-major.
type Gridded struct {
	g      *grid.Grid
	parent PointSet // nil unless constructed via NewGriddedChild
}

// NewGridded wraps g as a PointSet with no known parent.
func NewGridded(g *grid.Grid) *Gridded { return &Gridded{g: g} }

// NewGriddedChild wraps g as a PointSet that is a known sub-grid of parent
// at the same zoom, letting a linkage.Cache recognize a sub-linkage
// cropping opportunity instead of rebuilding from scratch.
func NewGriddedChild(g *grid.Grid, parent PointSet) *Gridded {
	return &Gridded{g: g, parent: parent}
}

// Parent returns the PointSet this one was cropped from, if any.
func (p *Gridded) Parent() (PointSet, bool) {
	if p.parent == nil {
		return nil, false
	}

	return p.parent, true
}

// Count returns Width*Height.
func (p *Gridded) Count() int { return p.g.Count() }

// Lat returns the latitude of the center of cell i.
func (p *Gridded) Lat(i int) float64 {
	y := i / p.g.Width
	return latOfRow(p.g, y)
}

// Lon returns the longitude of the center of cell i.
func (p *Gridded) Lon(i int) float64 {
	x := i % p.g.Width
	return lonOfCol(p.g, x)
}

// Opportunities returns the opportunity density at cell i.
func (p *Gridded) Opportunities(i int) float64 {
	return p.g.Opportunities[i]
}

// ID always returns ("", false): grid cells have no external identifier.
func (p *Gridded) ID(int) (string, bool) { return "", false }

// Extents returns the wrapped grid's extents.
func (p *Gridded) Extents() (grid.Extents, bool) { return p.g.Extents, true }

// Freeform is a PointSet backed by parallel slices of arbitrary (lat, lon)
// points, not aligned to any grid — e.g. transit stops or building
// centroids loaded from a CSV/shapefile driver (external collaborator).
type Freeform struct {
	Lats, Lons, Opps []float64
	IDs              []string // optional; len(IDs)==0 means no identifiers
}

// Count returns the number of points.
func (p *Freeform) Count() int { return len(p.Lats) }

// Lat returns the latitude of point i.
func (p *Freeform) Lat(i int) float64 { return p.Lats[i] }

// Lon returns the longitude of point i.
func (p *Freeform) Lon(i int) float64 { return p.Lons[i] }

// Opportunities returns the opportunity count at point i.
func (p *Freeform) Opportunities(i int) float64 { return p.Opps[i] }

// ID returns point i's identifier if IDs was populated.
func (p *Freeform) ID(i int) (string, bool) {
	if i >= len(p.IDs) {
		return "", false
	}

	return p.IDs[i], true
}

// Extents always returns (zero, false): freeform sets are not grid-aligned.
func (p *Freeform) Extents() (grid.Extents, bool) { return grid.Extents{}, false }
