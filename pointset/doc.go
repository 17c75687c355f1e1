// Package pointset defines the PointSet capability-set interface and its
// three variants: Gridded (wraps a *grid.Grid), Freeform (parallel slices),
// and grid.TransformWrapper (the upsampling view from package grid).
// Registry is the process-lifetime, eviction-free identity cache used to
// look up resolved destination pointsets by id.
package pointset
