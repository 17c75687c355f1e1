// Package accessibility wires the reducer, result, density, and linkage
// packages into the per-origin pipeline: given one origin's raw travel-time
// iterations from the upstream routing engine, it produces an
// AccessibilityResult, a temporal density accumulator, and any warnings
// raised along the way, fanned out one goroutine per origin.
package accessibility

import (
	"fmt"

	"github.com/transitaccess/accesscore/grid"
	"github.com/transitaccess/accesscore/linkage"
	"github.com/transitaccess/accesscore/pointset"
)

// WorkerContext owns every cache and registry one analysis run needs: the
// linkage cache, the pointset identity registry, and the resident-grid
// store. Bundling them into one explicit, caller-constructed struct rather
// than package-level state is the "owns everything" object the cyclic-state
// guidance calls for.
type WorkerContext struct {
	Linkage   *linkage.Cache
	PointSets *pointset.Registry
	Grids     *grid.Store
}

// NewWorkerContext wraps a pre-built linkage.Cache with a fresh
// pointset.Registry and grid.Store.
func NewWorkerContext(cache *linkage.Cache) *WorkerContext {
	return &WorkerContext{
		Linkage:   cache,
		PointSets: pointset.NewRegistry(),
		Grids:     grid.NewStore(),
	}
}

// ResolveTargets looks up each id in wc.PointSets, in order, failing fast
// with NotFound if any id was never registered.
func (wc *WorkerContext) ResolveTargets(ids []pointset.ID) ([]pointset.PointSet, error) {
	targets := make([]pointset.PointSet, len(ids))
	for i, id := range ids {
		ps, ok := wc.PointSets.Get(id)
		if !ok {
			return nil, newNotFoundErr("accessibility.WorkerContext.ResolveTargets", fmt.Errorf("pointset %q not registered", id))
		}

		targets[i] = ps
	}

	return targets, nil
}
