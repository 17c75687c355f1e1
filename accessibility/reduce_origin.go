package accessibility

import (
	"context"
	"sync"

	"github.com/transitaccess/accesscore/density"
	"github.com/transitaccess/accesscore/pointset"
	"github.com/transitaccess/accesscore/reducer"
	"github.com/transitaccess/accesscore/result"
)

// ReduceOrigin runs Origin once per origin in [0, nOrigins), one goroutine
// per origin with a sequential inner target loop inside each, and returns
// one result per origin in origin order. Each origin's error (if any) is
// reported independently at errs[origin] rather than aborting the whole
// batch, since one origin's routing failure says nothing about any other
// origin's.
func ReduceOrigin(ctx context.Context, targets []pointset.PointSet, route reducer.RouteFunc, nOrigins int, percentiles []int, cutoffs []reducer.CutoffSpec) (results []*result.Accessibility, densities []*density.Accumulator, warnings []Warnings, errs []error) {
	results = make([]*result.Accessibility, nOrigins)
	densities = make([]*density.Accumulator, nOrigins)
	warnings = make([]Warnings, nOrigins)
	errs = make([]error, nOrigins)

	var wg sync.WaitGroup
	wg.Add(nOrigins)

	for o := 0; o < nOrigins; o++ {
		go func(origin int) {
			defer wg.Done()

			acc, dens, w, err := Origin(ctx, targets, route, origin, percentiles, cutoffs)
			results[origin] = acc
			densities[origin] = dens
			warnings[origin] = w
			errs[origin] = err
		}(o)
	}

	wg.Wait()

	return results, densities, warnings, errs
}
