package accessibility

import (
	"context"
	"fmt"

	"github.com/transitaccess/accesscore/density"
	"github.com/transitaccess/accesscore/pointset"
	"github.com/transitaccess/accesscore/reducer"
	"github.com/transitaccess/accesscore/result"
)

// Origin runs the full reducer pipeline for one origin against targets, a
// caller-ordered list of destination point sets (the "pointset" axis of the
// resulting AccessibilityResult). route supplies one origin's raw
// iteration arrays; the flat target index route's inner function expects is
// the concatenation of targets in order — targets[0]'s Count() indices
// first, then targets[1]'s, and so on, the same "specified at interface
// level only" contract reducer.RouteFunc documents.
//
// percentiles must be ascending: density recording relies on it to stop
// accumulating a target's higher percentiles once an UNREACHED slot is
// seen.
//
// An origin unreachable from the street network is not an error: route may
// legitimately return an all-UNREACHED iteration function, which simply
// produces an all-zero AccessibilityResult, matching the upstream routing
// interface's documented no-error-on-unreachable-origin behavior.
func Origin(ctx context.Context, targets []pointset.PointSet, route reducer.RouteFunc, origin int, percentiles []int, cutoffs []reducer.CutoffSpec) (*result.Accessibility, *density.Accumulator, Warnings, error) {
	targetFunc, n, err := route(origin)
	if err != nil {
		return nil, nil, nil, err
	}

	pr, err := reducer.NewPercentileReducer(percentiles, n)
	if err != nil {
		return nil, nil, nil, err
	}

	ar, err := reducer.NewAccessibilityReducer(percentiles, cutoffs, n)
	if err != nil {
		return nil, nil, nil, err
	}

	pipeline := reducer.NewPipeline(pr, ar)

	acc, err := result.NewAccessibility(len(targets), len(percentiles), len(cutoffs))
	if err != nil {
		return nil, nil, nil, err
	}

	dens := density.NewAccumulator()

	var warnings Warnings
	flatTarget := 0

	for pointSetIdx, ps := range targets {
		if ps.Count() == 0 {
			warnings = warnings.Add(fmt.Sprintf("origin %d: pointset %d has no targets", origin, pointSetIdx))
			continue
		}

		for t := 0; t < ps.Count(); t++ {
			select {
			case <-ctx.Done():
				return acc, dens, warnings, newCancelledErr("accessibility.Origin", ctx.Err())
			default:
			}

			raw := targetFunc(flatTarget)
			times := make([]int, len(raw))
			for i, v := range raw {
				times[i] = int(v)
			}

			opportunity := ps.Opportunities(t)
			minutes, weights := pipeline.ReduceTarget(times, opportunity)

			for pi := range percentiles {
				for ci := range cutoffs {
					acc.Accumulate(pointSetIdx, pi, ci, weights[pi][ci])
				}
			}

			for pi := range percentiles {
				if minutes[pi] == reducer.Unreached {
					break
				}

				dens.Record(pointSetIdx, pi, minutes[pi]*60, opportunity)
			}

			flatTarget++
		}
	}

	return acc, dens, warnings, nil
}
