// Package reducer turns one origin's raw per-target travel-time iterations
// into percentile travel times and decay-weighted cumulative accessibility,
// the two independent passes that run over the same iteration array for
// every target.
package reducer

import (
	"math"

	"github.com/transitaccess/accesscore/decay"
)

// Unreached marks an iteration, or a percentile slot derived from one, that
// never reached its target. It mirrors the upstream routing interface's
// INT_MAX sentinel and must propagate through every downstream computation
// that touches it.
const Unreached = math.MaxInt32

// CutoffSpec pairs a cutoff (in minutes) with the decay.Function built for
// it — same decay.Type and shape parameters across every cutoff in one
// task, just instantiated at a different CutoffSeconds each time.
type CutoffSpec struct {
	Minutes int
	Decay   decay.Function
}

// RouteFunc resolves one origin's raw per-target iteration arrays from the
// upstream routing engine. Given an origin pixel index it returns a
// function yielding target i's iteration times (one int32 per Monte Carlo
// departure-time draw), the shared iteration count n, and an error if the
// origin could not be routed at all. This package never calls a RouteFunc
// itself — it is specified at interface level only, the contract
// accessibility.ReduceOrigin is built against.
type RouteFunc func(origin int) (func(target int) []int32, int, error)
