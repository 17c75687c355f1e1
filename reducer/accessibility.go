package reducer

import (
	"sort"

	"github.com/transitaccess/accesscore/decay"
)

// AccessibilityReducer emits, per target, decay-weighted opportunity
// contributions to acc[percentile][cutoff]. When every CutoffSpec's decay
// function is decay.Step it takes a count-and-bail fast path equivalent to
// the decay-weighted computation but sub-O(N log N); the strategy is
// selected once at construction, mirroring dtw's MemoryMode strategy
// selection.
type AccessibilityReducer struct {
	percentiles []int
	cutoffs     []CutoffSpec
	n           int
	idx         []int // same precomputed ranks as PercentileReducer
	minCount    []int // count-and-bail thresholds, valid only when stepFast
	maxMinCount int    // max(minCount), the point past which counting can stop early
	stepFast    bool
}

// NewAccessibilityReducer returns an AccessibilityReducer for percentiles
// and cutoffs over iteration arrays of length n.
func NewAccessibilityReducer(percentiles []int, cutoffs []CutoffSpec, n int) (*AccessibilityReducer, error) {
	if len(percentiles) == 0 {
		return nil, newBadConfig("reducer.NewAccessibilityReducer", errNoPercentiles)
	}
	if len(cutoffs) == 0 {
		return nil, newBadConfig("reducer.NewAccessibilityReducer", errNoCutoffs)
	}
	if n <= 0 {
		return nil, newBadConfig("reducer.NewAccessibilityReducer", errNonPositiveN)
	}

	idx := make([]int, len(percentiles))
	minCount := make([]int, len(percentiles))
	maxMinCount := 0
	stepFast := true
	for i, p := range percentiles {
		if p < 0 || p > 100 {
			return nil, newBadConfig("reducer.NewAccessibilityReducer", errPercentileOutOfBand)
		}

		idx[i] = percentileIndex(p, n)
		// minCount must agree with idx, not be re-derived from p and n by a
		// different rounding rule: the idx_i-th smallest value is below the
		// threshold iff at least idx_i+1 values are, so minCount has to be
		// idx[i]+1 exactly, or the fast path and the decay-weighted path can
		// disagree whenever percentileIndex's rounding moves idx off
		// floor((n-1)*p/100).
		minCount[i] = idx[i] + 1
		if minCount[i] > maxMinCount {
			maxMinCount = minCount[i]
		}
	}
	for _, c := range cutoffs {
		if c.Decay.Type() != decay.Step {
			stepFast = false
		}
	}

	return &AccessibilityReducer{
		percentiles: percentiles,
		cutoffs:     cutoffs,
		n:           n,
		idx:         idx,
		minCount:    minCount,
		maxMinCount: maxMinCount,
		stepFast:    stepFast,
	}, nil
}

// Reduce returns acc[percentile][cutoff], the opportunity contribution
// this target makes to each (percentile, cutoff) accumulator cell. Targets
// with zero opportunities are skipped entirely (the optimization the
// travel-time cost of this pass would otherwise always pay for no result).
func (r *AccessibilityReducer) Reduce(times []int, opportunity float64) [][]float64 {
	acc := make([][]float64, len(r.percentiles))
	for i := range acc {
		acc[i] = make([]float64, len(r.cutoffs))
	}

	if opportunity == 0 {
		return acc
	}

	if r.stepFast {
		r.reduceStepFast(times, opportunity, acc)
		return acc
	}

	r.reduceDecayWeighted(times, opportunity, acc)

	return acc
}

// reduceDecayWeighted sorts times once and, for each percentile's travel
// time, weighs opportunity by each cutoff's decay.Function.
func (r *AccessibilityReducer) reduceDecayWeighted(times []int, opportunity float64, acc [][]float64) {
	sorted := make([]int, len(times))
	copy(sorted, times)
	sort.Ints(sorted)

	for i, idx := range r.idx {
		t := sorted[idx]
		if t == Unreached {
			continue
		}

		for j, c := range r.cutoffs {
			acc[i][j] = c.Decay.Weight(float64(t)) * opportunity
		}
	}
}

// reduceStepFast counts, for each cutoff, how many raw iteration times fall
// under the cutoff threshold, then derives every percentile's 0/1
// contribution from that single count without sorting: the idx_i-th
// smallest value is below the threshold iff at least idx_i+1 values are.
func (r *AccessibilityReducer) reduceStepFast(times []int, opportunity float64, acc [][]float64) {
	for j, c := range r.cutoffs {
		thresholdSeconds := c.Minutes * 60

		count := 0
		for _, t := range times {
			if t != Unreached && t < thresholdSeconds {
				count++
				if count >= r.maxMinCount {
					break // no percentile needs more than this
				}
			}
		}

		for i := range r.percentiles {
			if count >= r.minCount[i] {
				acc[i][j] = opportunity
			}
		}
	}
}
