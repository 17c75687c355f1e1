package result

import "math"

// RoundMode selects how Emit converts an accumulated float64 cell to an
// integer. RoundHalfToEven (banker's rounding, stdlib's native bias via
// math.RoundToEven) is the default; RoundHalfAwayFromZero is offered for
// callers that need to match a system using that convention instead.
type RoundMode int

const (
	RoundHalfToEven RoundMode = iota
	RoundHalfAwayFromZero
)

func (m RoundMode) apply(v float64) float64 {
	if m == RoundHalfAwayFromZero {
		return math.Round(v)
	}

	return math.RoundToEven(v)
}

// Emit validates the monotonicity invariants — non-decreasing along the
// cutoff axis, non-increasing along the percentile axis — then returns the
// rounded [pointSet][percentile][cutoff] cube. A broken invariant is a bug
// in the accumulation pass, not a caller input error, so it is reported as
// InvariantViolation rather than BadConfig.
func (a *Accessibility) Emit(mode RoundMode) ([][][]int, error) {
	if err := a.validateMonotonicity(); err != nil {
		return nil, err
	}

	out := make([][][]int, a.nPointSets)
	for p := 0; p < a.nPointSets; p++ {
		out[p] = make([][]int, a.nPercentile)
		for i := 0; i < a.nPercentile; i++ {
			out[p][i] = make([]int, a.nCutoffs)
			for j := 0; j < a.nCutoffs; j++ {
				out[p][i][j] = int(mode.apply(a.data[a.index(p, i, j)]))
			}
		}
	}

	return out, nil
}

func (a *Accessibility) validateMonotonicity() error {
	for p := 0; p < a.nPointSets; p++ {
		for i := 0; i < a.nPercentile; i++ {
			for j := 1; j < a.nCutoffs; j++ {
				if a.data[a.index(p, i, j)] < a.data[a.index(p, i, j-1)] {
					return newInvariantViolation("result.Emit", errNotMonotoneAlongCutoff)
				}
			}
		}

		for j := 0; j < a.nCutoffs; j++ {
			for i := 1; i < a.nPercentile; i++ {
				if a.data[a.index(p, i, j)] > a.data[a.index(p, i-1, j)] {
					return newInvariantViolation("result.Emit", errNotMonotoneAlongPercentile)
				}
			}
		}
	}

	return nil
}
