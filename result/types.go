// Package result implements the accessibility accumulator: a dense
// [pointSet][percentile][cutoff] cube of opportunity counts, accumulated in
// float64 and emitted as rounded integers after an invariant check.
//
// Backed by a single flat slice with row-major strides, generalized from a
// two-dimensional dense-matrix layout to three dimensions.
package result

import "github.com/transitaccess/accesscore/accesserr"

// Accessibility is a row-major [pointSet][percentile][cutoff] accumulator,
// backed by a single flat slice for cache-friendly sequential accumulation.
type Accessibility struct {
	nPointSets  int
	nPercentile int
	nCutoffs    int
	data        []float64
}

// NewAccessibility allocates a zeroed Accessibility accumulator with the
// given dimensions.
func NewAccessibility(nPointSets, nPercentiles, nCutoffs int) (*Accessibility, error) {
	if nPointSets <= 0 || nPercentiles <= 0 || nCutoffs <= 0 {
		return nil, accesserr.New(accesserr.BadConfig, "result.NewAccessibility", errNonPositiveDimension)
	}

	return &Accessibility{
		nPointSets:  nPointSets,
		nPercentile: nPercentiles,
		nCutoffs:    nCutoffs,
		data:        make([]float64, nPointSets*nPercentiles*nCutoffs),
	}, nil
}

func (a *Accessibility) index(pointSet, percentile, cutoff int) int {
	return (pointSet*a.nPercentile+percentile)*a.nCutoffs + cutoff
}
