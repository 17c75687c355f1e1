package density

// ValidateMonotonicity checks the two invariants a correctly-recorded
// Accumulator must satisfy for one pointSet: cumulative minute sums must be
// non-decreasing along minute (true by construction, since Record only ever
// adds non-negative amounts), and, across percentiles listed in ascending
// percentile order, the cumulative sum at any fixed minute must be
// non-increasing (a slower, higher percentile can only have reached fewer
// opportunities by a given minute than a faster one).
func (a *Accumulator) ValidateMonotonicity(pointSet int, percentilesAscending []int) error {
	var prevCumulative []float64

	for _, percentile := range percentilesAscending {
		row := a.row(pointSet, percentile)

		cumulative := make([]float64, Horizon)
		running := 0.0
		for m := 0; m < Horizon; m++ {
			running += row[m]
			cumulative[m] = running

			if m > 0 && cumulative[m] < cumulative[m-1] {
				return newInvariantViolation("density.ValidateMonotonicity", errNotMonotoneAcrossMinute)
			}
		}

		if prevCumulative != nil {
			for m := 0; m < Horizon; m++ {
				if cumulative[m] > prevCumulative[m] {
					return newInvariantViolation("density.ValidateMonotonicity", errNotMonotoneAcrossPercentile)
				}
			}
		}

		prevCumulative = cumulative
	}

	return nil
}
