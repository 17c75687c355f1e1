package reducer

import "sync"

// Pipeline runs the percentile and accessibility sub-reducers over the same
// target in parallel goroutines, the "two sub-reducers run in parallel in
// the same pass" requirement; each sub-reducer reads times without mutating
// it (sorting a private copy where it needs order) rather than sharing
// mutable state across goroutines.
type Pipeline struct {
	percentile    *PercentileReducer
	accessibility *AccessibilityReducer
}

// NewPipeline pairs a PercentileReducer and AccessibilityReducer built over
// the same iteration count.
func NewPipeline(percentile *PercentileReducer, accessibility *AccessibilityReducer) *Pipeline {
	return &Pipeline{percentile: percentile, accessibility: accessibility}
}

// ReduceTarget runs both sub-reducers over times concurrently and returns
// their outputs once both complete.
func (p *Pipeline) ReduceTarget(times []int, opportunity float64) (percentileMinutes []int, accessWeights [][]float64) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		percentileMinutes = p.percentile.Reduce(times)
	}()
	go func() {
		defer wg.Done()
		accessWeights = p.accessibility.Reduce(times, opportunity)
	}()

	wg.Wait()

	return percentileMinutes, accessWeights
}
