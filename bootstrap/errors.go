package bootstrap

import "errors"

var (
	// errMismatchedExtents indicates TestGrid's two streams cover different windows.
	errMismatchedExtents = errors.New("bootstrap: access grids must share extents")
	// errMismatchedIterations indicates TestGrid's two streams hold a different replicate count.
	errMismatchedIterations = errors.New("bootstrap: access grids must share nIterations")
)
