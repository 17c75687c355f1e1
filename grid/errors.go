package grid

import (
	"errors"

	"github.com/transitaccess/accesscore/accesserr"
)

// Sentinel causes wrapped by accesserr.Error when returned from this
// package's exported functions, following core/types.go's sentinel-error
// block convention (one var block, one doc comment per error).
var (
	// errEmptyRing indicates a polygon ring with fewer than 3 distinct vertices.
	errEmptyRing = errors.New("grid: ring must have at least 3 vertices")
	// errDegenerateArea indicates a ring whose planar area is <= 1e-12.
	errDegenerateArea = errors.New("grid: polygon area must exceed 1e-12")
	// errTruncatedHeader indicates a binary stream shorter than the fixed header.
	errTruncatedHeader = errors.New("grid: stream truncated before header complete")
	// errTruncatedBody indicates a binary stream shorter than width*height cells.
	errTruncatedBody = errors.New("grid: stream truncated before body complete")
	// errBadDimensions indicates a non-positive width or height read from a header.
	errBadDimensions = errors.New("grid: header declares non-positive width or height")
	// errOnlyUpsamplingSupported indicates target.Zoom - source.Zoom is outside [0,3].
	errOnlyUpsamplingSupported = errors.New("grid: transform wrapper only supports dz in [0,3]")
)

// newGeometryErr wraps cause as an accesserr InvalidGeometry from op.
func newGeometryErr(op string, cause error) error {
	return accesserr.New(accesserr.InvalidGeometry, op, cause)
}

// newTruncatedErr wraps cause as an accesserr Truncated from op.
func newTruncatedErr(op string, cause error) error {
	return accesserr.New(accesserr.Truncated, op, cause)
}

// newBadConfigErr wraps cause as an accesserr BadConfig from op.
func newBadConfigErr(op string, cause error) error {
	return accesserr.New(accesserr.BadConfig, op, cause)
}
