package density

import (
	"errors"

	"github.com/transitaccess/accesscore/accesserr"
)

var errNotMonotoneAcrossMinute = errors.New("density: cumulative sum decreased across minute")
var errNotMonotoneAcrossPercentile = errors.New("density: cumulative sum increased across percentile")

func newInvariantViolation(op string, cause error) error {
	return accesserr.New(accesserr.InvariantViolation, op, cause)
}
