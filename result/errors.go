package result

import (
	"errors"

	"github.com/transitaccess/accesscore/accesserr"
)

var errNonPositiveDimension = errors.New("result: dimensions must be > 0")
var errIndexOutOfBounds = errors.New("result: index out of bounds")
var errNotMonotoneAlongCutoff = errors.New("result: not monotone non-decreasing along cutoff axis")
var errNotMonotoneAlongPercentile = errors.New("result: not monotone non-increasing along percentile axis")

func newInvariantViolation(op string, cause error) error {
	return accesserr.New(accesserr.InvariantViolation, op, cause)
}
