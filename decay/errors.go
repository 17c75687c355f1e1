package decay

import (
	"errors"

	"github.com/transitaccess/accesscore/accesserr"
)

var (
	errUnknownType        = errors.New("decay: unknown Type")
	errNonPositiveCutoff  = errors.New("decay: cutoffSeconds must be > 0")
	errNonPositiveWidth   = errors.New("decay: widthSeconds must be > 0 for linear")
	errNonPositiveHalf    = errors.New("decay: halflifeSeconds must be > 0 for exponential")
	errNonPositiveStd     = errors.New("decay: stdSeconds must be > 0 for logistic/sigmoid")
	errZeroPointOutOfBand = errors.New("decay: reaches-zero point must be in (cutoff, 7200]")
	errWeightOutOfRange   = errors.New("decay: weight left [0,1] during validation")
	errNotMonotone        = errors.New("decay: weight was not monotone non-increasing")
	errNotNearZero        = errors.New("decay: weight was not within 1e-4 of zero at the declared zero point")
)

func newBadConfig(op string, cause error) error {
	return accesserr.New(accesserr.BadConfig, op, cause)
}
