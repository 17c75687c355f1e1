package reducer

import (
	"errors"

	"github.com/transitaccess/accesscore/accesserr"
)

var (
	errNoPercentiles       = errors.New("reducer: percentiles must not be empty")
	errPercentileOutOfBand = errors.New("reducer: percentile must be in [0,100]")
	errNonPositiveN        = errors.New("reducer: iterations per target must be > 0")
	errNoCutoffs           = errors.New("reducer: cutoffs must not be empty")
)

func newBadConfig(op string, cause error) error {
	return accesserr.New(accesserr.BadConfig, op, cause)
}
