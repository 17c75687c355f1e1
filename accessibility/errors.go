package accessibility

import (
	"github.com/transitaccess/accesscore/accesserr"
)

func newNotFoundErr(op string, cause error) error {
	return accesserr.New(accesserr.NotFound, op, cause)
}

func newCancelledErr(op string, cause error) error {
	return accesserr.New(accesserr.Cancelled, op, cause)
}
