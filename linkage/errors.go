package linkage

import (
	"errors"

	"github.com/transitaccess/accesscore/accesserr"
)

var (
	errAlreadyRegistered   = errors.New("linkage: key already registered unevictable")
	errNilBuilder          = errors.New("linkage: builder must not be nil")
	errNonPositiveCapacity = errors.New("linkage: capacity must be > 0")
)

func newBadConfig(op string, cause error) error {
	return accesserr.New(accesserr.BadConfig, op, cause)
}

func newNotFound(op string, cause error) error {
	return accesserr.New(accesserr.NotFound, op, cause)
}

func newCancelled(op string, cause error) error {
	return accesserr.New(accesserr.Cancelled, op, cause)
}
