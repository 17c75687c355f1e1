package accessgrid

import (
	"errors"

	"github.com/transitaccess/accesscore/accesserr"
)

// Sentinel causes wrapped by accesserr.Error, following grid/errors.go's
// one-var-block, one-doc-comment-per-error convention.
var (
	// errNonPositiveIterations indicates NIterations <= 0 was requested.
	errNonPositiveIterations = errors.New("accessgrid: nIterations must be positive")
	// errBadMagic indicates a stream's leading 8 bytes were not "ACCESSGR".
	errBadMagic = errors.New("accessgrid: magic bytes do not match \"ACCESSGR\"")
	// errUnsupportedVersion indicates a stream declared a version other than 0.
	errUnsupportedVersion = errors.New("accessgrid: unsupported version")
	// errTruncatedHeader indicates a stream shorter than magic+version+header.
	errTruncatedHeader = errors.New("accessgrid: stream truncated before header complete")
	// errTruncatedBody indicates a stream shorter than width*height*nIterations cells.
	errTruncatedBody = errors.New("accessgrid: stream truncated before body complete")
	// errBadDimensions indicates a non-positive width, height, or nIterations read from a header.
	errBadDimensions = errors.New("accessgrid: header declares non-positive width, height, or nIterations")
)

func newBadConfigErr(op string, cause error) error {
	return accesserr.New(accesserr.BadConfig, op, cause)
}

func newBadMagicErr(op string, cause error) error {
	return accesserr.New(accesserr.BadMagic, op, cause)
}

func newVersionMismatchErr(op string, cause error) error {
	return accesserr.New(accesserr.VersionMismatch, op, cause)
}

func newTruncatedErr(op string, cause error) error {
	return accesserr.New(accesserr.Truncated, op, cause)
}
