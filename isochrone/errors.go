package isochrone

import (
	"errors"

	"github.com/transitaccess/accesscore/accesserr"
)

// ErrAmbiguousRing is returned when a cell's corner pattern is a saddle
// (diagonal corners on the same side of the cutoff) or a partially
// assembled ring self-intersects away from a saddle: rather than guess a
// resolution direction, extraction fails fast so the caller can choose a
// different cutoff or accept a locally ambiguous contour explicitly.
var ErrAmbiguousRing = errors.New("isochrone: ambiguous ring at saddle or self-intersection")

func newAmbiguousRing(op string) error {
	return accesserr.New(accesserr.InvalidGeometry, op, ErrAmbiguousRing)
}
