// Package accesserr defines the shared error taxonomy used across the
// accessibility pipeline (grid, linkage, decay, reducer, density, result,
// bootstrap, isochrone). Every fallible operation in this module returns an
// error that wraps one of the Kind values below, so callers can branch on
// failure class with errors.Is/errors.As regardless of which package raised
// it.
//
// Kinds:
//
//	BadConfig          - invalid percentile, cutoff, or decay parameter.
//	InvalidGeometry    - zero-area polygon or unsupported shape.
//	Truncated          - persisted grid/stream shorter than its header promises.
//	BadMagic           - persisted stream does not start with the expected magic.
//	VersionMismatch    - persisted stream declares an unsupported version.
//	InvariantViolation - a monotonicity or conservation check failed on emit.
//	Cancelled          - a context was cancelled at a phase boundary.
//	NotFound           - a grid id or linkage key was missing when required.
package accesserr

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed. It is a closed enumeration —
// callers should switch on it or compare with errors.Is against the
// package-level sentinels below, not against arbitrary new values.
type Kind int

const (
	// BadConfig indicates invalid task or decay-function configuration.
	BadConfig Kind = iota
	// InvalidGeometry indicates a degenerate or unsupported geometry.
	InvalidGeometry
	// Truncated indicates a persisted stream ended before its header promised.
	Truncated
	// BadMagic indicates a persisted stream's magic bytes did not match.
	BadMagic
	// VersionMismatch indicates a persisted stream declares an unsupported version.
	VersionMismatch
	// InvariantViolation indicates a monotonicity or conservation check failed.
	InvariantViolation
	// Cancelled indicates a context was cancelled at a phase boundary.
	Cancelled
	// NotFound indicates a requested grid id or linkage key does not exist.
	NotFound
)

// String renders the Kind's name, used in wrapped error messages.
func (k Kind) String() string {
	switch k {
	case BadConfig:
		return "BadConfig"
	case InvalidGeometry:
		return "InvalidGeometry"
	case Truncated:
		return "Truncated"
	case BadMagic:
		return "BadMagic"
	case VersionMismatch:
		return "VersionMismatch"
	case InvariantViolation:
		return "InvariantViolation"
	case Cancelled:
		return "Cancelled"
	case NotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with its Kind, so that errors.Is(err,
// accesserr.ErrInvariantViolation) works after wrapping with fmt.Errorf("%w", ...)
// chains anywhere in the call stack.
type Error struct {
	Kind Kind
	Op   string // package/operation that raised the error, e.g. "grid.FromPolygons"
	Err  error  // underlying cause, may be nil
}

// New returns an *Error of the given kind, tagged with op, wrapping err.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}

	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind as e, enabling
// errors.Is(err, accesserr.ErrNotFound)-style comparisons against the
// package-level sentinel values below, which carry only a Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

// sentinel returns a comparable *Error carrying only a Kind, for use as an
// errors.Is target: errors.Is(err, accesserr.ErrNotFound).
func sentinel(k Kind) *Error { return &Error{Kind: k} }

// Package-level sentinels for errors.Is comparisons against Kind alone,
// ignoring Op/Err, shared across every package in the module instead of
// each one rolling its own.
var (
	ErrBadConfig          = sentinel(BadConfig)
	ErrInvalidGeometry    = sentinel(InvalidGeometry)
	ErrTruncated          = sentinel(Truncated)
	ErrBadMagic           = sentinel(BadMagic)
	ErrVersionMismatch    = sentinel(VersionMismatch)
	ErrInvariantViolation = sentinel(InvariantViolation)
	ErrCancelled          = sentinel(Cancelled)
	ErrNotFound           = sentinel(NotFound)
)

// Of reports the Kind of err if it (or something it wraps) is an *Error,
// and ok=true; otherwise ok=false.
func Of(err error) (k Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
