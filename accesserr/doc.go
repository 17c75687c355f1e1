// Package accesserr is the shared error taxonomy for the accessibility
// aggregation pipeline.
//
// What:
//
//   - Kind enumerates the eight failure classes every package in this
//     module can raise (BadConfig, InvalidGeometry, Truncated, BadMagic,
//     VersionMismatch, InvariantViolation, Cancelled, NotFound).
//   - Error wraps a cause with its Kind and the operation that raised it.
//
// Why:
//
//   - Every package (grid, linkage, decay, reducer, result, bootstrap,
//     isochrone) needs the same eight error kinds; a single shared type
//     keeps errors.Is/errors.As comparisons uniform across package
//     boundaries instead of each package rolling its own enum.
package accesserr
