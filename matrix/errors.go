// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. This file defines ONLY package-level
// sentinel errors. All algorithms MUST return these sentinels and tests MUST
// check them via errors.Is. Panics are reserved for programmer errors in
// private helpers (none at present).
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested view/submatrix shape is
	// invalid given the base matrix's dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
