// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public accessors return
// these sentinels wrapped with method context; callers match them via errors.Is.
// Panics are reserved for programmer errors (invalid option values).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the detection site.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a requested window or data length does not fit the shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil expression was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReadOnly is returned by Set on an expression without LvalueBit.
	ErrReadOnly = errors.New("matrix: expression is read-only")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
