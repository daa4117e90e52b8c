// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the expression reference is non-nil.
//
// Returns ErrNilMatrix if e == nil.
// Complexity: O(1).
func ValidateNotNil(e Expr) error {
	if e == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures expressions a and b have equal runtime dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Expr) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex – Ensures 0 ≤ i < n.
//
// Returns ErrOutOfRange otherwise.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateFinite – Ensures v is neither NaN nor ±Inf.
//
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// Equal reports whether a and b have the same shape and every coefficient
// differs by at most eps. Reads go through each expression's evaluator.
// Complexity: O(r*c).
func Equal(a, b Expr, eps float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	ea, eb := a.Evaluator(), b.Evaluator()
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if math.Abs(ea.Coeff(i, j)-eb.Coeff(i, j)) > eps {
				return false
			}
		}
	}

	return true
}
