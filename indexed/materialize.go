// SPDX-License-Identifier: MIT

package indexed

import (
	"fmt"

	"github.com/katalvlaran/lvindex/matrix"
)

// Materialize copies any expression into a fresh, independent Dense.
// MAIN DESCRIPTION:
//   - Evaluates e once through its evaluator; the result keeps e's storage
//     order unless opts override it.
//
// Implementation:
//   - Stage 1: reject nil; allocate the result (order from e.Traits()).
//   - Stage 2: deterministic double loop i→j through one evaluator.
//
// Behavior highlights:
//   - Mutating the result never affects e (compare View, which shares storage).
//   - Zero-area expressions are rejected with ErrInvalidDimensions, like NewDense.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Materialize(e matrix.Expr, opts ...matrix.Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(e); err != nil {
		return nil, fmt.Errorf("indexed.Materialize: %w", err)
	}
	order := matrix.WithColMajor()
	if e.Traits().IsRowMajor() {
		order = matrix.WithRowMajor()
	}
	res, err := matrix.NewDense(e.Rows(), e.Cols(), append([]matrix.Option{order}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("indexed.Materialize(%dx%d): %w", e.Rows(), e.Cols(), err)
	}
	ev := e.Evaluator()
	rows, cols := e.Rows(), e.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.SetCoeff(i, j, ev.Coeff(i, j))
		}
	}

	return res, nil
}

// Assign copies src into the view coefficient by coefficient.
// Implementation:
//   - Stage 1: require a writable view and matching runtime shapes.
//   - Stage 2: read src through one evaluator; write through SetCoeff.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrReadOnly, matrix.ErrDimensionMismatch.
//
// Notes:
//   - src must not alias the view's nested storage in overlapping positions;
//     materialize src first when it does.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (v *View) Assign(src matrix.Expr) error {
	if err := matrix.ValidateNotNil(src); err != nil {
		return fmt.Errorf("View.Assign: %w", err)
	}
	lv, ok := v.MutableNestedExpression()
	if !ok {
		return fmt.Errorf("View.Assign: %w", matrix.ErrReadOnly)
	}
	if err := matrix.ValidateSameShape(v, src); err != nil {
		return fmt.Errorf("View.Assign: %w", err)
	}
	ev := src.Evaluator()
	rows, cols := v.Rows(), v.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			lv.SetCoeff(v.rows.At(i), v.cols.At(j), ev.Coeff(i, j))
		}
	}

	return nil
}
