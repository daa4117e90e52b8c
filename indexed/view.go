// SPDX-License-Identifier: MIT

// Package indexed - View container & safe accessors.
//
// Purpose:
//   - Hold the nested expression and the two selectors; never copy elements.
//   - Resolve the static Traits once at construction (they never change).
//   - Offer checked At/Set at the public surface and unchecked Coeff/SetCoeff
//     for expression code.
//
// Complexity quicksheet:
//   - Borrow/Own: O(1); Rows/Cols/At/Set/Coeff: O(1) plus the selector lookup;
//     Materialize: O(r*c).

package indexed

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvindex/index"
	"github.com/katalvlaran/lvindex/matrix"
)

var (
	// ErrNilSelector indicates that a row or column selector was nil.
	ErrNilSelector = errors.New("indexed: nil selector")

	// ErrNotBlockAlike is returned by AsBlock when the view cannot be expressed
	// as a contiguous window.
	ErrNotBlockAlike = errors.New("indexed: view is not block-alike")
)

const panicNotLvalue = "indexed: SetCoeff on a view without LvalueBit"

// coeffReader is implemented by expressions that read a coefficient without
// building an evaluator (Dense, Block, View).
type coeffReader interface {
	Coeff(row, col int) float64
}

// Ownership records how the view holds its nested expression.
type Ownership uint8

const (
	// Borrowed: the caller keeps the expression alive for the view's lifetime
	// and may keep using it.
	Borrowed Ownership = iota
	// Owned: the expression was handed over; the view is its only user.
	Owned
)

// String returns "borrowed" or "owned".
func (o Ownership) String() string {
	if o == Owned {
		return "owned"
	}

	return "borrowed"
}

// View is a lazy gather of the rows and columns picked by two selectors.
// Coefficient (i, j) of the view is coefficient (rows.At(i), cols.At(j)) of
// the nested expression for every 0 ≤ i < Rows(), 0 ≤ j < Cols().
type View struct {
	xpr      matrix.Expr    // nested expression (borrowed or owned)
	rows     index.Selector // bound row selector
	cols     index.Selector // bound column selector
	traits   Traits         // resolved once in newView
	reader   coeffReader    // xpr when it reads coefficients directly, else nil
	own      Ownership
	readOnly bool // set by AsConst
}

// Compile-time assertions: a View nests like any other expression.
var (
	_ matrix.Lvalue = (*View)(nil)
	_ matrix.Matrix = (*View)(nil)
	_ fmt.Stringer  = (*View)(nil)
)

// Borrow builds a view over an expression the caller keeps ownership of.
// MAIN DESCRIPTION:
//   - The caller guarantees xpr outlives the view and is not resized.
//   - Mutations through either the view or xpr are visible through both.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNilSelector.
//
// Complexity:
//   - Time O(1), Space O(1).
func Borrow(xpr matrix.Expr, rows, cols index.Selector) (*View, error) {
	return newView(xpr, rows, cols, Borrowed)
}

// Own builds a view that takes over xpr (typically a temporary such as
// another view or a freshly built Dense). The caller must not use xpr afterwards.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNilSelector.
func Own(xpr matrix.Expr, rows, cols index.Selector) (*View, error) {
	return newView(xpr, rows, cols, Owned)
}

// newView validates presence, binds axis-relative selectors and resolves traits.
// Implementation:
//   - Stage 1: reject nil expression or selectors.
//   - Stage 2: bind All-like selectors against the nested axes.
//   - Stage 3: infer the static bundle from descriptors.
//
// Behavior highlights:
//   - Selector ranges are NOT validated: out-of-range positions are the
//     caller's responsibility (At/Set report them, Coeff does not).
func newView(xpr matrix.Expr, rows, cols index.Selector, own Ownership) (*View, error) {
	if err := matrix.ValidateNotNil(xpr); err != nil {
		return nil, fmt.Errorf("indexed.New: %w", err)
	}
	if rows == nil || cols == nil {
		return nil, fmt.Errorf("indexed.New: %w", ErrNilSelector)
	}
	nt := xpr.Traits()
	rows = index.Bind(rows, xpr.Rows(), nt.Rows)
	cols = index.Bind(cols, xpr.Cols(), nt.Cols)
	reader, _ := xpr.(coeffReader)

	return &View{
		xpr:    xpr,
		rows:   rows,
		cols:   cols,
		traits: Infer(nt, rows.Descriptor(), cols.Descriptor()),
		reader: reader,
		own:    own,
	}, nil
}

// nestedCoeff reads the nested expression at (r, c), building an evaluator
// only when the expression has no direct Coeff.
func (v *View) nestedCoeff(r, c int) float64 {
	if v.reader != nil {
		return v.reader.Coeff(r, c)
	}

	return v.xpr.Evaluator().Coeff(r, c)
}

// Rows returns the runtime element count of the row selector.
// Complexity: O(1).
func (v *View) Rows() int { return v.rows.Len() }

// Cols returns the runtime element count of the column selector.
// Complexity: O(1).
func (v *View) Cols() int { return v.cols.Len() }

// Traits reports the view as an expression (shape, strides, flags).
func (v *View) Traits() matrix.Traits { return v.traits.Traits }

// ViewTraits returns the full static bundle, including increments and
// block-alike/inner-panel classification.
func (v *View) ViewTraits() Traits { return v.traits }

// NestedExpression returns the nested expression for reading.
func (v *View) NestedExpression() matrix.Expr { return v.xpr }

// MutableNestedExpression returns the nested expression for writing.
// ok is false when the view is const (AsConst) or the nested expression
// is not an lvalue.
func (v *View) MutableNestedExpression() (lv matrix.Lvalue, ok bool) {
	if v.readOnly || !v.traits.IsLvalue() {
		return nil, false
	}
	lv, ok = v.xpr.(matrix.Lvalue)

	return lv, ok
}

// RowIndices returns the stored (bound) row selector unchanged.
func (v *View) RowIndices() index.Selector { return v.rows }

// ColIndices returns the stored (bound) column selector unchanged.
func (v *View) ColIndices() index.Selector { return v.cols }

// Ownership reports whether the nested expression is borrowed or owned.
func (v *View) Ownership() Ownership { return v.own }

// AsConst returns a read-only handle on the same nested expression and
// selectors. The handle drops LvalueBit and exposes no mutable nested expression.
// Complexity: O(1).
func (v *View) AsConst() *View {
	c := *v
	c.readOnly = true
	c.traits.Flags &^= matrix.LvalueBit

	return &c
}

// mapped translates a logical coordinate, checking both the view bounds and
// the nested bounds.
func (v *View) mapped(method string, i, j int) (r, c int, err error) {
	if i < 0 || i >= v.Rows() || j < 0 || j >= v.Cols() {
		return 0, 0, fmt.Errorf("View.%s(%d,%d): %w", method, i, j, matrix.ErrOutOfRange)
	}
	r, c = v.rows.At(i), v.cols.At(j)
	if r < 0 || r >= v.xpr.Rows() || c < 0 || c >= v.xpr.Cols() {
		return 0, 0, fmt.Errorf("View.%s(%d,%d) -> (%d,%d): %w", method, i, j, r, c, matrix.ErrOutOfRange)
	}

	return r, c, nil
}

// At returns coefficient (i, j) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe read: checks the logical coordinate and the mapped coordinate.
//
// Complexity:
//   - Time O(1) plus one nested coefficient read.
func (v *View) At(i, j int) (float64, error) {
	r, c, err := v.mapped("At", i, j)
	if err != nil {
		return 0, err
	}

	return v.nestedCoeff(r, c), nil
}

// Set writes coefficient (i, j) through to the nested expression.
// Implementation:
//   - Stage 1: reject const views and non-lvalue nested expressions.
//   - Stage 2: check logical and mapped bounds.
//   - Stage 3: delegate to the nested checked Set when available (numeric
//     policy, nested bounds), otherwise SetCoeff.
//
// Errors:
//   - matrix.ErrReadOnly, matrix.ErrOutOfRange, nested policy errors.
//
// Complexity:
//   - Time O(1).
func (v *View) Set(i, j int, val float64) error {
	lv, ok := v.MutableNestedExpression()
	if !ok {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, matrix.ErrReadOnly)
	}
	r, c, err := v.mapped("Set", i, j)
	if err != nil {
		return err
	}
	if m, checked := lv.(matrix.Matrix); checked {
		if err = m.Set(r, c, val); err != nil {
			return fmt.Errorf("View.Set(%d,%d): %w", i, j, err)
		}

		return nil
	}
	lv.SetCoeff(r, c, val)

	return nil
}

// Coeff reads (i, j) without bounds checks.
// For loops, prefer Evaluator() once and call Coeff on it.
func (v *View) Coeff(i, j int) float64 {
	return v.nestedCoeff(v.rows.At(i), v.cols.At(j))
}

// SetCoeff writes (i, j) through to the nested expression without checks.
// Panics when the view has no mutable nested expression (programmer error).
func (v *View) SetCoeff(i, j int, val float64) {
	lv, ok := v.MutableNestedExpression()
	if !ok {
		panic(panicNotLvalue)
	}
	lv.SetCoeff(v.rows.At(i), v.cols.At(j), val)
}

// Do visits each coefficient in row-major reading order; stops when f returns false.
// Complexity: O(r*c).
func (v *View) Do(f func(i, j int, val float64) bool) {
	ev := v.Evaluator()
	rows, cols := v.Rows(), v.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if !f(i, j, ev.Coeff(i, j)) {
				return
			}
		}
	}
}

// AsBlock returns the equivalent contiguous window when the view is
// block-alike over a Dense (or a Block of one).
// The window is read-only (see matrix.Block.ReadOnly) when the view is const
// or its nested expression is not writable.
//
// Errors:
//   - ErrNotBlockAlike when increments are not both 1, selectors are not
//     affine, or the nested expression has no Dense storage.
//   - matrix.ErrBadShape when the window falls outside the nested expression.
//
// Complexity:
//   - Time O(1).
func (v *View) AsBlock() (*matrix.Block, error) {
	if !v.traits.BlockAlike {
		return nil, ErrNotBlockAlike
	}
	ra, rok := v.rows.(index.Affine)
	ca, cok := v.cols.(index.Affine)
	if !rok || !cok {
		return nil, ErrNotBlockAlike
	}
	r0, _ := ra.Affine()
	c0, _ := ca.Affine()
	var (
		b   *matrix.Block
		err error
	)
	switch x := v.xpr.(type) {
	case *matrix.Dense:
		b, err = x.Block(r0, c0, v.Rows(), v.Cols())
	case *matrix.Block:
		br, bc := x.Origin()
		if r0 < 0 || c0 < 0 || r0+v.Rows() > x.Rows() || c0+v.Cols() > x.Cols() {
			return nil, fmt.Errorf("View.AsBlock: %w", matrix.ErrBadShape)
		}
		b, err = x.Base().Block(br+r0, bc+c0, v.Rows(), v.Cols())
	default:
		return nil, ErrNotBlockAlike
	}
	if err != nil {
		return nil, err
	}
	if _, writable := v.MutableNestedExpression(); !writable {
		b = b.ReadOnly()
	}

	return b, nil
}

// String renders the view like matrix.Dense.String.
func (v *View) String() string { return matrix.Format(v) }
