// SPDX-License-Identifier: MIT
// Package indexed_test contains test helpers
//
// Purpose:
//   • Deterministic iota matrices (m[i][j] = i*cols + j) in both storage orders.
//   • Selector constructors that fail the test instead of returning errors.

package indexed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvindex/index"
	"github.com/katalvlaran/lvindex/indexed"
	"github.com/katalvlaran/lvindex/matrix"
)

// iotaDense RETURNS an r×c matrix with m[i][j] = i*c + j.
func iotaDense(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = float64(k)
	}
	m, err := matrix.NewDenseFrom(r, c, vals, opts...)
	require.NoError(tb, err)

	return m
}

// seq builds an arithmetic selector or fails the test.
func seq(tb testing.TB, first, size int, opts ...index.SeqOption) *index.ArithmeticSeq {
	tb.Helper()
	s, err := index.Seq(first, size, opts...)
	require.NoError(tb, err)

	return s
}

// borrow builds a borrowed view or fails the test.
func borrow(tb testing.TB, xpr matrix.Expr, rows, cols index.Selector) *indexed.View {
	tb.Helper()
	v, err := indexed.Borrow(xpr, rows, cols)
	require.NoError(tb, err)

	return v
}

// requireInvariant checks View(E,R,C).Coeff(i,j) == E.Coeff(R[i],C[j]) for
// every coordinate, through the chosen evaluator, the gather evaluator and At.
func requireInvariant(tb testing.TB, v *indexed.View) {
	tb.Helper()
	nested := v.NestedExpression().Evaluator()
	chosen := v.Evaluator()
	gather := indexed.NewGatherEvaluator(v)
	var i, j int
	for i = 0; i < v.Rows(); i++ {
		for j = 0; j < v.Cols(); j++ {
			want := nested.Coeff(v.RowIndices().At(i), v.ColIndices().At(j))
			require.Equal(tb, want, chosen.Coeff(i, j), "chosen (%d,%d)", i, j)
			require.Equal(tb, want, gather.Coeff(i, j), "gather (%d,%d)", i, j)
			got, err := v.At(i, j)
			require.NoError(tb, err)
			require.Equal(tb, want, got, "At (%d,%d)", i, j)
		}
	}
}

// fakeExpr is a non-Dense expression with a configurable read cost.
type fakeExpr struct {
	rows, cols int
	cost       int
	flags      matrix.Flags // added to EvalBeforeNestingBit
}

func (f fakeExpr) Rows() int { return f.rows }
func (f fakeExpr) Cols() int { return f.cols }
func (f fakeExpr) Traits() matrix.Traits {
	return matrix.Traits{
		Rows: matrix.Dynamic, Cols: matrix.Dynamic,
		MaxRows: matrix.Dynamic, MaxCols: matrix.Dynamic,
		InnerStride: matrix.Dynamic, OuterStride: matrix.Dynamic,
		Flags: matrix.EvalBeforeNestingBit | f.flags,
	}
}
func (f fakeExpr) Evaluator() matrix.Evaluator { return fakeEvaluator{f} }

type fakeEvaluator struct{ f fakeExpr }

func (e fakeEvaluator) Coeff(row, col int) float64 { return float64(100*row + col) }
func (e fakeEvaluator) CoeffReadCost() int         { return e.f.cost }
func (e fakeEvaluator) Flags() matrix.Flags        { return matrix.EvalBeforeNestingBit | e.f.flags }
