// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvindex/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromLength ensures a value count mismatch is reported as ErrBadShape.
func TestNewDenseFromLength(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetPolicies covers the numeric and read-only policies.
func TestSetPolicies(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	relaxed := MustDense(t, 2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))

	ro := MustDense(t, 2, 2, matrix.WithReadOnly())
	require.ErrorIs(t, ro.Set(0, 0, 1), matrix.ErrReadOnly)
	require.False(t, ro.Traits().IsLvalue())
}

// TestStorageOrderKeepsLogicalLayout checks that both orders expose the same (i,j) values.
func TestStorageOrderKeepsLogicalLayout(t *testing.T) {
	rm := IotaDense(t, 3, 4)
	cm := IotaDense(t, 3, 4, matrix.WithColMajor())

	require.Equal(t, matrix.RowMajor, rm.Order())
	require.Equal(t, matrix.ColMajor, cm.Order())
	require.True(t, matrix.Equal(rm, cm, 0))

	v, err := cm.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	// Raw layout differs: column-major buffer starts with column 0.
	da := cm.Evaluator().(matrix.DirectAccessor)
	require.Equal(t, []float64{0, 4, 8}, da.Data()[:3])
	rs, cs := matrix.AxisStrides(da)
	require.Equal(t, 1, rs)
	require.Equal(t, 3, cs)
}

// TestDenseTraits verifies the static description per option.
func TestDenseTraits(t *testing.T) {
	dyn := MustDense(t, 3, 5).Traits()
	require.Equal(t, matrix.Dynamic, dyn.Rows)
	require.Equal(t, matrix.Dynamic, dyn.MaxCols)
	require.Equal(t, matrix.Fixed(1), dyn.InnerStride)
	require.Equal(t, matrix.Dynamic, dyn.OuterStride)
	require.True(t, dyn.IsRowMajor())
	require.True(t, dyn.IsLvalue())
	require.True(t, dyn.HasDirectAccess())

	fixed := MustDense(t, 3, 5, matrix.WithFixedShape(), matrix.WithColMajor()).Traits()
	require.Equal(t, matrix.Fixed(3), fixed.Rows)
	require.Equal(t, matrix.Fixed(5), fixed.Cols)
	require.Equal(t, matrix.Fixed(3), fixed.OuterStride)
	require.Equal(t, matrix.ColMajor, fixed.Order())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4}, matrix.WithColMajor())
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestDoEarlyStop ensures the visitor runs in row-major order and stops on false.
func TestDoEarlyStop(t *testing.T) {
	m := IotaDense(t, 2, 3, matrix.WithColMajor())
	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 4
	})
	require.Equal(t, []float64{0, 1, 2, 3}, seen)
}

// TestFlagsString checks the diagnostic rendering of flag sets.
func TestFlagsString(t *testing.T) {
	require.Equal(t, "none", matrix.Flags(0).String())
	require.Equal(t, "RowMajor|Lvalue", (matrix.RowMajorBit | matrix.LvalueBit).String())
	require.Equal(t, "dynamic", matrix.Dynamic.String())
	require.Equal(t, "7", matrix.Fixed(7).String())
	require.Equal(t, matrix.Dynamic, matrix.Fixed(-3))
}
