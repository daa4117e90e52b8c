// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvindex/matrix"
)

// 1) TestDefaultOptions_Documented verifies that gatherOptions() equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()

	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	require.Equal(t, matrix.DefaultOrder, o.Order)
	require.Equal(t, matrix.DefaultFixedShape, o.FixedShape)
	require.Equal(t, matrix.DefaultReadOnly, o.ReadOnly)
}

// 2) TestGatherOptions_OrderAndIdempotence ensures last-writer-wins and nil setters are skipped.
func TestGatherOptions_OrderAndIdempotence(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithColMajor(), matrix.WithRowMajor())
	require.Equal(t, matrix.RowMajor, o.Order)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), nil, matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf)
	require.Equal(t, matrix.DefaultOrder, o.Order)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithFixedShape(), matrix.WithReadOnly(), matrix.WithColMajor())
	require.True(t, o.FixedShape)
	require.True(t, o.ReadOnly)
	require.Equal(t, matrix.ColMajor, o.Order)
}

// 3) TestOptions_Effects checks that every option reaches Dense behavior.
func TestOptions_Effects(t *testing.T) {
	// numeric policy
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	loose := MustDense(t, 1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))

	// storage order: (0,1) is adjacent in row-major, one column away in col-major
	rm := MustDense(t, 3, 2)
	cm := MustDense(t, 3, 2, matrix.WithColMajor())
	require.Equal(t, 1, matrix.ExportedOffset(rm, 0, 1))
	require.Equal(t, 3, matrix.ExportedOffset(cm, 0, 1))
	require.Equal(t, 1, matrix.ExportedOffset(cm, 1, 0))

	// fixed shape
	require.Equal(t, matrix.Dynamic, rm.Traits().Rows)
	fx := MustDense(t, 3, 2, matrix.WithFixedShape(), matrix.WithColMajor())
	require.Equal(t, matrix.Fixed(3), fx.Traits().Rows)
	require.Equal(t, matrix.Fixed(3), fx.Traits().OuterStride)

	// read-only
	ro := MustDense(t, 1, 1, matrix.WithReadOnly())
	require.False(t, ro.Traits().IsLvalue())
	require.ErrorIs(t, ro.Set(0, 0, 1), matrix.ErrReadOnly)
}
