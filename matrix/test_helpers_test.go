// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense/Block tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvindex/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err)

	return m
}

// IotaDense RETURNS an r×c matrix with m[i][j] = i*c + j.
// Values are given in row-major reading order regardless of the storage order.
func IotaDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = float64(k)
	}
	m, err := matrix.NewDenseFrom(r, c, vals, opts...)
	require.NoError(t, err)

	return m
}
