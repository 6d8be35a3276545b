// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures (Pauli matrices) and utilities.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lielath/matrix"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback path in kernels.
type hide struct{ matrix.Matrix }

// MustFromData builds an r×c *Dense from row-major data or fails the test.
func MustFromData(t *testing.T, r, c int, data ...complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// pauli returns σx, σy, σz.
func pauli(t *testing.T) (x, y, z *matrix.Dense) {
	t.Helper()
	x = MustFromData(t, 2, 2, 0, 1, 1, 0)
	y = MustFromData(t, 2, 2, 0, -1i, 1i, 0)
	z = MustFromData(t, 2, 2, 1, 0, 0, -1)

	return x, y, z
}
