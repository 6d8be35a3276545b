// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lielath/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateBasis(t *testing.T) {
	t.Parallel()

	sq := func(n int) *matrix.Dense {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		return m
	}
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		basis   []*matrix.Dense
		wantN   int
		wantErr error
	}{
		{"empty", nil, 0, nil},
		{"uniform 3x3", []*matrix.Dense{sq(3), sq(3)}, 3, nil},
		{"nil element", []*matrix.Dense{sq(2), nil}, 0, matrix.ErrNilMatrix},
		{"non-square", []*matrix.Dense{rect}, 0, matrix.ErrNonSquare},
		{"mixed sizes", []*matrix.Dense{sq(2), sq(3)}, 0, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			n, err := matrix.ValidateBasis(tc.basis)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.wantN, n)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	t.Parallel()

	col, err := matrix.NewColumn([]complex128{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateCoordinates(col, 3))
	require.ErrorIs(t, matrix.ValidateCoordinates(col, 4), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateCoordinates(nil, 3), matrix.ErrNilMatrix)
}

func TestWithTolerance(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.DefaultTolerance, matrix.Resolve().Tolerance())
	require.Equal(t, 1e-3, matrix.Resolve(matrix.WithTolerance(1e-3)).Tolerance())
	require.Equal(t, matrix.DefaultTolerance, matrix.Resolve(nil).Tolerance())

	require.Panics(t, func() { matrix.WithTolerance(-1) })
}
