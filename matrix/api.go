// SPDX-License-Identifier: MIT
// Package matrix: public constructor facades for coordinate vectors.
//
// Purpose:
//   - A coordinate vector is a matrix-shaped container whose flattened
//     entries are the coefficients of each basis element. These helpers build
//     the canonical column shape so callers don't hand-roll it.

package matrix

import "fmt"

// NewColumn returns a len(coords)×1 column vector holding coords (copied).
//
// Errors: ErrInvalidDimensions when coords is empty.
func NewColumn(coords []complex128) (*Dense, error) {
	m, err := NewFromData(len(coords), 1, coords)
	if err != nil {
		return nil, fmt.Errorf("NewColumn: %w", err)
	}

	return m, nil
}

// NewIndicator returns the size×1 column vector e_k (1 at k, 0 elsewhere),
// the coordinates of the k-th basis element.
//
// Errors: ErrInvalidDimensions (size<=0), ErrOutOfRange (k outside [0,size)).
func NewIndicator(size, k int) (*Dense, error) {
	m, err := NewDense(size, 1)
	if err != nil {
		return nil, fmt.Errorf("NewIndicator: %w", err)
	}
	if err = m.Set(k, 0, 1); err != nil {
		return nil, fmt.Errorf("NewIndicator: %w", err)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ZerosLike: %w", err)
	}

	return NewDense(m.Rows(), m.Cols())
}
