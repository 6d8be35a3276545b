// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set shared by the whole module.
// Generators, solvers and bracket operators return (possibly wrapped) values
// of these sentinels; callers match them with errors.Is. No exported function
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites add
// context with fmt.Errorf("ctx: %w", ErrX); errors.Is still matches.

var (
	// ErrInvalidParameter is returned when a generator parameter is out of its
	// domain: a dimension below one or a spin that is not a non-negative
	// multiple of one half.
	ErrInvalidParameter = errors.New("matrix: invalid parameter")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// basis elements of differing size, or a coordinate vector whose length
	// does not match the basis.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
