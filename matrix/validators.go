// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels, solvers and bracket operators minimal by delegating
//    shape/nil checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateBasis checks that every element of basis is a non-nil square
// matrix and that all elements share the same size n, which it returns.
// An empty basis is valid and reports n = 0.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (mixed sizes).
func ValidateBasis(basis []*Dense) (int, error) {
	n := 0
	for idx, b := range basis {
		if err := ValidateSquareNonNil(b); err != nil {
			return 0, validatorErrorf(fmt.Sprintf("ValidateBasis: element %d", idx), err)
		}
		if idx == 0 {
			n = b.Rows()
			continue
		}
		if b.Rows() != n {
			return 0, validatorErrorf(
				fmt.Sprintf("ValidateBasis: element %d is %dx%d, want %dx%d", idx, b.Rows(), b.Cols(), n, n),
				ErrDimensionMismatch,
			)
		}
	}

	return n, nil
}

// ValidateCoordinates checks that the coordinate vector v is non-nil and
// that its flattened length equals size.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateCoordinates(v *Dense, size int) error {
	if v == nil {
		return validatorErrorf("ValidateCoordinates", ErrNilMatrix)
	}
	if v.Len() != size {
		return validatorErrorf(
			fmt.Sprintf("ValidateCoordinates: length %d, want %d", v.Len(), size),
			ErrDimensionMismatch,
		)
	}

	return nil
}
