// SPDX-License-Identifier: MIT
// Package matrix provides the algebra kernels the Lie machinery is built on:
// element-wise addition and subtraction, scaling, matrix product (gonum
// cblas128 GEMM), conjugate transpose, commutator and anticommutator.
// All kernels perform fail-fast validation and allocate a fresh result;
// operands are never mutated (AddScaled is the single in-place exception).

package matrix

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/floats/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opScale          = "Scale"
	opMul            = "Mul"
	opConjTranspose  = "ConjTranspose"
	opCommutator     = "Commutator"
	opAnticommutator = "Anticommutator"
	opAddScaled      = "AddScaled"
	opTrace          = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through the interface (fallback path).
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v complex128
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// general views d as a cblas128 operand without copying.
func general(d *Dense) cblas128.General {
	return cblas128.General{Rows: d.r, Cols: d.c, Data: d.data, Stride: d.c}
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense{r: da.r, c: da.c, data: make([]complex128, len(da.data))}
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum a + b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the element-wise difference a − b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m.
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: dm.r, c: dm.c, data: make([]complex128, len(dm.data))}
	for idx, v := range dm.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// AddScaled accumulates dst += alpha*x in place. It is the accumulation
// primitive of the bracket operators, which sum many scaled basis elements
// into one running result.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AddScaled(dst *Dense, alpha complex128, x Matrix) error {
	if dst == nil {
		return matrixErrorf(opAddScaled, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(dst, x); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	dx, err := asDense(x)
	if err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	for idx, v := range dx.data {
		dst.data[idx] += alpha * v
	}

	return nil
}

// Mul computes the matrix product a×b through gonum's cblas128 GEMM.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d by %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := &Dense{r: da.r, c: db.c, data: make([]complex128, da.r*db.c)}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, general(da), general(db), 0, general(res))

	return res, nil
}

// bracket computes a·b + sign·b·a for square operands of equal size.
func bracket(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense{r: da.r, c: da.c, data: make([]complex128, len(da.data))}
	out := general(res)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, general(da), general(db), 0, out)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, sign, general(db), general(da), 1, out)

	return res, nil
}

// Commutator returns [a,b] = ab − ba.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNonSquare.
func Commutator(a, b Matrix) (*Dense, error) { return bracket(a, b, -1, opCommutator) }

// Anticommutator returns {a,b} = ab + ba.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNonSquare.
func Anticommutator(a, b Matrix) (*Dense, error) { return bracket(a, b, 1, opAnticommutator) }

// ConjTranspose returns m† (conjugate transpose).
func ConjTranspose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	res := &Dense{r: dm.c, c: dm.r, data: make([]complex128, len(dm.data))}
	for i := 0; i < dm.r; i++ {
		for j := 0; j < dm.c; j++ {
			res.data[j*res.c+i] = cmplx.Conj(dm.data[i*dm.c+j])
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] of a square matrix.
func Trace(m Matrix) (complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var tr complex128
	for i := 0; i < dm.r; i++ {
		tr += dm.data[i*dm.c+i]
	}

	return tr, nil
}

// EqualApprox reports whether a and b have the same shape and every pair of
// entries agrees within eps in both real and imaginary parts.
func EqualApprox(a, b Matrix, eps float64) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for idx, v := range da.data {
		w := db.data[idx]
		if !scalar.EqualWithinAbs(real(v), real(w), eps) || !scalar.EqualWithinAbs(imag(v), imag(w), eps) {
			return false
		}
	}

	return true
}

// IsHermitian reports whether m == m† within eps.
func IsHermitian(m Matrix, eps float64) bool {
	return hermitianWithSign(m, 1, eps)
}

// IsAntiHermitian reports whether m == −m† within eps. The Gell-Mann
// generator produces this convention.
func IsAntiHermitian(m Matrix, eps float64) bool {
	return hermitianWithSign(m, -1, eps)
}

func hermitianWithSign(m Matrix, sign complex128, eps float64) bool {
	if ValidateSquareNonNil(m) != nil {
		return false
	}
	h, err := ConjTranspose(m)
	if err != nil {
		return false
	}
	h, err = Scale(h, sign)
	if err != nil {
		return false
	}

	return EqualApprox(m, h, eps)
}
