// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Bridge to gonum: real mat.Matrix and complex mat.CMatrix in, *mat.CDense out.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Flatten: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []complex128
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewFromData creates an r×c matrix from row-major data. The slice is copied,
// so later writes to data do not alias the matrix.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shape.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func NewFromData(rows, cols int, data []complex128) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromData: len %d for %dx%d: %w", len(data), rows, cols, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// NewIdentity returns I_n.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromReal promotes a real gonum matrix to a complex Dense with zero
// imaginary parts. Used by generators that build their operators with
// real arithmetic.
func FromReal(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("FromReal: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromReal: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = complex(a.At(i, j), 0)
		}
	}

	return m, nil
}

// FromCMatrix copies any gonum complex matrix into a Dense.
func FromCMatrix(a mat.CMatrix) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("FromCMatrix: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromCMatrix: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = a.At(i, j)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Len returns the number of stored elements, rows*cols. Coordinate vectors
// are interpreted through this flattened length.
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() Matrix { return m.copyDense() }

// copyDense is Clone with the concrete type preserved.
func (m *Dense) copyDense() *Dense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Flatten returns a row-major copy of the elements. This is the column a
// basis element contributes to a design matrix, and the positional reading
// of a coordinate vector.
func (m *Dense) Flatten() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// CDense exports the matrix as a gonum *mat.CDense (copy).
func (m *Dense) CDense() *mat.CDense {
	return mat.NewCDense(m.r, m.c, m.Flatten())
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%.4g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
