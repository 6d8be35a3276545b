// SPDX-License-Identifier: MIT

package structure

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lielath/matrix"
)

type bracketKind int

const (
	commutatorKind bracketKind = iota
	anticommutatorKind
)

func (k bracketKind) String() string {
	if k == anticommutatorKind {
		return "d-coefficients"
	}

	return "structure constants"
}

func (k bracketKind) apply(a, b *matrix.Dense) (*matrix.Dense, error) {
	if k == anticommutatorKind {
		return matrix.Anticommutator(a, b)
	}

	return matrix.Commutator(a, b)
}

// partners lists the j solved for row i; commutators skip j = i.
func (k bracketKind) partners(i, size int) []int {
	js := make([]int, 0, size)
	for j := 0; j < size; j++ {
		if j == i && k == commutatorKind {
			continue
		}
		js = append(js, j)
	}

	return js
}

// StructureConstants returns f with [T_i, T_j] = Σ_k f(i,j,k) T_k for every
// ordered pair i ≠ j whose commutator is numerically nonzero.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
//     for an invalid basis.
//   - ErrRankDeficient if the basis is not linearly independent.
//   - *DegenerateError (with the table) under WithStrict.
func StructureConstants(basis []*matrix.Dense, opts ...Option) (*Table, error) {
	return solve(basis, commutatorKind, gatherOptions(opts))
}

// DCoefficients returns d with {T_i, T_j} = Σ_k d(i,j,k) T_k for every
// ordered pair, i = j included. Components outside the span of the basis
// (such as the identity part of an anticommutator over a traceless basis)
// are dropped by the least-squares fit.
//
// Errors: as StructureConstants.
func DCoefficients(basis []*matrix.Dense, opts ...Option) (*Table, error) {
	return solve(basis, anticommutatorKind, gatherOptions(opts))
}

// Decompose returns the coordinates x (a size×1 column) minimizing
// ‖m − Σ_k x_k T_k‖ together with that residual Frobenius norm. Coordinates
// at or below the tolerance are set to zero.
//
// Errors:
//   - matrix.ErrDimensionMismatch for an empty basis or a shape mismatch.
//   - ErrRankDeficient if the basis is not linearly independent.
func Decompose(basis []*matrix.Dense, m *matrix.Dense, opts ...Option) (*matrix.Dense, float64, error) {
	o := gatherOptions(opts)
	n, err := matrix.ValidateBasis(basis)
	if err != nil {
		return nil, 0, fmt.Errorf("structure: Decompose: %w", err)
	}
	if len(basis) == 0 {
		return nil, 0, fmt.Errorf("structure: Decompose: empty basis: %w", matrix.ErrDimensionMismatch)
	}
	if err = matrix.ValidateSquareNonNil(m); err != nil {
		return nil, 0, fmt.Errorf("structure: Decompose: %w", err)
	}
	if m.Rows() != n {
		return nil, 0, fmt.Errorf("structure: Decompose: %dx%d against basis of %dx%d: %w",
			m.Rows(), m.Cols(), n, n, matrix.ErrDimensionMismatch)
	}

	d := newDesign(basis, n)
	qr, err := d.factorize()
	if err != nil {
		return nil, 0, err
	}
	b := mat.NewDense(2*d.n2, 1, nil)
	d.loadColumn(b, 0, m)
	x, err := solveTo(qr, b)
	if err != nil {
		return nil, 0, err
	}

	tol := o.numeric.Tolerance()
	coords, err := matrix.NewDense(d.size, 1)
	if err != nil {
		return nil, 0, err
	}
	recon, err := matrix.ZerosLike(m)
	if err != nil {
		return nil, 0, err
	}
	for k := 0; k < d.size; k++ {
		v := d.coefficient(x, 0, k)
		if cmplx.Abs(v) <= tol {
			continue
		}
		_ = coords.Set(k, 0, v)
		if err = matrix.AddScaled(recon, v, basis[k]); err != nil {
			return nil, 0, err
		}
	}
	diff, err := matrix.Sub(m, recon)
	if err != nil {
		return nil, 0, err
	}

	return coords, frobenius(diff), nil
}

func frobenius(m *matrix.Dense) float64 {
	var sum float64
	for _, v := range m.Flatten() {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(sum)
}

// design is the real embedding of the basis: column k holds vec(T_k) and
// column size+k holds vec(i·T_k).
type design struct {
	a    *mat.Dense
	n2   int
	size int
}

func newDesign(basis []*matrix.Dense, n int) *design {
	n2, s := n*n, len(basis)
	a := mat.NewDense(2*n2, 2*s, nil)
	for k, el := range basis {
		for p, v := range el.Flatten() {
			re, im := real(v), imag(v)
			a.Set(p, k, re)
			a.Set(n2+p, k, im)
			a.Set(p, s+k, -im)
			a.Set(n2+p, s+k, re)
		}
	}

	return &design{a: a, n2: n2, size: s}
}

// rankTolerance bounds |R_kk| / max|R_kk| for an independent basis.
const rankTolerance = 1e-10

func (d *design) factorize() (*mat.QR, error) {
	var qr mat.QR
	qr.Factorize(d.a)
	if c := qr.Cond(); math.IsNaN(c) || c > mat.ConditionTolerance {
		return nil, fmt.Errorf("%w: condition number %g", ErrRankDeficient, c)
	}

	var r mat.Dense
	qr.RTo(&r)
	var lo, hi float64
	for k := 0; k < 2*d.size; k++ {
		v := math.Abs(r.At(k, k))
		if k == 0 || v < lo {
			lo = v
		}
		hi = math.Max(hi, v)
	}
	if hi <= 0 || lo <= rankTolerance*hi {
		return nil, fmt.Errorf("%w: |R| diagonal spans [%g, %g]", ErrRankDeficient, lo, hi)
	}

	return &qr, nil
}

// loadColumn writes the real embedding of m into column c of b.
func (d *design) loadColumn(b *mat.Dense, c int, m *matrix.Dense) {
	for p, v := range m.Flatten() {
		b.Set(p, c, real(v))
		b.Set(d.n2+p, c, imag(v))
	}
}

// coefficient reads x_k of solution column c.
func (d *design) coefficient(x *mat.Dense, c, k int) complex128 {
	return complex(x.At(k, c), x.At(d.size+k, c))
}

// terms returns the components of solution column c above tol, by k.
func (d *design) terms(x *mat.Dense, c int, tol float64) []Term {
	var out []Term
	for k := 0; k < d.size; k++ {
		if v := d.coefficient(x, c, k); cmplx.Abs(v) > tol {
			out = append(out, Term{K: k, Value: v})
		}
	}

	return out
}

func solveTo(qr *mat.QR, b *mat.Dense) (*mat.Dense, error) {
	var x mat.Dense
	if err := qr.SolveTo(&x, false, b); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrRankDeficient, err)
		}

		return nil, err
	}

	return &x, nil
}

type rowEntry struct {
	j     int
	terms []Term
}

// solveRow decomposes the brackets of T_i with every partner in one
// multi-column solve.
func (d *design) solveRow(qr *mat.QR, basis []*matrix.Dense, i int, kind bracketKind, tol float64) ([]rowEntry, error) {
	js := kind.partners(i, d.size)
	if len(js) == 0 {
		return nil, nil
	}

	b := mat.NewDense(2*d.n2, len(js), nil)
	for c, j := range js {
		br, err := kind.apply(basis[i], basis[j])
		if err != nil {
			return nil, fmt.Errorf("structure: row %d, column %d: %w", i, j, err)
		}
		d.loadColumn(b, c, br)
	}
	x, err := solveTo(qr, b)
	if err != nil {
		return nil, fmt.Errorf("structure: row %d: %w", i, err)
	}

	var out []rowEntry
	for c, j := range js {
		if terms := d.terms(x, c, tol); len(terms) > 0 {
			out = append(out, rowEntry{j: j, terms: terms})
		}
	}

	return out, nil
}

func solve(basis []*matrix.Dense, kind bracketKind, o Options) (*Table, error) {
	n, err := matrix.ValidateBasis(basis)
	if err != nil {
		return nil, fmt.Errorf("structure: %s: %w", kind, err)
	}
	size := len(basis)
	t := newTable(kind.String(), size)
	if size == 0 {
		return t, nil
	}

	d := newDesign(basis, n)
	first, err := d.factorize()
	if err != nil {
		return nil, fmt.Errorf("structure: %s: %w", kind, err)
	}

	workers := min(o.workers, size)
	tol := o.numeric.Tolerance()
	o.logger.Debug("solving", "kind", kind, "n", n, "size", size, "workers", workers)

	rows := make([][]rowEntry, size)
	g, ctx := errgroup.WithContext(context.Background())
	next := make(chan int)
	g.Go(func() error {
		defer close(next)
		for i := 0; i < size; i++ {
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})
	for w := 0; w < workers; w++ {
		w := w
		qr := first
		g.Go(func() error {
			// Each worker solves against its own factorization.
			if w > 0 {
				var err error
				if qr, err = d.factorize(); err != nil {
					return err
				}
			}
			for i := range next {
				entries, err := d.solveRow(qr, basis, i, kind, tol)
				if err != nil {
					return err
				}
				rows[i] = entries
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("structure: %s: %w", kind, err)
	}

	for i, entries := range rows {
		for _, e := range entries {
			p := Pair{I: i, J: e.j}
			t.put(p, e.terms)
			if len(e.terms) > 1 {
				t.degenerate = append(t.degenerate, Degeneracy{Pair: p, Terms: e.terms})
				o.logger.Debug("degenerate decomposition", "kind", kind, "i", i, "j", e.j, "terms", len(e.terms))
			}
		}
	}
	if len(t.degenerate) > 0 {
		o.logger.Warn("degenerate decompositions", "kind", kind, "pairs", len(t.degenerate), "entries", t.Len())
	}
	if o.strict {
		return t, t.Err()
	}

	return t, nil
}
