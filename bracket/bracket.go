package bracket

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/lielath/matrix"
	"github.com/katalvlaran/lielath/structure"
)

// Option configures the bracket evaluators.
type Option = matrix.Option

// WithTolerance sets the magnitude at or below which a single contribution
// la_i·lb_j·c is skipped. Panics on negative, NaN or infinite eps.
func WithTolerance(eps float64) Option { return matrix.WithTolerance(eps) }

func validate(la, lb *matrix.Dense, table *structure.Table) error {
	if table == nil {
		return fmt.Errorf("bracket: nil table: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateCoordinates(la, table.Size()); err != nil {
		return fmt.Errorf("bracket: left operand: %w", err)
	}
	if err := matrix.ValidateCoordinates(lb, table.Size()); err != nil {
		return fmt.Errorf("bracket: right operand: %w", err)
	}

	return nil
}

// combine accumulates Σ la_i·lb_j·c(i,j,k) into a flat coefficient slice.
func combine(la, lb *matrix.Dense, table *structure.Table, tol float64) []complex128 {
	a, b := la.Flatten(), lb.Flatten()
	out := make([]complex128, table.Size())
	for _, p := range table.Pairs() {
		w := a[p.I] * b[p.J]
		for _, term := range table.Terms(p.I, p.J) {
			if v := w * term.Value; cmplx.Abs(v) > tol {
				out[term.K] += v
			}
		}
	}

	return out
}

func coordinates(la, lb *matrix.Dense, table *structure.Table, opts []Option) (*matrix.Dense, error) {
	if err := validate(la, lb, table); err != nil {
		return nil, err
	}
	if table.Size() == 0 {
		return nil, fmt.Errorf("bracket: empty table: %w", matrix.ErrDimensionMismatch)
	}
	coeffs := combine(la, lb, table, matrix.Resolve(opts...).Tolerance())

	return matrix.NewFromData(la.Rows(), la.Cols(), coeffs)
}

func reconstruct(la, lb *matrix.Dense, table *structure.Table, basis []*matrix.Dense, opts []Option) (*matrix.Dense, error) {
	if err := validate(la, lb, table); err != nil {
		return nil, err
	}
	if len(basis) != table.Size() {
		return nil, fmt.Errorf("bracket: basis of %d elements against table of %d: %w",
			len(basis), table.Size(), matrix.ErrDimensionMismatch)
	}
	if _, err := matrix.ValidateBasis(basis); err != nil {
		return nil, fmt.Errorf("bracket: %w", err)
	}
	if len(basis) == 0 {
		return nil, fmt.Errorf("bracket: empty basis: %w", matrix.ErrDimensionMismatch)
	}

	tol := matrix.Resolve(opts...).Tolerance()
	coeffs := combine(la, lb, table, tol)
	out, err := matrix.ZerosLike(basis[0])
	if err != nil {
		return nil, err
	}
	// Contributions that cancel down to tol leave no trace in the matrix.
	for k, v := range coeffs {
		if cmplx.Abs(v) <= tol {
			continue
		}
		if err = matrix.AddScaled(out, v, basis[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Cross returns the coordinates of [A, B] for A, B with coordinates la, lb,
// given structure constants f. The result has the shape of la.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil operand or table.
//   - matrix.ErrDimensionMismatch if a flattened operand length differs
//     from f.Size() or f is empty.
func Cross(la, lb *matrix.Dense, f *structure.Table, opts ...Option) (*matrix.Dense, error) {
	return coordinates(la, lb, f, opts)
}

// Dot returns the in-span coordinates of {A, B} given d-coefficients d.
// Errors as Cross.
func Dot(la, lb *matrix.Dense, d *structure.Table, opts ...Option) (*matrix.Dense, error) {
	return coordinates(la, lb, d, opts)
}

// Commutator returns the matrix [A, B] = Σ_k Cross(la, lb, f)_k · T_k.
//
// Errors: as Cross, plus matrix.ErrDimensionMismatch if len(basis) differs
// from f.Size() and the basis validation errors of matrix.ValidateBasis.
func Commutator(la, lb *matrix.Dense, f *structure.Table, basis []*matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	return reconstruct(la, lb, f, basis, opts)
}

// Anticommutator returns Σ_k Dot(la, lb, d)_k · T_k, the in-span part of
// {A, B}. Errors as Commutator.
func Anticommutator(la, lb *matrix.Dense, d *structure.Table, basis []*matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	return reconstruct(la, lb, d, basis, opts)
}
