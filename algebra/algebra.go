// SPDX-License-Identifier: MIT

package algebra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lielath/bracket"
	"github.com/katalvlaran/lielath/gellmann"
	"github.com/katalvlaran/lielath/matrix"
	"github.com/katalvlaran/lielath/spherical"
	"github.com/katalvlaran/lielath/spin"
	"github.com/katalvlaran/lielath/structure"
	"github.com/katalvlaran/lielath/sylvester"
)

// Algebra is an immutable basis together with its coefficient tables.
type Algebra struct {
	name  string
	n     int
	basis []*matrix.Dense
	f     *structure.Table
	d     *structure.Table
	opts  []structure.Option
}

// New builds an algebra over a copy of basis. name is used by String; an
// empty name yields "algebra".
//
// Errors: those of structure.StructureConstants and structure.DCoefficients,
// except degeneracies, which are kept on the tables.
func New(name string, basis []*matrix.Dense, opts ...structure.Option) (*Algebra, error) {
	n, err := matrix.ValidateBasis(basis)
	if err != nil {
		return nil, fmt.Errorf("algebra: %w", err)
	}
	if name == "" {
		name = "algebra"
	}
	own := cloneBasis(basis)

	f, err := structure.StructureConstants(own, opts...)
	if err = tolerateDegenerate(err); err != nil {
		return nil, fmt.Errorf("algebra: %s: %w", name, err)
	}
	d, err := structure.DCoefficients(own, opts...)
	if err = tolerateDegenerate(err); err != nil {
		return nil, fmt.Errorf("algebra: %s: %w", name, err)
	}

	return &Algebra{name: name, n: n, basis: own, f: f, d: d, opts: opts}, nil
}

// tolerateDegenerate drops the strict-mode degeneracy error.
func tolerateDegenerate(err error) error {
	if errors.Is(err, structure.ErrDegenerateDecomposition) {
		return nil
	}

	return err
}

func cloneBasis(basis []*matrix.Dense) []*matrix.Dense {
	out := make([]*matrix.Dense, len(basis))
	for i, b := range basis {
		out[i] = b.Clone().(*matrix.Dense)
	}

	return out
}

// NewSU returns su(d) over the anti-Hermitian generalized Gell-Mann basis.
func NewSU(d int, opts ...structure.Option) (*Algebra, error) {
	basis, err := gellmann.Basis(d)
	if err != nil {
		return nil, err
	}

	return New(fmt.Sprintf("su(%d)", d), basis, opts...)
}

// NewSylvester returns su(d) over the clock-shift basis.
func NewSylvester(d int, opts ...structure.Option) (*Algebra, error) {
	basis, err := sylvester.Basis(d)
	if err != nil {
		return nil, err
	}

	return New(fmt.Sprintf("su(%d) sylvester", d), basis, opts...)
}

// NewSpherical returns the algebra over the Hermitian spherical tensor basis
// of spin j, n = 2j+1. Its rank ≥ 2 diagonal elements are not traceless.
func NewSpherical(j float64, opts ...structure.Option) (*Algebra, error) {
	basis, err := spherical.Basis(j)
	if err != nil {
		return nil, err
	}

	n, err := spin.HalfInteger(j)
	if err != nil {
		return nil, err
	}

	return New(fmt.Sprintf("spherical(%d)", n), basis, opts...)
}

// Name returns the algebra's display name, e.g. "su(3)".
func (a *Algebra) Name() string { return a.name }

// Dim returns the number of basis elements.
func (a *Algebra) Dim() int { return len(a.basis) }

// N returns the size of the n×n basis matrices (0 for an empty basis).
func (a *Algebra) N() int { return a.n }

// Basis returns a copy of the basis.
func (a *Algebra) Basis() []*matrix.Dense { return cloneBasis(a.basis) }

// StructureConstants returns the commutator table.
func (a *Algebra) StructureConstants() *structure.Table { return a.f }

// DCoefficients returns the anticommutator table.
func (a *Algebra) DCoefficients() *structure.Table { return a.d }

// Degenerate returns the degenerate commutator pairs.
func (a *Algebra) Degenerate() []structure.Degeneracy { return a.f.Degenerate() }

// Coordinates decomposes m over the basis and returns the coordinate column
// with the residual norm; a residual above tolerance means m lies outside
// the algebra.
func (a *Algebra) Coordinates(m *matrix.Dense) (*matrix.Dense, float64, error) {
	return structure.Decompose(a.basis, m, a.opts...)
}

// Matrix returns Σ_k coords_k·T_k.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for coordinates whose
//     flattened length is not Dim.
func (a *Algebra) Matrix(coords *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateCoordinates(coords, len(a.basis)); err != nil {
		return nil, fmt.Errorf("algebra: Matrix: %w", err)
	}
	out, err := matrix.ZerosLike(a.basis[0])
	if err != nil {
		return nil, err
	}
	for k, v := range coords.Flatten() {
		if err = matrix.AddScaled(out, v, a.basis[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Commutator returns the matrix [A, B] from coordinates.
func (a *Algebra) Commutator(la, lb *matrix.Dense, opts ...bracket.Option) (*matrix.Dense, error) {
	return bracket.Commutator(la, lb, a.f, a.basis, opts...)
}

// Anticommutator returns the in-span part of {A, B} from coordinates.
func (a *Algebra) Anticommutator(la, lb *matrix.Dense, opts ...bracket.Option) (*matrix.Dense, error) {
	return bracket.Anticommutator(la, lb, a.d, a.basis, opts...)
}

// Cross returns the coordinates of [A, B].
func (a *Algebra) Cross(la, lb *matrix.Dense, opts ...bracket.Option) (*matrix.Dense, error) {
	return bracket.Cross(la, lb, a.f, opts...)
}

// Dot returns the coordinates of the in-span part of {A, B}.
func (a *Algebra) Dot(la, lb *matrix.Dense, opts ...bracket.Option) (*matrix.Dense, error) {
	return bracket.Dot(la, lb, a.d, opts...)
}

// String implements fmt.Stringer.
func (a *Algebra) String() string {
	return fmt.Sprintf("%s; basis size: %d", a.name, len(a.basis))
}
