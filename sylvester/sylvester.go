package sylvester

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/lielath/matrix"
)

func checkDim(d int) error {
	if d < 1 {
		return fmt.Errorf("sylvester: d=%d must be >= 1: %w", d, matrix.ErrInvalidParameter)
	}

	return nil
}

// Shift returns the d×d cyclic shift X with X[(k+1) mod d, k] = 1.
func Shift(d int) (*matrix.Dense, error) {
	if err := checkDim(d); err != nil {
		return nil, err
	}
	x, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, err
	}
	for k := 0; k < d; k++ {
		_ = x.Set((k+1)%d, k, 1)
	}

	return x, nil
}

// DFT returns the unitary discrete Fourier matrix F[j,k] = ω^{jk}/√d,
// assembled column by column from gonum's unnormalized inverse transform
// of the unit vectors.
func DFT(d int) (*matrix.Dense, error) {
	if err := checkDim(d); err != nil {
		return nil, err
	}
	f, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, err
	}

	fft := fourier.NewCmplxFFT(d)
	norm := complex(1/math.Sqrt(float64(d)), 0)
	unit := make([]complex128, d)
	col := make([]complex128, d)
	for k := 0; k < d; k++ {
		clear(unit)
		unit[k] = 1
		fft.Sequence(col, unit)
		for j, v := range col {
			_ = f.Set(j, k, v*norm)
		}
	}

	return f, nil
}

// Clock returns Z = F·X·F† = diag(1, ω, …, ω^{d−1}).
func Clock(d int) (*matrix.Dense, error) {
	f, err := DFT(d)
	if err != nil {
		return nil, err
	}
	x, err := Shift(d)
	if err != nil {
		return nil, err
	}
	fh, err := matrix.ConjTranspose(f)
	if err != nil {
		return nil, err
	}
	fx, err := matrix.Mul(f, x)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(fx, fh)
}

// powers returns m^0 … m^{d−1}.
func powers(m *matrix.Dense, d int) ([]*matrix.Dense, error) {
	id, err := matrix.NewIdentity(d)
	if err != nil {
		return nil, err
	}
	out := make([]*matrix.Dense, d)
	out[0] = id
	for p := 1; p < d; p++ {
		if out[p], err = matrix.Mul(out[p-1], m); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Basis returns Z^a·X^b for a outer and b inner in [0, d), skipping (0,0)
// unless WithIdentity is given: d²−1 elements (su(d)) or d² (u(d)).
//
// Errors:
//   - matrix.ErrInvalidParameter if d < 1.
func Basis(d int, opts ...Option) ([]*matrix.Dense, error) {
	if err := checkDim(d); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	z, err := Clock(d)
	if err != nil {
		return nil, err
	}
	x, err := Shift(d)
	if err != nil {
		return nil, err
	}
	zp, err := powers(z, d)
	if err != nil {
		return nil, err
	}
	xp, err := powers(x, d)
	if err != nil {
		return nil, err
	}

	basis := make([]*matrix.Dense, 0, d*d)
	for a := 0; a < d; a++ {
		for b := 0; b < d; b++ {
			if a == 0 && b == 0 && !o.Identity {
				continue
			}
			el, err := matrix.Mul(zp[a], xp[b])
			if err != nil {
				return nil, err
			}
			basis = append(basis, el)
		}
	}

	return basis, nil
}
