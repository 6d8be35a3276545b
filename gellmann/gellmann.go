package gellmann

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lielath/matrix"
)

// Element returns the generalized Gell-Mann matrix g(j,k) of dimension d,
// with 1-based j, k. The pair (d,d) yields the identity, which Basis skips.
//
// Errors:
//   - matrix.ErrInvalidParameter if d < 1 or j, k lie outside [1, d].
func Element(j, k, d int) (*matrix.Dense, error) {
	if d < 1 {
		return nil, fmt.Errorf("gellmann: d=%d must be >= 1: %w", d, matrix.ErrInvalidParameter)
	}
	if j < 1 || j > d || k < 1 || k > d {
		return nil, fmt.Errorf("gellmann: (j,k)=(%d,%d) outside [1,%d]: %w", j, k, d, matrix.ErrInvalidParameter)
	}

	if j == d && k == d {
		return matrix.NewIdentity(d)
	}

	g, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, err
	}
	switch {
	case j > k:
		_ = g.Set(j-1, k-1, 1)
		_ = g.Set(k-1, j-1, 1)
	case k > j:
		_ = g.Set(j-1, k-1, -1i)
		_ = g.Set(k-1, j-1, 1i)
	default:
		norm := complex(math.Sqrt(2/float64(j*(j+1))), 0)
		for n := 0; n < j; n++ {
			_ = g.Set(n, n, norm)
		}
		_ = g.Set(j, j, -complex(float64(j), 0)*norm)
	}

	return g, nil
}

// Basis returns the d²−1 anti-Hermitian basis i·g(j,k) of su(d), ordered
// with j outer and k inner (both 1..d), the identity excluded.
// d = 1 yields an empty basis.
//
// Errors:
//   - matrix.ErrInvalidParameter if d < 1.
func Basis(d int) ([]*matrix.Dense, error) {
	if d < 1 {
		return nil, fmt.Errorf("gellmann: d=%d must be >= 1: %w", d, matrix.ErrInvalidParameter)
	}

	basis := make([]*matrix.Dense, 0, d*d-1)
	for j := 1; j <= d; j++ {
		for k := 1; k <= d; k++ {
			if j == d && k == d {
				continue
			}
			g, err := Element(j, k, d)
			if err != nil {
				return nil, err
			}
			ig, err := matrix.Scale(g, 1i)
			if err != nil {
				return nil, err
			}
			basis = append(basis, ig)
		}
	}

	return basis, nil
}
