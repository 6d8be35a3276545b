package spherical

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lielath/matrix"
	"github.com/katalvlaran/lielath/spin"
)

func cgPlus(r, u float64) float64 {
	return math.Sqrt((1+r+u)*(2+r+u)/((1+r)*(1+2*r))) / math.Sqrt2
}

func cgZero(r, u float64) float64 {
	return math.Sqrt((1 + r - u) * (1 + r + u) / ((1 + r) * (1 + 2*r)))
}

func cgMinus(r, u float64) float64 {
	return math.Sqrt((1 + r - u) * (2 + r - u) / (2 * (1 + r) * (1 + 2*r)))
}

// CG returns the coupling weight of a rank-r, projection-u operator with a
// rank-1 operator of projection la ∈ {+1, 0, −1}.
//
// Errors:
//   - matrix.ErrInvalidParameter for any other la.
func CG(r, u, la int) (float64, error) {
	rf, uf := float64(r), float64(u)
	switch la {
	case 1:
		return cgPlus(rf, uf), nil
	case 0:
		return cgZero(rf, uf), nil
	case -1:
		return cgMinus(rf, uf), nil
	default:
		return 0, fmt.Errorf("spherical: CG projection %d not in {-1,0,1}: %w", la, matrix.ErrInvalidParameter)
	}
}

// RankOne returns T(1,u) for u ∈ {+1, 0, −1}.
func RankOne(j float64, u int) (*mat.Dense, error) {
	switch u {
	case 0:
		return spin.Z(j)
	case 1, -1:
		x, err := spin.X(j)
		if err != nil {
			return nil, err
		}
		y, err := spin.Y(j)
		if err != nil {
			return nil, err
		}
		if u == 1 {
			x.Add(x, y)
			x.Scale(-1, x)
		} else {
			x.Sub(x, y)
		}
		return x, nil
	default:
		return nil, fmt.Errorf("spherical: rank-1 projection %d not in {-1,0,1}: %w", u, matrix.ErrInvalidParameter)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// ranks returns T(r,u) as ranks[r-1][u+r] for r = 1..n−1.
func ranks(j float64) ([][]*mat.Dense, int, error) {
	n, err := spin.HalfInteger(j)
	if err != nil {
		return nil, 0, err
	}
	if n < 2 {
		return nil, n, nil
	}

	var one [3]*mat.Dense // indexed by la+1
	for la := -1; la <= 1; la++ {
		if one[la+1], err = RankOne(j, la); err != nil {
			return nil, 0, err
		}
	}

	out := make([][]*mat.Dense, 0, n-1)
	out = append(out, one[:])
	for r := 2; r < n; r++ {
		prev := out[r-2]
		cur := make([]*mat.Dense, 2*r+1)
		for u := -r; u <= r; u++ {
			acc := mat.NewDense(n, n, nil)
			for i := u - 1; i <= u+1; i++ {
				if absInt(i) >= r {
					continue
				}
				la := u - i
				w, err := CG(r-1, i, la)
				if err != nil {
					return nil, 0, err
				}
				var p mat.Dense
				p.Mul(prev[i+r-1], one[la+1])
				p.Scale(w, &p)
				acc.Add(acc, &p)
			}
			cur[u+r] = acc
		}
		out = append(out, cur)
	}

	return out, n, nil
}

// Raw returns the real tensor operators T(r,u), ordered by rank r = 1..n−1
// and, within a rank, projection u = −r..r.
//
// Errors:
//   - matrix.ErrInvalidParameter if j is not a non-negative half-integer.
func Raw(j float64) ([]*mat.Dense, error) {
	rs, n, err := ranks(j)
	if err != nil {
		return nil, err
	}
	out := make([]*mat.Dense, 0, n*n-1)
	for _, rank := range rs {
		out = append(out, rank...)
	}

	return out, nil
}

// Basis returns the n²−1 Hermitian operators built from the tensor
// operators of spin j, ordered by rank and, within a rank, u = 0, then
// the (symmetric, antisymmetric) pair for each u = 1..r. Spin 0 yields an
// empty basis.
//
// Errors:
//   - matrix.ErrInvalidParameter if j is not a non-negative half-integer.
func Basis(j float64) ([]*matrix.Dense, error) {
	rs, n, err := ranks(j)
	if err != nil {
		return nil, err
	}

	basis := make([]*matrix.Dense, 0, n*n-1)
	for idx, rank := range rs {
		r := idx + 1
		for u := 0; u <= r; u++ {
			var mirror mat.Dense
			mirror.Scale(math.Pow(-1, float64(u)), rank[r-u])

			var sym mat.Dense
			sym.Add(rank[r+u], &mirror)
			sym.Scale(0.5, &sym)
			h, err := matrix.FromReal(&sym)
			if err != nil {
				return nil, err
			}
			basis = append(basis, h)

			if u == 0 {
				continue
			}

			var anti mat.Dense
			anti.Sub(rank[r+u], &mirror)
			a, err := matrix.FromReal(&anti)
			if err != nil {
				return nil, err
			}
			if a, err = matrix.Scale(a, 0.5i); err != nil {
				return nil, err
			}
			basis = append(basis, a)
		}
	}

	return basis, nil
}
