package spin

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lielath/matrix"
)

// HalfInteger validates the spin j and returns the representation size
// n = 2j+1.
//
// Errors:
//   - matrix.ErrInvalidParameter if j is NaN, ±Inf, negative, or 2j is not
//     within matrix.DefaultTolerance of an integer.
func HalfInteger(j float64) (int, error) {
	if math.IsNaN(j) || math.IsInf(j, 0) || j < 0 {
		return 0, fmt.Errorf("spin: j=%v must be finite and non-negative: %w", j, matrix.ErrInvalidParameter)
	}
	twoJ := math.Round(2 * j)
	if !scalar.EqualWithinAbs(2*j, twoJ, matrix.DefaultTolerance) {
		return 0, fmt.Errorf("spin: j=%v is not a multiple of 1/2: %w", j, matrix.ErrInvalidParameter)
	}

	return int(twoJ) + 1, nil
}

// levels returns n and the snapped spin (n−1)/2, so that near-exact inputs
// such as 0.49999999999 produce exactly the j=1/2 operators.
func levels(j float64) (int, float64, error) {
	n, err := HalfInteger(j)
	if err != nil {
		return 0, 0, err
	}

	return n, float64(n-1) / 2, nil
}

// Z returns diag(j, j−1, …, −j).
func Z(j float64) (*mat.Dense, error) {
	n, s, err := levels(j)
	if err != nil {
		return nil, err
	}
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, s-float64(i))
	}

	return m, nil
}

// Raise returns J+, with m[i,i+1] = sqrt((j−m)(j+m+1)) for m = j−1−i.
func Raise(j float64) (*mat.Dense, error) {
	n, s, err := levels(j)
	if err != nil {
		return nil, err
	}
	r := mat.NewDense(n, n, nil)
	for i := 0; i < n-1; i++ {
		m := s - 1 - float64(i)
		r.Set(i, i+1, math.Sqrt((s-m)*(s+m+1)))
	}

	return r, nil
}

// Lower returns J−, with m[i,i−1] = sqrt((j+m)(j−m+1)) for m = j−(i−1).
func Lower(j float64) (*mat.Dense, error) {
	n, s, err := levels(j)
	if err != nil {
		return nil, err
	}
	l := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		m := s - float64(i-1)
		l.Set(i, i-1, math.Sqrt((s+m)*(s-m+1)))
	}

	return l, nil
}

// combine returns (J+ + sign·J−)/2.
func combine(j, sign float64) (*mat.Dense, error) {
	r, err := Raise(j)
	if err != nil {
		return nil, err
	}
	l, err := Lower(j)
	if err != nil {
		return nil, err
	}
	l.Scale(sign, l)
	r.Add(r, l)
	r.Scale(0.5, r)

	return r, nil
}

// X returns (J+ + J−)/2, the symmetric combination.
func X(j float64) (*mat.Dense, error) { return combine(j, 1) }

// Y returns (J+ − J−)/2, the antisymmetric combination. It is real; the
// Hermitian S_y is −i times this matrix (see SU2).
func Y(j float64) (*mat.Dense, error) { return combine(j, -1) }
