package spin

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lielath/matrix"
)

// Triplet holds complex su(2) generators.
type Triplet struct {
	Z, X, Y *matrix.Dense
}

// Basis returns the triplet as an ordered basis {Z, X, Y}.
func (t Triplet) Basis() []*matrix.Dense {
	return []*matrix.Dense{t.Z, t.X, t.Y}
}

// RealTriplet holds the real sl(2) generators.
type RealTriplet struct {
	Z, Raise, Lower *mat.Dense
}

// SU2 returns the Hermitian su(2) generators for spin j, promoted to
// complex: Z, X = (J+ + J−)/2 and Y = (J+ − J−)/(2i). They satisfy
// [X,Y] = iZ and cyclic.
func SU2(j float64) (Triplet, error) {
	rz, err := Z(j)
	if err != nil {
		return Triplet{}, err
	}
	rx, err := X(j)
	if err != nil {
		return Triplet{}, err
	}
	ry, err := Y(j)
	if err != nil {
		return Triplet{}, err
	}

	var t Triplet
	if t.Z, err = matrix.FromReal(rz); err != nil {
		return Triplet{}, err
	}
	if t.X, err = matrix.FromReal(rx); err != nil {
		return Triplet{}, err
	}
	y, err := matrix.FromReal(ry)
	if err != nil {
		return Triplet{}, err
	}
	if t.Y, err = matrix.Scale(y, -1i); err != nil {
		return Triplet{}, err
	}

	return t, nil
}

// SL2 returns the real sl(2) generators {Z, J+, J−} for spin j.
func SL2(j float64) (RealTriplet, error) {
	z, err := Z(j)
	if err != nil {
		return RealTriplet{}, err
	}
	r, err := Raise(j)
	if err != nil {
		return RealTriplet{}, err
	}
	l, err := Lower(j)
	if err != nil {
		return RealTriplet{}, err
	}

	return RealTriplet{Z: z, Raise: r, Lower: l}, nil
}
