package sylvester_test

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lielath/matrix"
	"github.com/katalvlaran/lielath/sylvester"
)

const tol = 1e-10

func omega(d int) complex128 { return cmplx.Exp(complex(0, 2*math.Pi/float64(d))) }

func TestClock_Diagonal(t *testing.T) {
	t.Parallel()

	for _, d := range []int{2, 3, 5} {
		z, err := sylvester.Clock(d)
		require.NoError(t, err)

		w := omega(d)
		want, err := matrix.NewDense(d, d)
		require.NoError(t, err)
		for k := 0; k < d; k++ {
			require.NoError(t, want.Set(k, k, cmplx.Pow(w, complex(float64(k), 0))))
		}
		require.True(t, matrix.EqualApprox(z, want, tol), "d=%d\n%v", d, z)
	}
}

func TestWeylRelation(t *testing.T) {
	t.Parallel()

	const d = 4
	z, err := sylvester.Clock(d)
	require.NoError(t, err)
	x, err := sylvester.Shift(d)
	require.NoError(t, err)

	zx, err := matrix.Mul(z, x)
	require.NoError(t, err)
	xz, err := matrix.Mul(x, z)
	require.NoError(t, err)
	want, err := matrix.Scale(xz, omega(d))
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(zx, want, tol))
}

func TestBasis_CountUnitaryTraceless(t *testing.T) {
	t.Parallel()

	for d := 1; d <= 4; d++ {
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {
			b, err := sylvester.Basis(d)
			require.NoError(t, err)
			require.Len(t, b, d*d-1)

			id, err := matrix.NewIdentity(d)
			require.NoError(t, err)
			for i, m := range b {
				h, err := matrix.ConjTranspose(m)
				require.NoError(t, err)
				p, err := matrix.Mul(m, h)
				require.NoError(t, err)
				assert.True(t, matrix.EqualApprox(p, id, tol), "element %d not unitary", i)

				tr, err := matrix.Trace(m)
				require.NoError(t, err)
				assert.Less(t, cmplx.Abs(tr), tol, "element %d not traceless", i)
			}
		})
	}
}

func TestBasis_WithIdentity(t *testing.T) {
	t.Parallel()

	b, err := sylvester.Basis(3, sylvester.WithIdentity())
	require.NoError(t, err)
	require.Len(t, b, 9)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(b[0], id, tol))
}

func TestBasis_InvalidDimension(t *testing.T) {
	t.Parallel()

	_, err := sylvester.Basis(0)
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
	_, err = sylvester.Clock(-2)
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
}
