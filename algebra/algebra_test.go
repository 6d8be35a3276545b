package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lielath/algebra"
	"github.com/katalvlaran/lielath/matrix"
	"github.com/katalvlaran/lielath/structure"
)

const tol = 1e-8

func TestNewSU_String(t *testing.T) {
	t.Parallel()

	a, err := algebra.NewSU(3)
	require.NoError(t, err)
	assert.Equal(t, "su(3); basis size: 8", a.String())
	assert.Equal(t, 8, a.Dim())
	assert.Equal(t, 3, a.N())
	assert.Equal(t, 50, a.StructureConstants().Len())
	assert.NotEmpty(t, a.Degenerate())
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	syl, err := algebra.NewSylvester(2)
	require.NoError(t, err)
	assert.Equal(t, "su(2) sylvester; basis size: 3", syl.String())
	assert.Empty(t, syl.Degenerate())

	sph, err := algebra.NewSpherical(1)
	require.NoError(t, err)
	assert.Equal(t, "spherical(3); basis size: 8", sph.String())

	trivial, err := algebra.NewSU(1)
	require.NoError(t, err)
	assert.Zero(t, trivial.Dim())

	_, err = algebra.NewSU(0)
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
	_, err = algebra.NewSpherical(0.3)
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
}

func TestNew_StrictDegeneracyIsKept(t *testing.T) {
	t.Parallel()

	su3, err := algebra.NewSU(3)
	require.NoError(t, err)

	a, err := algebra.New("", su3.Basis(), structure.WithStrict())
	require.NoError(t, err)
	assert.Equal(t, "algebra; basis size: 8", a.String())
	assert.ErrorIs(t, a.StructureConstants().Err(), structure.ErrDegenerateDecomposition)
}

func TestBasis_IsCopy(t *testing.T) {
	t.Parallel()

	a, err := algebra.NewSU(2)
	require.NoError(t, err)
	b := a.Basis()
	require.NoError(t, b[0].Set(0, 0, 42))

	again := a.Basis()
	v, err := again[0].At(0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, complex128(42), v)
}

func TestCoordinatesMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	a, err := algebra.NewSylvester(3)
	require.NoError(t, err)

	coords, err := matrix.NewColumn([]complex128{1, 0, 2i, 0, -1, 0, 0, 0.5})
	require.NoError(t, err)
	m, err := a.Matrix(coords)
	require.NoError(t, err)

	back, residual, err := a.Coordinates(m)
	require.NoError(t, err)
	assert.Less(t, residual, tol)
	assert.True(t, matrix.EqualApprox(back, coords, tol))

	_, err = a.Matrix(mustColumn(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func mustColumn(t *testing.T, vals ...complex128) *matrix.Dense {
	t.Helper()
	c, err := matrix.NewColumn(vals)
	require.NoError(t, err)

	return c
}

func TestBrackets(t *testing.T) {
	t.Parallel()

	a, err := algebra.NewSU(2)
	require.NoError(t, err)

	// Basis order iσz, iσy, iσx.
	z, y := mustColumn(t, 1, 0, 0), mustColumn(t, 0, 1, 0)
	cross, err := a.Cross(z, y)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(cross, mustColumn(t, 0, 0, 2), tol))

	comm, err := a.Commutator(z, y)
	require.NoError(t, err)
	want, err := a.Matrix(cross)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(comm, want, tol))

	// {iσz, iσy} = 0 and {iσz, iσz} = −2I lies outside su(2).
	dot, err := a.Dot(z, z)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(dot, mustColumn(t, 0, 0, 0), tol))
	anti, err := a.Anticommutator(z, y)
	require.NoError(t, err)
	zero, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(anti, zero, tol))
}
