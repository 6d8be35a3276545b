package structure_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lielath/gellmann"
	"github.com/katalvlaran/lielath/matrix"
	"github.com/katalvlaran/lielath/spherical"
	"github.com/katalvlaran/lielath/spin"
	"github.com/katalvlaran/lielath/structure"
	"github.com/katalvlaran/lielath/sylvester"
)

const tol = 1e-8

// approx compares complex values part by part within 1e-10.
var approx = cmp.Options{
	cmp.Transformer("parts", func(c complex128) [2]float64 { return [2]float64{real(c), imag(c)} }),
	cmpopts.EquateApprox(0, 1e-10),
}

func mustGellMann(t *testing.T, d int) []*matrix.Dense {
	t.Helper()
	b, err := gellmann.Basis(d)
	require.NoError(t, err)

	return b
}

func mustSylvester(t *testing.T, d int) []*matrix.Dense {
	t.Helper()
	b, err := sylvester.Basis(d)
	require.NoError(t, err)

	return b
}

func TestStructureConstants_GellMannSU2(t *testing.T) {
	t.Parallel()

	tbl, err := structure.StructureConstants(mustGellMann(t, 2))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Size())
	require.Equal(t, 6, tbl.Len())
	assert.Empty(t, tbl.Degenerate())

	// Basis order is iσz, iσy, iσx: [iσz, iσy] = 2·iσx and cyclic.
	want := map[structure.Pair]structure.Term{
		{I: 0, J: 1}: {K: 2, Value: 2}, {I: 1, J: 0}: {K: 2, Value: -2},
		{I: 1, J: 2}: {K: 0, Value: 2}, {I: 2, J: 1}: {K: 0, Value: -2},
		{I: 2, J: 0}: {K: 1, Value: 2}, {I: 0, J: 2}: {K: 1, Value: -2},
	}
	if diff := cmp.Diff(want, tbl.Map(), approx); diff != "" {
		t.Fatalf("structure constants mismatch (-want +got):\n%s", diff)
	}
}

func TestStructureConstants_SpinHalf(t *testing.T) {
	t.Parallel()

	tr, err := spin.SU2(0.5)
	require.NoError(t, err)
	tbl, err := structure.StructureConstants(tr.Basis())
	require.NoError(t, err)
	require.Equal(t, 6, tbl.Len())

	// [X, Y] = iZ with basis order {Z, X, Y}.
	term, ok := tbl.Get(1, 2)
	require.True(t, ok)
	assert.Equal(t, 0, term.K)
	assert.InDelta(t, 0, real(term.Value), tol)
	assert.InDelta(t, 1, imag(term.Value), tol)
}

func TestStructureConstants_SphericalSpinOne(t *testing.T) {
	t.Parallel()

	b, err := spherical.Basis(1)
	require.NoError(t, err)
	tbl, err := structure.StructureConstants(b)
	require.NoError(t, err)
	assert.Equal(t, 8, tbl.Size())
	assert.Equal(t, 50, tbl.Len())
}

func TestStructureConstants_NoDiagonalAndAntisymmetric(t *testing.T) {
	t.Parallel()

	tbl, err := structure.StructureConstants(mustGellMann(t, 3))
	require.NoError(t, err)

	for i := 0; i < tbl.Size(); i++ {
		_, ok := tbl.Get(i, i)
		assert.False(t, ok, "diagonal pair (%d,%d) present", i, i)
	}
	for _, p := range tbl.Pairs() {
		fwd := tbl.Terms(p.I, p.J)
		rev := tbl.Terms(p.J, p.I)
		require.Len(t, rev, len(fwd), "pair %v", p)
		for n := range fwd {
			assert.Equal(t, fwd[n].K, rev[n].K)
			assert.InDelta(t, 0, real(fwd[n].Value+rev[n].Value), tol)
			assert.InDelta(t, 0, imag(fwd[n].Value+rev[n].Value), tol)
		}
	}
}

func TestStructureConstants_SylvesterSingleTerm(t *testing.T) {
	t.Parallel()

	tbl, err := structure.StructureConstants(mustSylvester(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 48, tbl.Len())
	assert.Empty(t, tbl.Degenerate())
	assert.NoError(t, tbl.Err())
}

func TestStructureConstants_GellMannDegeneracies(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	basis := mustGellMann(t, 3)
	tbl, err := structure.StructureConstants(basis, structure.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 50, tbl.Len())

	deg := tbl.Degenerate()
	require.NotEmpty(t, deg)
	for _, d := range deg {
		require.Greater(t, len(d.Terms), 1)
		lead, ok := tbl.Get(d.Pair.I, d.Pair.J)
		require.True(t, ok)
		assert.Equal(t, d.Terms[0], lead)
		for n := 1; n < len(d.Terms); n++ {
			assert.Less(t, d.Terms[n-1].K, d.Terms[n].K)
		}
	}
	assert.ErrorIs(t, tbl.Err(), structure.ErrDegenerateDecomposition)
	assert.Contains(t, buf.String(), "degenerate decompositions")
	assert.Contains(t, buf.String(), "DEBU")

	strict, err := structure.StructureConstants(basis, structure.WithStrict())
	require.ErrorIs(t, err, structure.ErrDegenerateDecomposition)
	var de *structure.DegenerateError
	require.ErrorAs(t, err, &de)
	assert.Len(t, de.Degeneracies, len(deg))
	require.NotNil(t, strict)
	assert.Equal(t, tbl.Len(), strict.Len())
}

func TestStructureConstants_WorkersDeterministic(t *testing.T) {
	t.Parallel()

	basis := mustGellMann(t, 4)
	one, err := structure.StructureConstants(basis, structure.WithWorkers(1))
	require.NoError(t, err)
	many, err := structure.StructureConstants(basis, structure.WithWorkers(8))
	require.NoError(t, err)

	require.Equal(t, one.Pairs(), many.Pairs())
	for _, p := range one.Pairs() {
		if diff := cmp.Diff(one.Terms(p.I, p.J), many.Terms(p.I, p.J), approx); diff != "" {
			t.Fatalf("pair %v differs (-1 worker +8 workers):\n%s", p, diff)
		}
	}
}

func TestStructureConstants_Tolerance(t *testing.T) {
	t.Parallel()

	tbl, err := structure.StructureConstants(mustGellMann(t, 2), structure.WithTolerance(3))
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())

	assert.Panics(t, func() { structure.WithTolerance(-1) })
	assert.Panics(t, func() { structure.WithWorkers(0) })
}

// Both bases span su(d): every element of one decomposes exactly in the other.
func TestSpanEquivalence_SylvesterGellMann(t *testing.T) {
	t.Parallel()

	for _, d := range []int{2, 3} {
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {
			gm, syl := mustGellMann(t, d), mustSylvester(t, d)
			for _, pair := range [][2][]*matrix.Dense{{gm, syl}, {syl, gm}} {
				for i, m := range pair[0] {
					_, residual, err := structure.Decompose(pair[1], m)
					require.NoError(t, err)
					assert.Less(t, residual, tol, "element %d", i)
				}
			}
		})
	}

	gmTbl, err := structure.StructureConstants(mustGellMann(t, 2))
	require.NoError(t, err)
	sylTbl, err := structure.StructureConstants(mustSylvester(t, 2))
	require.NoError(t, err)
	assert.Equal(t, gmTbl.Len(), sylTbl.Len())
}

func TestDCoefficients(t *testing.T) {
	t.Parallel()

	// {iσa, iσb} = −2δ·I lies outside su(2).
	tbl, err := structure.DCoefficients(mustGellMann(t, 2))
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())

	// Sylvester order starts X, X², Z: {X, X} = 2·X².
	tbl, err = structure.DCoefficients(mustSylvester(t, 3))
	require.NoError(t, err)
	assert.Empty(t, tbl.Degenerate())
	term, ok := tbl.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, 1, term.K)
	assert.InDelta(t, 2, real(term.Value), tol)
	assert.InDelta(t, 0, imag(term.Value), tol)
}

func TestSolvers_InvalidBasis(t *testing.T) {
	t.Parallel()

	empty, err := structure.StructureConstants(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
	assert.Zero(t, empty.Size())

	two := mustGellMann(t, 2)
	three := mustGellMann(t, 3)
	_, err = structure.StructureConstants([]*matrix.Dense{two[0], three[0]})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = structure.DCoefficients([]*matrix.Dense{two[0], nil})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	dup, err := matrix.Scale(two[0], 2)
	require.NoError(t, err)
	_, err = structure.StructureConstants([]*matrix.Dense{two[0], dup, two[1]})
	require.ErrorIs(t, err, structure.ErrRankDeficient)

	// A basis of zero matrices has an all-zero R diagonal.
	zero, err := matrix.ZerosLike(two[0])
	require.NoError(t, err)
	_, err = structure.StructureConstants([]*matrix.Dense{zero})
	require.ErrorIs(t, err, structure.ErrRankDeficient)
	_, _, err = structure.Decompose([]*matrix.Dense{zero, zero}, two[0])
	require.ErrorIs(t, err, structure.ErrRankDeficient)
	_, err = structure.DCoefficients([]*matrix.Dense{two[0], zero})
	require.ErrorIs(t, err, structure.ErrRankDeficient)
}

func TestDecompose(t *testing.T) {
	t.Parallel()

	basis := mustGellMann(t, 2)
	m, err := matrix.NewFromData(2, 2, []complex128{1i, 3, -3, -1i}) // iσz + 3·iσy
	require.NoError(t, err)

	coords, residual, err := structure.Decompose(basis, m)
	require.NoError(t, err)
	assert.Less(t, residual, tol)
	want, err := matrix.NewColumn([]complex128{1, 3, 0})
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(coords, want, tol), "coords:\n%v", coords)

	// The identity is orthogonal to su(2): zero coordinates, residual ‖I‖ = √2.
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	_, residual, err = structure.Decompose(basis, id)
	require.NoError(t, err)
	assert.InDelta(t, 1.4142135623730951, residual, tol)

	_, _, err = structure.Decompose(nil, id)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	big, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	_, _, err = structure.Decompose(basis, big)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	tbl, err := structure.NewTable(3, map[structure.Pair]structure.Term{
		{I: 1, J: 0}: {K: 2, Value: -2},
		{I: 0, J: 1}: {K: 2, Value: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []structure.Pair{{I: 0, J: 1}, {I: 1, J: 0}}, tbl.Pairs())
	assert.Len(t, tbl.Terms(0, 1), 1)
	assert.Nil(t, tbl.Terms(2, 2))
	assert.NoError(t, tbl.Err())

	_, err = structure.NewTable(2, map[structure.Pair]structure.Term{{I: 0, J: 1}: {K: 5}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = structure.NewTable(-1, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidParameter)
}
