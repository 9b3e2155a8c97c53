// SPDX-License-Identifier: MIT
package solver_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/dataset"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// mustAug builds [A | b] or fails the test.
func mustAug(t *testing.T, a [][]float64, b []float64) *matrix.Dense {
	t.Helper()
	A, err := matrix.NewFromRows(a)
	require.NoError(t, err)
	aug, err := matrix.Augment(A, b)
	require.NoError(t, err)

	return aug
}

// smallAug returns the augmented 5×5 reference system.
func smallAug(t *testing.T) *matrix.Dense {
	t.Helper()
	a, b := dataset.SmallSystem()
	aug, err := matrix.Augment(a, b)
	require.NoError(t, err)

	return aug
}

// dominantSystem returns a random strictly diagonally dominant n×n system.
func dominantSystem(n int, seed int64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = rng.Float64()*2 - 1
		}
		a[i][i] += float64(n)
		b[i] = rng.Float64()*20 - 10
	}

	return a, b
}

func TestSolveDirect_SmallSystem(t *testing.T) {
	t.Parallel()

	a, b := dataset.SmallSystem()
	x, err := solver.SolveDirect(a, b)
	require.NoError(t, err)

	d, err := matrix.LInf(x, dataset.SmallSolution())
	require.NoError(t, err)
	assert.Less(t, d, 1e-9)
}

func TestEliminate_ProducesUpperTriangular(t *testing.T) {
	t.Parallel()

	el, err := solver.Eliminate(smallAug(t))
	require.NoError(t, err)
	r, c := el.Upper.Shape()
	assert.Equal(t, 5, r)
	assert.Equal(t, 6, c)
	assert.Empty(t, el.Skipped)

	ok, err := matrix.IsUpperTriangular(el.Upper, matrix.WithEpsilon(1e-12))
	require.NoError(t, err)
	assert.True(t, ok)

	// Perm is a permutation of the original row indices.
	seen := make(map[int]bool, len(el.Perm))
	for _, p := range el.Perm {
		seen[p] = true
	}
	assert.Len(t, seen, 5)
}

func TestEliminate_PartialPivotSwap(t *testing.T) {
	t.Parallel()

	el, err := solver.Eliminate(mustAug(t, [][]float64{{1, 2}, {3, 4}}, []float64{5, 6}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, el.Perm)
	assert.Equal(t, 1, el.Swaps)

	// The row with the largest leading entry becomes the first pivot row.
	first, err := el.Upper.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 6}, first)

	x, err := solver.BackSubstitute(el.Upper)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-4, 4.5}, x, 1e-12)
}

func TestEliminate_TiesKeepFirstCandidate(t *testing.T) {
	t.Parallel()

	el, err := solver.Eliminate(mustAug(t, [][]float64{{2, 1}, {-2, 3}}, []float64{1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, el.Perm)
	assert.Zero(t, el.Swaps)
}

func TestEliminate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	aug := smallAug(t)
	before := aug.ToRows()

	_, err := solver.Eliminate(aug)
	require.NoError(t, err)
	assert.Equal(t, before, aug.ToRows())
}

func TestEliminate_EmptySystem(t *testing.T) {
	t.Parallel()

	augmented, err := matrix.NewDense(0, 1)
	require.NoError(t, err)
	square, err := matrix.NewFromRows(nil)
	require.NoError(t, err)

	for name, aug := range map[string]*matrix.Dense{"0x1": augmented, "0x0": square} {
		el, err := solver.Eliminate(aug)
		require.NoError(t, err, name)
		r, c := el.Upper.Shape()
		assert.Equal(t, 0, r, name)
		assert.Equal(t, 1, c, name)
		assert.Empty(t, el.Perm, name)

		x, err := solver.BackSubstitute(el.Upper)
		require.NoError(t, err, name)
		assert.Empty(t, x, name)

		x, err = solver.BackSubstitute(aug)
		require.NoError(t, err, name)
		assert.Empty(t, x, name)
	}
}

func TestEliminate_ShapeErrors(t *testing.T) {
	t.Parallel()

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	_, err = solver.Eliminate(sq)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = solver.Eliminate(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = solver.BackSubstitute(sq)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSingularSystem_Policies(t *testing.T) {
	t.Parallel()

	a := [][]float64{{1, 2, 3}, {1, 2, 3}, {0, 1, 4}}
	b := []float64{6, 6, 5}

	t.Run("skip", func(t *testing.T) {
		t.Parallel()
		el, err := solver.Eliminate(mustAug(t, a, b))
		require.NoError(t, err)
		assert.Equal(t, []int{2}, el.Skipped)

		_, err = solver.BackSubstitute(el.Upper)
		require.ErrorIs(t, err, solver.ErrSingular)
	})

	t.Run("fail", func(t *testing.T) {
		t.Parallel()
		_, err := solver.Eliminate(mustAug(t, a, b), solver.WithSingularPolicy(solver.FailSingular))
		require.ErrorIs(t, err, solver.ErrSingular)
	})

	t.Run("solve direct", func(t *testing.T) {
		t.Parallel()
		A, err := matrix.NewFromRows(a)
		require.NoError(t, err)
		_, err = solver.SolveDirect(A, b)
		require.ErrorIs(t, err, solver.ErrSingular)
	})
}

func TestBackSubstitute_KnownUpper(t *testing.T) {
	t.Parallel()

	upper, err := matrix.NewFromRows([][]float64{
		{2, 1, -1, 4},
		{0, 3, 2, 13},
		{0, 0, 4, 8},
	})
	require.NoError(t, err)

	x, err := solver.BackSubstitute(upper)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 3, 2}, x, 1e-12)
}

func TestBackSubstitute_ZeroDiagonal(t *testing.T) {
	t.Parallel()

	upper, err := matrix.NewFromRows([][]float64{{1, 1, 2}, {0, 1e-14, 1}})
	require.NoError(t, err)

	_, err = solver.BackSubstitute(upper)
	require.ErrorIs(t, err, solver.ErrSingular)

	// A threshold of zero accepts any non-zero diagonal.
	x, err := solver.BackSubstitute(upper, solver.WithPivotThreshold(0))
	require.NoError(t, err)
	assert.Len(t, x, 2)
}

func TestSolveDirect_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	const n = 20
	a, b := dominantSystem(n, 42)
	A, err := matrix.NewFromRows(a)
	require.NoError(t, err)

	got, err := solver.SolveDirect(A, b)
	require.NoError(t, err)

	g, err := matrix.ToGonum(A)
	require.NoError(t, err)
	var want mat.VecDense
	require.NoError(t, want.SolveVec(g, mat.NewVecDense(n, b)))

	if diff := cmp.Diff(want.RawVector().Data, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("SolveDirect mismatch (-gonum +got):\n%s", diff)
	}
}
