// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestVectorNorms_Basic(t *testing.T) {
	t.Parallel()

	x := []float64{1, -2, 3}
	y := []float64{0, 2, 3}

	l1, err := matrix.L1(x, y)
	require.NoError(t, err)
	assert.Equal(t, 5.0, l1)

	l2, err := matrix.L2(x, y)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(17), l2, 1e-15)

	linf, err := matrix.LInf(x, y)
	require.NoError(t, err)
	assert.Equal(t, 4.0, linf)
}

func TestVectorNorms_SelfAndEmpty(t *testing.T) {
	t.Parallel()

	x := RandVec(16, 3)
	for name, norm := range map[string]func(a, b []float64) (float64, error){
		"L1": matrix.L1, "L2": matrix.L2, "LInf": matrix.LInf,
	} {
		d, err := norm(x, x)
		require.NoError(t, err, name)
		assert.Zero(t, d, name)

		d, err = norm(nil, nil)
		require.NoError(t, err, name)
		assert.Zero(t, d, name)

		_, err = norm(x, x[:3])
		AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}

func TestVectorNorms_AgreeWithFloatsDistance(t *testing.T) {
	t.Parallel()

	x := RandVec(50, 21)
	y := RandVec(50, 22)

	l1, err := matrix.L1(x, y)
	require.NoError(t, err)
	l2, err := matrix.L2(x, y)
	require.NoError(t, err)
	linf, err := matrix.LInf(x, y)
	require.NoError(t, err)

	assert.InDelta(t, floats.Distance(x, y, 1), l1, 1e-12)
	assert.InDelta(t, floats.Distance(x, y, 2), l2, 1e-12)
	assert.InDelta(t, floats.Distance(x, y, math.Inf(1)), linf, 1e-15)

	// Ordering between the three norms.
	assert.LessOrEqual(t, linf, l2)
	assert.LessOrEqual(t, l2, l1)
	for i := range x {
		assert.GreaterOrEqual(t, linf, math.Abs(x[i]-y[i]))
	}
}

func TestL2_NoOverflow(t *testing.T) {
	t.Parallel()

	big := 1e200
	d, err := matrix.L2([]float64{big, big}, []float64{0, 0})
	require.NoError(t, err)
	assert.False(t, math.IsInf(d, 0))
	assert.InDelta(t, 1.0, d/(big*math.Sqrt2), 1e-12)
}

func TestVectorInfNorm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, matrix.VectorInfNorm(nil))
	assert.Equal(t, 7.0, matrix.VectorInfNorm([]float64{3, -7, 5}))
	assert.Equal(t, 5.0, matrix.VectorInfNorm([]float64{-1, 5}))
}

func TestInfNorm(t *testing.T) {
	t.Parallel()

	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	n, err := matrix.InfNorm(I)
	require.NoError(t, err)
	assert.Equal(t, 1.0, n)

	m := FromRows(t, RandRows(6, 6, 5))
	n, err = matrix.InfNorm(m)
	require.NoError(t, err)
	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	assert.InDelta(t, mat.Norm(g, math.Inf(1)), n, 1e-12)

	slow, err := matrix.InfNorm(hide{m})
	require.NoError(t, err)
	assert.Equal(t, n, slow)

	n, err = matrix.InfNorm(MustDense(t, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = matrix.InfNorm(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
