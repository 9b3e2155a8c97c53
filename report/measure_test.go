// SPDX-License-Identifier: MIT
package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/dataset"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// measure is reached from Run only after System.Validate; called directly
// with a short reference it must report the mismatch instead of zero norms.
func TestMeasure_ReferenceLengthMismatch(t *testing.T) {
	t.Parallel()

	sys := dataset.Small()
	sys.X = sys.X[:3]

	e := measure(solver.MethodDirect, sys, nil)
	require.ErrorIs(t, e.Err, matrix.ErrDimensionMismatch)
	assert.False(t, e.HasReference)
	assert.Len(t, e.X, 5)
}

func TestErrorNorms(t *testing.T) {
	t.Parallel()

	l1, l2, linf, err := errorNorms([]float64{1, -2}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, l1)
	assert.InDelta(t, 2.2360679775, l2, 1e-10)
	assert.Equal(t, 2.0, linf)

	_, _, _, err = errorNorms([]float64{1}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
