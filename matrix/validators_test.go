// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	AssertErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquareAndAugmented(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 0, 0)))
	AssertErrorIs(t, matrix.ValidateSquare(MustDense(t, 3, 4)), matrix.ErrNonSquare)
	AssertErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateAugmented(MustDense(t, 3, 4)))
	require.NoError(t, matrix.ValidateAugmented(MustDense(t, 0, 1)))
	AssertErrorIs(t, matrix.ValidateAugmented(MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.ValidateAugmented(MustDense(t, 3, 5)), matrix.ErrDimensionMismatch)
}

func TestValidateVectorLengths(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	AssertErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameLen(nil, []float64{}))
	AssertErrorIs(t, matrix.ValidateSameLen([]float64{1}, nil), matrix.ErrDimensionMismatch)
}

func TestIsUpperTriangular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		opts []matrix.Option
		want bool
	}{
		{"upper", [][]float64{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}}, nil, true},
		{"augmented upper", [][]float64{{1, 2, 9}, {0, 4, 9}}, nil, true},
		{"lower entry", [][]float64{{1, 2}, {1e-3, 4}}, nil, false},
		{"lower entry within eps", [][]float64{{1, 2}, {1e-3, 4}}, []matrix.Option{matrix.WithEpsilon(1e-2)}, true},
		{"empty", nil, nil, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := FromRows(t, tc.rows)
			got, err := matrix.IsUpperTriangular(m, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			got, err = matrix.IsUpperTriangular(hide{m}, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsDiagonallyDominant(t *testing.T) {
	t.Parallel()

	dominant := FromRows(t, [][]float64{{4, 1, 1}, {1, 5, 2}, {0, 1, 3}})
	ok, err := matrix.IsDiagonallyDominant(dominant)
	require.NoError(t, err)
	assert.True(t, ok)

	// Equality is not strict dominance.
	weak := FromRows(t, [][]float64{{2, 1, 1}, {1, 5, 2}, {0, 1, 3}})
	ok, err = matrix.IsDiagonallyDominant(weak)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.IsDiagonallyDominant(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}
