// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense to gonum's mat package for interop and independent diagnostics
//     (condition estimates, reference factorizations in tests).
//
// Notes:
//   - gonum cannot represent zero-sized matrices; ToGonum rejects them with
//     ErrInvalidDimensions and Cond reports 0 for an empty system.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (zero-sized input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}
	rows, err := ToRows(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat), nil
}

// FromGonum copies any gonum mat.Matrix into a Dense.
// NaN/Inf entries are rejected under the default numeric policy.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGon, ErrNilMatrix)
	}
	r, c := src.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		mat.Row(rows[i], i, src)
	}
	d, err := NewFromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGon, err)
	}

	return d, nil
}

// Cond returns the infinity-norm condition number ‖A‖∞·‖A⁻¹‖∞ of a square
// matrix, computed by gonum. A singular matrix yields +Inf; an empty one 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Cond(a Matrix) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	if a.Rows() == 0 {
		return NormZero, nil
	}
	g, err := ToGonum(a)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	return mat.Cond(g, math.Inf(1)), nil
}
