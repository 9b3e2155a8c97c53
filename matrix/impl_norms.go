// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Error norms between a computed vector x and a reference x̂ (L1, L2, LInf).
//   - Vector and induced matrix infinity norms used as convergence and
//     conditioning diagnostics.
//
// Determinism & Performance:
//   - Single pass in index order; no allocations.
//   - Empty inputs are total: every norm of an empty vector is 0.

package matrix

import "math"

// L1 returns Σ|xᵢ − yᵢ|.
// Errors: ErrDimensionMismatch when len(x) != len(y).
// Complexity: O(n).
func L1(x, y []float64) (float64, error) {
	if err := ValidateSameLen(x, y); err != nil {
		return 0, matrixErrorf(opL1, err)
	}
	sum := NormZero
	for i := range x {
		sum += math.Abs(x[i] - y[i])
	}

	return sum, nil
}

// L2 returns sqrt(Σ(xᵢ − yᵢ)²).
//
// Implementation:
//   - Stage 1: validate lengths.
//   - Stage 2: scaled sum of squares (LAPACK dnrm2 style) so that large
//     components neither overflow nor tiny ones underflow.
//
// Errors: ErrDimensionMismatch when len(x) != len(y).
// Complexity: O(n).
func L2(x, y []float64) (float64, error) {
	if err := ValidateSameLen(x, y); err != nil {
		return 0, matrixErrorf(opL2, err)
	}
	scale, ssq := NormZero, 1.0
	var d, r float64
	for i := range x {
		d = math.Abs(x[i] - y[i])
		if d == 0 {
			continue
		}
		if scale < d {
			r = scale / d
			ssq = 1 + ssq*r*r
			scale = d
		} else {
			r = d / scale
			ssq += r * r
		}
	}
	if scale == 0 {
		return NormZero, nil
	}

	return scale * math.Sqrt(ssq), nil
}

// LInf returns max|xᵢ − yᵢ|.
// Errors: ErrDimensionMismatch when len(x) != len(y).
// Complexity: O(n).
func LInf(x, y []float64) (float64, error) {
	if err := ValidateSameLen(x, y); err != nil {
		return 0, matrixErrorf(opLInf, err)
	}
	maxAbs := NormZero
	var d float64
	for i := range x {
		d = math.Abs(x[i] - y[i])
		if d > maxAbs || math.IsNaN(d) {
			maxAbs = d
		}
	}

	return maxAbs, nil
}

// VectorInfNorm returns max|xᵢ| (0 for an empty vector).
func VectorInfNorm(x []float64) float64 {
	maxAbs := NormZero
	for _, v := range x {
		if a := math.Abs(v); a > maxAbs || math.IsNaN(a) {
			maxAbs = a
		}
	}

	return maxAbs
}

// InfNorm returns the induced infinity norm of m: the maximum absolute row sum.
// Used as a conditioning diagnostic, never inside the solvers.
//
// Errors: ErrNilMatrix, or wrapped At errors on the generic path.
// Complexity: O(r*c).
func InfNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opInfNorm, err)
	}
	rows, cols := m.Rows(), m.Cols()
	maxSum := NormZero

	var (
		i, j     int
		sum, v   float64
		err      error
		d, dense = m.(*Dense)
	)
	for i = 0; i < rows; i++ {
		sum = NormZero
		for j = 0; j < cols; j++ {
			if dense {
				v = d.data[i*cols+j]
			} else if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opInfNorm, err)
			}
			sum += math.Abs(v)
		}
		if sum > maxSum {
			maxSum = sum
		}
	}

	return maxSum, nil
}
