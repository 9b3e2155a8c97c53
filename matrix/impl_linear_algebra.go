// SPDX-License-Identifier: MIT
// Package matrix provides the linear-system building blocks shared by the solvers:
// augmentation of A with b, the inverse split, matrix-vector product and residual.
// All functions perform strict fail-fast validation and return clear errors on
// dimension mismatches. Inputs are never mutated; results are freshly allocated.
//
// Notes:
//   - Public facades wrap sentinels via matrixErrorf with an operation tag.

package matrix

import "fmt"

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products and substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAugment  = "Augment"
	opSplit    = "SplitAugmented"
	opMatVec   = "MatVec"
	opResidual = "Residual"
	opL1       = "L1"
	opL2       = "L2"
	opLInf     = "LInf"
	opInfNorm  = "InfNorm"
	opToGonum  = "ToGonum"
	opFromGon  = "FromGonum"
	opCond     = "Cond"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Augment builds the N×(N+1) augmented matrix [A | b].
//
// Implementation:
//   - Stage 1: ValidateSquare(a), ValidateVecLen(b, N).
//   - Stage 2: copy row i of A followed by b[i] into a fresh Dense.
//
// Behavior highlights:
//   - Pure: neither a nor b is touched; N = 0 yields a 0×1 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "Augment").
//
// Complexity:
//   - Time O(N^2), Space O(N^2).
func Augment(a Matrix, b []float64) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	out, err := NewDense(n, n+1)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	stride := n + 1

	// Fast path: copy whole rows out of the flat buffer.
	if d, ok := a.(*Dense); ok {
		for i := 0; i < n; i++ {
			copy(out.data[i*stride:i*stride+n], d.data[i*n:(i+1)*n])
			out.data[i*stride+n] = b[i]
		}

		return out, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAugment, err)
			}
			out.data[i*stride+j] = v
		}
		out.data[i*stride+n] = b[i]
	}

	return out, nil
}

// SplitAugmented is the inverse of Augment: it returns the leading N×N block
// and the last column of an N×(N+1) matrix as separate copies.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "SplitAugmented").
func SplitAugmented(aug Matrix) (*Dense, []float64, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	rows, err := ToRows(aug)
	if err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}

	n := len(rows)
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	b := make([]float64, n)
	for i, row := range rows {
		copy(a.data[i*n:(i+1)*n], row[:n])
		b[i] = row[n]
	}

	return a, b, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var (
		i, j int
		sum  float64
	)
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var (
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Residual computes r = A·x − b for a candidate solution x.
// A zero residual means x satisfies the system exactly.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "Residual").
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}
