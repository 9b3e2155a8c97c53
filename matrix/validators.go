// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/length checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense is treated as nil as well.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateAugmented checks that m is non-nil and shaped N×(N+1).
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if Cols != Rows+1.
// Complexity: O(1).
func ValidateAugmented(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Cols() != m.Rows()+1 {
		return validatorErrorf("ValidateAugmented", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is accepted only when n == 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen ensures two vectors are aligned index by index.
// Time: O(1). Space: O(1).
func ValidateSameLen(x, y []float64) error {
	if len(x) != len(y) {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// IsUpperTriangular reports whether every entry strictly below the main
// diagonal is within eps of zero. Only the leading min(rows, cols) columns
// are inspected, so an augmented N×(N+1) matrix is checked on its N×N part.
//
// Errors: ErrNilMatrix, or wrapped At errors on the generic path.
// Complexity: O(r*c).
func IsUpperTriangular(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 1; i < m.Rows(); i++ {
		for j = 0; j < i && j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return false, err
			}
			if math.Abs(v) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsDiagonallyDominant reports whether the square matrix m is strictly
// row diagonally dominant: |a_ii| > Σ_{j≠i} |a_ij| + eps for every row.
// Strict dominance is a sufficient condition for Gauss-Seidel convergence.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2).
func IsDiagonallyDominant(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps
	rows, err := ToRows(m)
	if err != nil {
		return false, err
	}

	var diag, off float64
	for i, row := range rows {
		diag, off = NormZero, NormZero
		for j, v := range row {
			if i == j {
				diag = math.Abs(v)
			} else {
				off += math.Abs(v)
			}
		}
		if diag <= off+eps {
			return false, nil
		}
	}

	return true, nil
}
