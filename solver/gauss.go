// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linsolve/matrix"
)

// Eliminate reduces an N×(N+1) augmented matrix to upper-triangular form by
// Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateAugmented(aug); copy rows on entry so aug is never mutated.
//   - Stage 2: for each stage k, pick the candidate in perm[k..N-1] with the
//     strictly largest |a[row][k]| (first one wins on ties) and swap the two
//     indices in perm. Rows are never moved, only the index array.
//   - Stage 3: if |pivot| < threshold, apply the SingularPolicy: record the
//     column in Skipped and move on, or fail with ErrSingular.
//   - Stage 4: otherwise subtract m·pivotRow from every later row over
//     columns k..N, with m = a[row][k] / a[pivot][k].
//   - Stage 5: emit the rows in perm order as a fresh Dense.
//
// Behavior highlights:
//   - N = 0 (a 0×0 or 0×1 input) yields an empty Elimination with a 0×1 Upper.
//   - Entries below a skipped pivot stay as they were; BackSubstitute is where
//     the resulting zero diagonal is reported.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape is not N×(N+1)), ErrNaNInf.
//   - ErrSingular (FailSingular policy only).
//
// Complexity:
//   - Time O(N^3), Space O(N^2) for the working copy plus O(N) for perm.
func Eliminate(aug matrix.Matrix, opts ...Option) (*Elimination, error) {
	o := gatherOptions(opts...)
	rows, err := loadAugmented(aug)
	if err != nil {
		return nil, solverErrorf(opEliminate, err)
	}

	n := len(rows)
	if n == 0 {
		upper, _ := matrix.NewDense(0, 1)

		return &Elimination{Upper: upper, Perm: []int{}}, nil
	}
	cols := n + 1

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		res           = &Elimination{Perm: perm}
		i, j, k, best int
		bestAbs, cand float64
		factor        float64
		pivot, row    []float64
	)
	for k = 0; k < n; k++ {
		// Partial pivoting over the remaining candidates.
		best, bestAbs = k, math.Abs(rows[perm[k]][k])
		for i = k + 1; i < n; i++ {
			if cand = math.Abs(rows[perm[i]][k]); cand > bestAbs {
				best, bestAbs = i, cand
			}
		}
		if best != k {
			perm[k], perm[best] = perm[best], perm[k]
			res.Swaps++
			o.logger.WithFields(logrus.Fields{"stage": k, "row": perm[k]}).Debug("pivot row swapped in")
		}

		pivot = rows[perm[k]]
		if bestAbs < o.pivotThreshold {
			if o.singular == FailSingular {
				return nil, solverErrorf(opEliminate,
					fmt.Errorf("pivot %g in column %d: %w", pivot[k], k, ErrSingular))
			}
			res.Skipped = append(res.Skipped, k)
			o.logger.WithFields(logrus.Fields{"stage": k, "pivot": pivot[k]}).Warn("near-zero pivot, column left unreduced")

			continue
		}

		for i = k + 1; i < n; i++ {
			row = rows[perm[i]]
			factor = row[k] / pivot[k]
			if factor == 0 {
				continue
			}
			for j = k; j < cols; j++ {
				row[j] -= factor * pivot[j]
			}
		}
	}

	ordered := make([][]float64, n)
	for k = 0; k < n; k++ {
		ordered[k] = rows[perm[k]]
	}
	// Values may legitimately overflow on badly scaled input; keep them as-is.
	upper, err := matrix.NewFromRows(ordered, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, solverErrorf(opEliminate, err)
	}
	res.Upper = upper

	return res, nil
}

// BackSubstitute solves an upper-triangular N×(N+1) augmented system,
// last equation first:
//
//	x[N−1] = a[N−1][N] / a[N−1][N−1]
//	x[i]   = (a[i][N] − Σ_{j>i} a[i][j]·x[j]) / a[i][i]
//
// Entries below the diagonal are ignored.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//   - ErrSingular when |a[i][i]| is below the pivot threshold; no vector of
//     Inf/NaN values is ever returned.
//
// Complexity:
//   - Time O(N^2), Space O(N).
func BackSubstitute(upper matrix.Matrix, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	rows, err := loadAugmented(upper)
	if err != nil {
		return nil, solverErrorf(opBackSubstitute, err)
	}

	n := len(rows)
	x := make([]float64, n)

	var (
		i, j     int
		sum, piv float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = rows[i][n]
		for j = i + 1; j < n; j++ {
			sum -= rows[i][j] * x[j]
		}
		piv = rows[i][i]
		if math.Abs(piv) < o.pivotThreshold {
			return nil, solverErrorf(opBackSubstitute,
				fmt.Errorf("diagonal %g at row %d: %w", piv, i, ErrSingular))
		}
		x[i] = sum / piv
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, solverErrorf(opBackSubstitute,
				fmt.Errorf("non-finite component at row %d: %w", i, ErrSingular))
		}
	}

	return x, nil
}

// SolveDirect solves A·x = b with augment → eliminate → back-substitute.
//
// Errors:
//   - Augment errors (ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch).
//   - ErrSingular from elimination (FailSingular) or back-substitution.
func SolveDirect(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	aug, err := matrix.Augment(a, b)
	if err != nil {
		return nil, err
	}
	el, err := Eliminate(aug, opts...)
	if err != nil {
		return nil, err
	}

	return BackSubstitute(el.Upper, opts...)
}

// loadAugmented validates the N×(N+1) shape, copies the rows and rejects
// non-finite entries. Any matrix without rows is the empty system, whatever
// its column count.
func loadAugmented(aug matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(aug); err != nil {
		return nil, err
	}
	if aug.Rows() == 0 {
		return [][]float64{}, nil
	}
	if err := matrix.ValidateAugmented(aug); err != nil {
		return nil, err
	}
	rows, err := matrix.ToRows(aug)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
		}
	}

	return rows, nil
}
