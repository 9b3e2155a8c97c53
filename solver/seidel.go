// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linsolve/matrix"
)

// GaussSeidel iteratively solves the system held in an N×(N+1) augmented matrix.
//
// Implementation:
//   - Stage 1: validate shape, copy rows, reject zero diagonals; start from the
//     zero vector or WithInitialGuess.
//   - Stage 2: each sweep updates i = 0..N−1 in order:
//     x[i] = (b[i] − Σ_{j<i} a[i][j]·x[j] − Σ_{j>i} a[i][j]·prev[j]) / a[i][i],
//     so components before i already carry this sweep's values while those
//     after i still carry the previous sweep's.
//   - Stage 3: after the sweep apply the enabled stop tests:
//     step     ‖x − prev‖∞ < tol,
//     residual ‖A·x − b‖∞ / ‖x‖∞ < tol (absolute when x = 0).
//   - Stage 4: stop early on success, otherwise after MaxIterations sweeps.
//
// Behavior highlights:
//   - Exhausting the budget is NOT an error: the best estimate is returned
//     with Converged=false and Iterations=MaxIterations.
//   - Divergence is NOT an error either. When a sweep overflows to ±Inf or
//     NaN the loop stops, X is rolled back to the last finite sweep and the
//     result carries Diverged=true, Converged=false, StepNorm=+Inf and the
//     number of the sweep that overflowed.
//   - N = 0 returns an empty, converged result.
//   - Convergence is guaranteed only for strictly diagonally dominant or
//     symmetric positive-definite matrices; nothing else is checked.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape or initial guess), ErrNaNInf.
//   - ErrZeroDiagonal when some |a[i][i]| is below the pivot threshold.
//
// Complexity:
//   - Time O(N^2) per sweep (twice that with the residual test), Space O(N^2).
func GaussSeidel(aug matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	rows, err := loadAugmented(aug)
	if err != nil {
		return nil, solverErrorf(opGaussSeidel, err)
	}

	n := len(rows)
	res := &Result{Method: MethodGaussSeidel, X: make([]float64, n)}
	if n == 0 {
		res.Converged = true

		return res, nil
	}
	for i := 0; i < n; i++ {
		if math.Abs(rows[i][i]) < o.pivotThreshold {
			return nil, solverErrorf(opGaussSeidel,
				fmt.Errorf("diagonal %g at row %d: %w", rows[i][i], i, ErrZeroDiagonal))
		}
	}
	if o.initialGuess != nil {
		if err = matrix.ValidateVecLen(o.initialGuess, n); err != nil {
			return nil, solverErrorf(opGaussSeidel, fmt.Errorf("initial guess: %w", err))
		}
		copy(res.X, o.initialGuess)
	}

	var (
		x        = res.X
		prev     = make([]float64, n)
		r        = make([]float64, n)
		i, j     int
		iter     int
		sum      float64
		row      []float64
		residual bool
	)
	for iter = 1; iter <= o.maxIterations; iter++ {
		copy(prev, x)
		for i = 0; i < n; i++ {
			row = rows[i]
			sum = row[n]
			for j = 0; j < i; j++ {
				sum -= row[j] * x[j] // updated this sweep
			}
			for j = i + 1; j < n; j++ {
				sum -= row[j] * prev[j] // previous sweep
			}
			x[i] = sum / row[i]
		}
		res.Iterations = iter

		res.StepNorm, _ = matrix.LInf(x, prev)
		if math.IsNaN(res.StepNorm) || math.IsInf(res.StepNorm, 0) {
			o.logger.WithField("iteration", iter).Warn("gauss-seidel estimate is no longer finite")
			copy(x, prev)
			res.Diverged, res.StepNorm = true, math.Inf(1)
			residual = false

			break
		}

		if o.stop&StopOnStep != 0 && res.StepNorm < o.tolerance {
			res.Converged = true
		}
		residual = false
		if !res.Converged && o.stop&StopOnResidual != 0 {
			res.ResidualNorm = residualNorm(rows, x, r)
			residual = true
			if relativeTo(res.ResidualNorm, x) < o.tolerance {
				res.Converged = true
			}
		}
		if res.Converged {
			break
		}
	}
	if !residual {
		res.ResidualNorm = residualNorm(rows, x, r)
	}

	o.logger.WithFields(logrus.Fields{
		"iterations": res.Iterations,
		"converged":  res.Converged,
		"diverged":   res.Diverged,
		"step":       res.StepNorm,
		"residual":   res.ResidualNorm,
	}).Debug("gauss-seidel finished")

	return res, nil
}

// SolveIterative solves A·x = b with Gauss-Seidel on [A | b].
func SolveIterative(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	aug, err := matrix.Augment(a, b)
	if err != nil {
		return nil, err
	}

	return GaussSeidel(aug, opts...)
}

// Solve dispatches to the requested method and reports a uniform Result.
// For MethodDirect, Iterations is 0 and Converged is true on success.
//
// Errors:
//   - ErrUnknownMethod, plus whatever the selected method returns.
func Solve(m Method, a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	switch m {
	case MethodDirect:
		x, err := SolveDirect(a, b, opts...)
		if err != nil {
			return nil, err
		}
		r, err := matrix.Residual(a, x, b)
		if err != nil {
			return nil, solverErrorf(opSolve, err)
		}

		return &Result{
			Method:       MethodDirect,
			X:            x,
			Converged:    true,
			ResidualNorm: matrix.VectorInfNorm(r),
		}, nil
	case MethodGaussSeidel:
		return SolveIterative(a, b, opts...)
	default:
		return nil, solverErrorf(opSolve, fmt.Errorf("%v: %w", m, ErrUnknownMethod))
	}
}

// residualNorm writes A·x − b into scratch and returns its infinity norm.
func residualNorm(rows [][]float64, x, scratch []float64) float64 {
	n := len(x)
	var sum float64
	for i, row := range rows {
		sum = matrix.ZeroSum
		for j := 0; j < n; j++ {
			sum += row[j] * x[j]
		}
		scratch[i] = sum - row[n]
	}

	return matrix.VectorInfNorm(scratch)
}

// relativeTo scales a residual norm by ‖x‖∞, falling back to the absolute
// value when x is the zero vector.
func relativeTo(norm float64, x []float64) float64 {
	if scale := matrix.VectorInfNorm(x); scale > 0 {
		return norm / scale
	}

	return norm
}
