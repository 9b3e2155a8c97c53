// SPDX-License-Identifier: MIT

// Package report runs solvers over a dataset.System and summarizes accuracy:
// error norms against the reference solution, residuals, iteration counts,
// timings and conditioning diagnostics of A, rendered as an aligned table.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linsolve/dataset"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// Diagnostics describes the coefficient matrix independently of any solver.
type Diagnostics struct {
	N                  int
	InfNorm            float64 // ‖A‖∞, maximum absolute row sum
	Cond               float64 // ‖A‖∞·‖A⁻¹‖∞ (gonum); +Inf when singular
	DiagonallyDominant bool    // strict row dominance, sufficient for Gauss-Seidel
}

// Entry is the outcome of one method.
type Entry struct {
	Method     solver.Method
	X          []float64
	Iterations int
	Converged  bool
	Diverged   bool    // Gauss-Seidel overflowed; X is its last finite estimate
	Residual   float64 // ‖A·x − b‖∞

	// Error norms against the reference solution; valid when HasReference.
	HasReference bool
	L1, L2, LInf float64

	Elapsed time.Duration
	Err     error // solver failure, or a reference solution of the wrong length
}

// Report collects the entries for one system.
type Report struct {
	System      string
	Diagnostics Diagnostics
	Entries     []Entry
}

// Diagnose computes Diagnostics for a square matrix.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Diagnose(a matrix.Matrix) (Diagnostics, error) {
	var d Diagnostics
	if err := matrix.ValidateSquare(a); err != nil {
		return d, err
	}
	var err error
	d.N = a.Rows()
	if d.InfNorm, err = matrix.InfNorm(a); err != nil {
		return d, err
	}
	if d.Cond, err = matrix.Cond(a); err != nil {
		return d, err
	}
	if d.DiagonallyDominant, err = matrix.IsDiagonallyDominant(a); err != nil {
		return d, err
	}

	return d, nil
}

// Run solves sys once per method, in order, and measures each result.
//
// A failing method (for example ErrSingular) is recorded in its Entry and the
// remaining methods still run. Run itself fails only on an invalid system or
// when ctx is done before a method starts.
func Run(ctx context.Context, sys *dataset.System, methods []solver.Method, log logrus.FieldLogger, opts ...solver.Option) (*Report, error) {
	if sys == nil {
		return nil, errors.New("report: nil system")
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	diag, err := Diagnose(sys.A)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	rep := &Report{System: sys.Name, Diagnostics: diag, Entries: make([]Entry, 0, len(methods))}
	log.WithFields(logrus.Fields{
		"system":   sys.Name,
		"n":        diag.N,
		"infNorm":  diag.InfNorm,
		"cond":     diag.Cond,
		"dominant": diag.DiagonallyDominant,
	}).Info("system loaded")

	opts = append([]solver.Option{solver.WithLogger(log)}, opts...)
	for _, m := range methods {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		entry := measure(m, sys, opts)
		fields := logrus.Fields{"method": m, "elapsed": entry.Elapsed}
		if entry.Err != nil {
			log.WithFields(fields).WithError(entry.Err).Warn("solve failed")
		} else {
			fields["iterations"] = entry.Iterations
			fields["converged"] = entry.Converged
			if entry.Diverged {
				log.WithFields(fields).Warn("solve diverged")
			} else {
				log.WithFields(fields).Info("solve finished")
			}
		}
		rep.Entries = append(rep.Entries, entry)
	}

	return rep, nil
}

// Failed reports whether any method returned an error.
func (r *Report) Failed() bool {
	for _, e := range r.Entries {
		if e.Err != nil {
			return true
		}
	}

	return false
}

func measure(m solver.Method, sys *dataset.System, opts []solver.Option) Entry {
	e := Entry{Method: m}
	start := time.Now()
	res, err := solver.Solve(m, sys.A, sys.B, opts...)
	e.Elapsed = time.Since(start)
	if err != nil {
		e.Err = err

		return e
	}

	e.X, e.Iterations, e.Converged, e.Residual = res.X, res.Iterations, res.Converged, res.ResidualNorm
	e.Diverged = res.Diverged
	if sys.X != nil {
		if e.L1, e.L2, e.LInf, err = errorNorms(res.X, sys.X); err != nil {
			e.Err = fmt.Errorf("report: reference solution: %w", err)

			return e
		}
		e.HasReference = true
	}

	return e
}

// errorNorms returns the L1, L2 and L∞ distances between x and the reference.
// Errors: matrix.ErrDimensionMismatch when the lengths differ.
func errorNorms(x, ref []float64) (l1, l2, linf float64, err error) {
	if l1, err = matrix.L1(x, ref); err != nil {
		return 0, 0, 0, err
	}
	if l2, err = matrix.L2(x, ref); err != nil {
		return 0, 0, 0, err
	}
	if linf, err = matrix.LInf(x, ref); err != nil {
		return 0, 0, 0, err
	}

	return l1, l2, linf, nil
}
