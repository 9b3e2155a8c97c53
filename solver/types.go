// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

// Method selects a solution strategy for Solve.
type Method int

const (
	// MethodDirect is Gaussian elimination with partial pivoting followed by back-substitution.
	MethodDirect Method = iota

	// MethodGaussSeidel is the iterative Gauss-Seidel method.
	MethodGaussSeidel
)

// Methods lists every supported method in a stable order.
func Methods() []Method { return []Method{MethodDirect, MethodGaussSeidel} }

// String returns the canonical, flag-friendly name of the method.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodGaussSeidel:
		return "gauss-seidel"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a user-supplied name onto a Method (case-insensitive).
// Accepted aliases: "direct", "gauss", "gaussian" and "gauss-seidel", "seidel", "gs".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct", "gauss", "gaussian":
		return MethodDirect, nil
	case "gauss-seidel", "gauss_seidel", "seidel", "gs":
		return MethodGaussSeidel, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// SingularPolicy controls elimination when a pivot falls below the threshold.
//
//   - SkipSingular: leave the column unreduced and continue; a zero diagonal
//     then surfaces as ErrSingular from BackSubstitute.
//   - FailSingular: stop elimination immediately with ErrSingular.
type SingularPolicy int

const (
	// SkipSingular degrades instead of failing during elimination (default).
	SkipSingular SingularPolicy = iota

	// FailSingular reports ErrSingular as soon as a near-zero pivot is found.
	FailSingular
)

// String returns "skip" or "fail".
func (p SingularPolicy) String() string {
	switch p {
	case SkipSingular:
		return "skip"
	case FailSingular:
		return "fail"
	default:
		return fmt.Sprintf("SingularPolicy(%d)", int(p))
	}
}

// ParseSingularPolicy maps "skip" / "fail" onto a SingularPolicy.
func ParseSingularPolicy(s string) (SingularPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip":
		return SkipSingular, nil
	case "fail":
		return FailSingular, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
	}
}

// StopRule is a bit set of Gauss-Seidel termination tests; any enabled test
// that passes halts the iteration early.
type StopRule int

const (
	// StopOnStep halts when ‖xₖ − xₖ₋₁‖∞ < tolerance.
	StopOnStep StopRule = 1 << iota

	// StopOnResidual halts when ‖A·xₖ − b‖∞ / ‖xₖ‖∞ < tolerance.
	StopOnResidual

	// StopOnStepOrResidual enables both tests (default).
	StopOnStepOrResidual = StopOnStep | StopOnResidual
)

// String returns "step", "residual" or "step|residual".
func (r StopRule) String() string {
	switch r {
	case StopOnStep:
		return "step"
	case StopOnResidual:
		return "residual"
	case StopOnStepOrResidual:
		return "step|residual"
	default:
		return fmt.Sprintf("StopRule(%d)", int(r))
	}
}

// ParseStopRule maps "step", "residual" or "both" onto a StopRule.
func ParseStopRule(s string) (StopRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "step":
		return StopOnStep, nil
	case "residual":
		return StopOnResidual, nil
	case "both", "step|residual", "any":
		return StopOnStepOrResidual, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownStopRule)
	}
}

// Elimination is the outcome of Gaussian elimination with partial pivoting.
type Elimination struct {
	// Upper holds the reduced N×(N+1) augmented matrix with rows taken in the
	// final pivot order, so it is upper-triangular in its leading N×N block.
	Upper *matrix.Dense

	// Perm[k] is the index of the original row that ended up at pivot position k.
	Perm []int

	// Swaps counts the logical row exchanges performed.
	Swaps int

	// Skipped lists the columns whose pivot fell below the threshold and were
	// left unreduced (SkipSingular policy only).
	Skipped []int
}

// Result is the outcome of a solve.
type Result struct {
	Method       Method
	X            []float64 // solution estimate, owned by the caller
	Iterations   int       // sweeps performed (0 for MethodDirect)
	Converged    bool      // false when Gauss-Seidel exhausted its budget or diverged
	Diverged     bool      // the estimate overflowed; X holds the last finite sweep
	StepNorm     float64   // ‖xₖ − xₖ₋₁‖∞ of the last sweep (Gauss-Seidel)
	ResidualNorm float64   // ‖A·x − b‖∞ of the returned X
}
