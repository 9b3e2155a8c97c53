// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a pivot or diagonal entry falls below the
	// pivot threshold: during back-substitution always, during elimination only
	// under the FailSingular policy.
	ErrSingular = errors.New("solver: singular or near-singular matrix")

	// ErrZeroDiagonal is returned by Gauss-Seidel when a diagonal entry is
	// (near) zero, which makes the per-component update undefined.
	ErrZeroDiagonal = errors.New("solver: zero diagonal entry")

	// ErrUnknownMethod is returned by ParseMethod and Solve for an unsupported method.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrUnknownPolicy is returned by ParseSingularPolicy for an unsupported name.
	ErrUnknownPolicy = errors.New("solver: unknown singular policy")

	// ErrUnknownStopRule is returned by ParseStopRule for an unsupported name.
	ErrUnknownStopRule = errors.New("solver: unknown stop rule")
)

// Operation tags for uniform error wrapping.
const (
	opEliminate      = "Eliminate"
	opBackSubstitute = "BackSubstitute"
	opGaussSeidel    = "GaussSeidel"
	opSolve          = "Solve"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
