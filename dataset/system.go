// SPDX-License-Identifier: MIT

// Package dataset supplies linear systems to the solvers: a built-in 5×5
// diagonally dominant system with a known solution, and CSV loaders for
// larger systems stored as A.csv, b.csv and (optionally) x.csv.
package dataset

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// System bundles a coefficient matrix, a right-hand side and, when known,
// the reference solution used to measure error.
type System struct {
	Name string
	A    *matrix.Dense
	B    []float64
	X    []float64 // reference solution; nil when unknown
}

// N returns the dimension of the system.
func (s *System) N() int { return len(s.B) }

// Validate checks that A is square and that b (and x, if present) align with it.
// Errors: ErrNotSquare, ErrRowMismatch.
func (s *System) Validate() error {
	if s.A == nil {
		return fmt.Errorf("%s: %w", s.Name, matrix.ErrNilMatrix)
	}
	if s.A.Rows() != s.A.Cols() {
		return fmt.Errorf("%s: A is %dx%d: %w", s.Name, s.A.Rows(), s.A.Cols(), ErrNotSquare)
	}
	if s.A.Rows() != len(s.B) {
		return fmt.Errorf("%s: A has %d rows, but b has %d elements: %w", s.Name, s.A.Rows(), len(s.B), ErrRowMismatch)
	}
	if s.X != nil && len(s.X) != len(s.B) {
		return fmt.Errorf("%s: b has %d elements, but x has %d: %w", s.Name, len(s.B), len(s.X), ErrRowMismatch)
	}

	return nil
}

// smallA, smallB and smallX describe the built-in system; its solution is [8, 6, 7, 5, 3].
var (
	smallA = [][]float64{
		{10, 2, 2, 2, 1},
		{1, 11, 2, 1, 1},
		{1, 1, 12, 1, 1},
		{2, 1, 2, 13, 2},
		{2, 2, 2, 2, 14},
	}
	smallB = []float64{119, 96, 106, 107, 94}
	smallX = []float64{8, 6, 7, 5, 3}
)

// SmallSystem returns fresh copies of the built-in 5×5 system (A, b).
func SmallSystem() (*matrix.Dense, []float64) {
	a, _ := matrix.NewFromRows(smallA) // finite, rectangular literal

	return a, append([]float64(nil), smallB...)
}

// SmallSolution returns a fresh copy of the known solution of SmallSystem.
func SmallSolution() []float64 { return append([]float64(nil), smallX...) }

// Small returns the built-in system with its reference solution attached.
func Small() *System {
	a, b := SmallSystem()

	return &System{Name: "small", A: a, B: b, X: SmallSolution()}
}

// LoadSystem reads A, b and the optional reference x from CSV files.
// Pass an empty xPath when no reference solution is available.
//
// Errors: any ReadMatrixCSV / ReadVectorCSV error, or ErrRowMismatch.
func LoadSystem(aPath, bPath, xPath string) (*System, error) {
	a, err := ReadMatrixCSV(aPath)
	if err != nil {
		return nil, err
	}
	b, err := ReadVectorCSV(bPath)
	if err != nil {
		return nil, err
	}

	s := &System{Name: aPath, A: a, B: b}
	if xPath != "" {
		if s.X, err = ReadVectorCSV(xPath); err != nil {
			return nil, err
		}
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
