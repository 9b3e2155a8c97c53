// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

// DecodeMatrix reads a square coefficient matrix from CSV.
//
// Blank lines are skipped. Every cell must parse as a float64 and every row
// must have the same number of columns as there are rows.
//
// Errors: ErrNonNumeric, ErrEmpty, ErrNotRectangular, ErrNotSquare, or the
// underlying csv parse error.
func DecodeMatrix(r io.Reader) (*matrix.Dense, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		if rows[i], err = parseRow(rec, i); err != nil {
			return nil, err
		}
	}

	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i+1, len(row), cols, ErrNotRectangular)
		}
	}
	if len(rows) != cols {
		return nil, fmt.Errorf("has %d rows and %d columns: %w", len(rows), cols, ErrNotSquare)
	}

	return matrix.NewFromRows(rows)
}

// DecodeVector reads a single-column vector from CSV.
//
// Errors: ErrNotSingleColumn, ErrNonNumeric, ErrEmpty, or the underlying
// csv parse error.
func DecodeVector(r io.Reader) ([]float64, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	vec := make([]float64, 0, len(records))
	for i, rec := range records {
		if len(rec) != 1 {
			return nil, fmt.Errorf("row %d has %d columns: %w", i+1, len(rec), ErrNotSingleColumn)
		}
		row, err := parseRow(rec, i)
		if err != nil {
			return nil, err
		}
		vec = append(vec, row[0])
	}
	if len(vec) == 0 {
		return nil, ErrEmpty
	}

	return vec, nil
}

// ReadMatrixCSV opens path and decodes a square matrix from it.
// A missing file yields ErrFileNotFound (also matching fs.ErrNotExist).
func ReadMatrixCSV(path string) (*matrix.Dense, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := DecodeMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("matrix csv %s: %w", path, err)
	}

	return m, nil
}

// ReadVectorCSV opens path and decodes a single-column vector from it.
// A missing file yields ErrFileNotFound (also matching fs.ErrNotExist).
func ReadVectorCSV(path string) ([]float64, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := DecodeVector(f)
	if err != nil {
		return nil, fmt.Errorf("vector csv %s: %w", path, err)
	}

	return v, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrFileNotFound, err)
	}

	return f, err
}

// readRecords returns all non-blank CSV records with variable field counts.
func readRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // shape is validated by the callers
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	out := records[:0]
	for _, rec := range records {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		out = append(out, rec)
	}

	return out, nil
}

func parseRow(rec []string, line int) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, cell := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("row %d column %d %q: %w", line+1, j+1, cell, ErrNonNumeric)
		}
		row[j] = v
	}

	return row, nil
}
