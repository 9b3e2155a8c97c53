// SPDX-License-Identifier: MIT

package dataset

import "errors"

// Missing files and malformed data are distinct error kinds:
// ErrFileNotFound also matches fs.ErrNotExist, the rest describe content.
var (
	// ErrFileNotFound is returned when a CSV path does not exist.
	ErrFileNotFound = errors.New("dataset: file not found")

	// ErrEmpty is returned when a CSV holds no data rows.
	ErrEmpty = errors.New("dataset: csv is empty")

	// ErrNonNumeric is returned when a cell cannot be parsed as a float.
	ErrNonNumeric = errors.New("dataset: csv contains non-numeric data")

	// ErrNotRectangular is returned when matrix rows differ in length.
	ErrNotRectangular = errors.New("dataset: matrix is not rectangular")

	// ErrNotSquare is returned when the coefficient matrix is not N×N.
	ErrNotSquare = errors.New("dataset: matrix is not square")

	// ErrNotSingleColumn is returned when a vector CSV row has more than one column.
	ErrNotSingleColumn = errors.New("dataset: vector csv must have exactly one column")

	// ErrRowMismatch is returned when A, b (and x) disagree on the number of rows.
	ErrRowMismatch = errors.New("dataset: row count mismatch")
)
