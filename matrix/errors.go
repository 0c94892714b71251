// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag
// via %w); tests MUST check them with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<1 or cols<1)
	// or when the number of supplied values does not equal rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) or a nil
	// entry was used.
	ErrNilMatrix = errors.New("matrix: nil matrix or entry")

	// ErrNotInteger is returned by Ints when an entry has a non-unit denominator.
	ErrNotInteger = errors.New("matrix: entry is not an integer")
)
