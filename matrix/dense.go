// SPDX-License-Identifier: MIT

// Dense storage (row-major) and safe accessors.

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Rat values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is not usable; build one with NewDense, FromInts, FromRows or Identity.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, never shared
}

// NewDense creates an r×c Dense from row-major values. The values are copied,
// so later changes to the caller's *big.Rat do not leak into the matrix.
// Stage 1 (Validate): rows, cols > 0; len(values) == rows*cols; no nil entry.
// Stage 2 (Finalize): deep-copy values.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, values []*big.Rat) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense %dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("NewDense %dx%d with %d values: %w", rows, cols, len(values), ErrBadShape)
	}

	data := make([]*big.Rat, len(values))
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("NewDense: value %d: %w", i, ErrNilMatrix)
		}
		data[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromInts creates an r×c Dense from row-major integer values.
// Complexity: O(r*c).
func FromInts(rows, cols int, values []int64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("FromInts %dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("FromInts %dx%d with %d values: %w", rows, cols, len(values), ErrBadShape)
	}

	data := make([]*big.Rat, len(values))
	for i, v := range values {
		data[i] = new(big.Rat).SetInt64(v)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows creates a Dense from a slice of integer rows.
// Every row must have the same, non-zero length.
func FromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: empty input: %w", ErrBadShape)
	}

	cols := len(rows[0])
	flat := make([]int64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return FromInts(len(rows), cols, flat)
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity(%d): %w", n, ErrBadShape)
	}

	m := newZero(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// newZero allocates a zero-filled r×c Dense. Callers guarantee r, c > 0.
func newZero(r, c int) *Dense {
	data := make([]*big.Rat, r*c)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: r, c: c, data: data}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// Len returns rows*cols, the length of the flattened value sequence.
func (m *Dense) Len() int {
	return len(m.data)
}

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool {
	return m.r == m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
// Complexity: O(1) plus the copy of one rational.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Values returns a deep copy of the row-major value sequence.
// Complexity: O(r*c).
func (m *Dense) Values() []*big.Rat {
	out := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// Float64s returns the row-major values rounded to the nearest float64.
func (m *Dense) Float64s() []float64 {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i], _ = v.Float64()
	}

	return out
}

// IsInteger reports whether every entry has denominator 1.
func (m *Dense) IsInteger() bool {
	for _, v := range m.data {
		if !v.IsInt() {
			return false
		}
	}

	return true
}

// Ints returns the row-major values as int64.
// Returns ErrNotInteger if an entry is fractional or does not fit in an int64.
func (m *Dense) Ints() ([]int64, error) {
	out := make([]int64, len(m.data))
	for i, v := range m.data {
		if !v.IsInt() || !v.Num().IsInt64() {
			return nil, denseErrorf("Ints", i/m.c, i%m.c, ErrNotInteger)
		}
		out[i] = v.Num().Int64()
	}

	return out, nil
}

// Equal reports whether m and o have the same shape and identical entries.
// A nil matrix is only equal to another nil matrix.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed row per line,
// entries printed with big.Rat.RatString ("3", "-1/5").
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
