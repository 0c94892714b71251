// SPDX-License-Identifier: MIT
// Package: serialize
//
// field.go - numeric field formats.

package serialize

import (
	"fmt"
	"math/big"
	"strings"
)

type fieldKind int

const (
	fieldPlain fieldKind = iota
	fieldInt
	fieldFixed
)

// Field is one numeric format. The zero value is Plain.
type Field struct {
	kind      fieldKind
	width     int
	precision int
}

// Plain renders integers with no padding ("-12", "7"). Fractions are rejected.
var Plain = Field{}

// Int returns a C "% <width>d" field: a leading space for non-negative values,
// right-justified to width.
func Int(width int) Field {
	return Field{kind: fieldInt, width: width}
}

// Fixed returns a C "% <width>.<precision>f" field.
func Fixed(width, precision int) Field {
	return Field{kind: fieldFixed, width: width, precision: precision}
}

// String returns the printf spelling of the field, e.g. "% 14.10f".
func (f Field) String() string {
	switch f.kind {
	case fieldInt:
		return fmt.Sprintf("%% %dd", f.width)
	case fieldFixed:
		return fmt.Sprintf("%% %d.%df", f.width, f.precision)
	default:
		return "%d"
	}
}

// Format renders v.
//
// Errors: ErrNilValue; ErrNotInteger for a fractional v in a Plain or Int field.
// Complexity: O(digits).
func (f Field) Format(v *big.Rat) (string, error) {
	if v == nil {
		return "", ErrNilValue
	}

	switch f.kind {
	case fieldFixed:
		return formatFixed(v, f.width, f.precision), nil
	case fieldInt:
		if !v.IsInt() {
			return "", fmt.Errorf("%s of %s: %w", f, v.RatString(), ErrNotInteger)
		}
		return fmt.Sprintf("% *d", f.width, v.Num()), nil
	default:
		if !v.IsInt() {
			return "", fmt.Errorf("plain %s: %w", v.RatString(), ErrNotInteger)
		}
		return v.Num().String(), nil
	}
}

// formatFixed mirrors C's "% W.Pf": sign or space, digits rounded half away
// from zero by big.Rat.FloatString, then left-padded to width.
func formatFixed(v *big.Rat, width, precision int) string {
	s := v.FloatString(precision)
	if v.Sign() >= 0 {
		s = " " + s
	}
	if pad := width - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}

	return s
}
