// SPDX-License-Identifier: MIT
// Package: fixture
//
// kind.go - the family enumeration.

package fixture

import (
	"fmt"
	"strings"
)

// Kind identifies an operation family.
type Kind int

// Families. The first seven are the standard set; Product and Add cover the
// library's matrix product and element-wise sum.
const (
	Determinant Kind = iota
	Dot
	Inverse
	InversePrecise
	Mul
	Sub
	Transpose
	Product
	Add
)

// Trial counts per sequence.
const (
	DefaultTrials = 100
	PreciseTrials = 2000
)

var kindNames = [...]string{
	Determinant:    "det",
	Dot:            "dot",
	Inverse:        "inverse",
	InversePrecise: "inverse_precise",
	Mul:            "mul",
	Sub:            "sub",
	Transpose:      "transpose",
	Product:        "product",
	Add:            "add",
}

// String returns the family name used on the command line and in file names.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k is one of the declared families.
func (k Kind) Valid() bool {
	return k >= Determinant && k <= Add
}

// Trials returns the default number of records in a sequence of this family.
func (k Kind) Trials() int {
	if k == InversePrecise {
		return PreciseTrials
	}

	return DefaultTrials
}

// ParseKind maps a family name (case-insensitive; "-" and "_" are equivalent)
// back to its Kind.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for k, n := range kindNames {
		if n == norm {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// Standard returns the default family set, in order.
func Standard() []Kind {
	return []Kind{Determinant, Dot, Inverse, InversePrecise, Mul, Sub, Transpose}
}

// All returns every family, in declaration order.
func All() []Kind {
	return append(Standard(), Product, Add)
}
