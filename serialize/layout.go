// SPDX-License-Identifier: MIT
// Package: serialize
//
// layout.go - per-family record layouts.

package serialize

import (
	"fmt"

	"github.com/katalvlaran/cmatfixture/fixture"
)

// Element types of the generated value arrays.
const (
	ElemFloat  = "float"
	ElemDouble = "double"
)

// Layout fixes how one family is rendered.
type Layout struct {
	Kind fixture.Kind

	// Elem is the C element type of matrix value arrays.
	Elem string

	// WithCols emits the column count; square-only families emit one size.
	WithCols bool

	// In formats input matrices, Out formats result matrices.
	In, Out Field

	// Scalar formats scalar operands and scalar answers.
	Scalar Field

	// Members are the record struct members, in emission order.
	Members []string

	// IndexComment prefixes every record with "// <index>".
	IndexComment bool
}

// LayoutFor returns the layout of family k.
// Errors: fixture.ErrUnknownKind.
func LayoutFor(k fixture.Kind) (Layout, error) {
	l := Layout{
		Kind:     k,
		Elem:     ElemFloat,
		WithCols: true,
		In:       Int(3),
		Out:      Int(3),
		Scalar:   Plain,
	}

	switch k {
	case fixture.Determinant:
		l.Members = []string{"matrix_info_t op;", "float ans;"}
		l.IndexComment = true
	case fixture.Dot:
		l.Members = []string{"matrix_info_t op1;", "matrix_info_t op2;", "float ans;"}
	case fixture.Inverse:
		l.Elem, l.WithCols = ElemDouble, false
		l.In, l.Out = Fixed(14, 10), Fixed(14, 10)
		l.Members = []string{"matrix_info_t op;", "matrix_info_t ans;"}
	case fixture.InversePrecise:
		// Inputs keep the narrow integer field although the array is double.
		l.Elem, l.WithCols = ElemDouble, false
		l.In, l.Out = Int(4), Fixed(34, 30)
		l.Members = []string{"matrix_info_t op;", "matrix_info_t ans;"}
	case fixture.Mul:
		l.In, l.Out = Int(4), Int(4)
		l.Members = []string{"matrix_info_t op1;", "float op2;", "matrix_info_t ans;"}
	case fixture.Product:
		l.Out = Int(5)
		l.Members = []string{"matrix_info_t op1;", "matrix_info_t op2;", "matrix_info_t ans;"}
	case fixture.Sub, fixture.Add:
		l.Members = []string{"matrix_info_t op1;", "matrix_info_t op2;", "matrix_info_t ans;"}
	case fixture.Transpose:
		l.Members = []string{"matrix_info_t op;", "matrix_info_t ans;"}
	default:
		return Layout{}, fmt.Errorf("LayoutFor(%v): %w", k, fixture.ErrUnknownKind)
	}

	return l, nil
}

// String summarizes the layout, e.g. "double size in=% 4d out=% 34.30f".
func (l Layout) String() string {
	dims := "rows,cols"
	if !l.WithCols {
		dims = "size"
	}

	return fmt.Sprintf("%s %s in=%s out=%s", l.Elem, dims, l.In, l.Out)
}
