// SPDX-License-Identifier: MIT
// Package: serialize
//
// errors.go - sentinel errors for the serialize package.

package serialize

import "errors"

var (
	// ErrNotInteger indicates a fractional value routed to an integer field.
	ErrNotInteger = errors.New("serialize: value is not an integer")

	// ErrKindMismatch indicates a record whose family differs from the layout's.
	ErrKindMismatch = errors.New("serialize: record family does not match layout")

	// ErrNilValue indicates a nil matrix or scalar inside a record.
	ErrNilValue = errors.New("serialize: nil value")
)
