// Package matrix provides the exact, immutable Matrix value used by every
// fixture family.
//
// A Dense holds rows×cols rational entries in row-major order. Entries are
// *big.Rat so that products, differences and inverses of integer matrices stay
// exact until the serializer renders them with a fixed decimal precision.
//
// The package provides:
//
//   - Constructors: NewDense, FromInts, FromRows, Identity.
//   - Read-only accessors: At, Values, Float64s, Ints, Equal, String.
//   - Shape-checked kernels: Add, Sub, Mul, Scale, ScaleInt, Transpose.
//
// Guarantees:
//
//   - Immutability: constructors copy their input and accessors return copies,
//     so a Dense never changes after creation.
//   - Fail-fast validation: kernels return ErrDimensionMismatch, ErrBadShape or
//     ErrNilMatrix (wrapped with the operation tag) and never panic on input.
//   - Determinism: fixed i→j→k loop orders; exact arithmetic has no rounding.
package matrix
