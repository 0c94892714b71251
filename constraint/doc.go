// Package constraint turns the per-family domain rules into concrete, valid
// inputs.
//
// Each fixture family needs inputs that satisfy a predicate before the oracle
// can produce an expected value:
//
//   - Determinant / Inverse: a square, regular matrix (rejection sampling).
//   - Dot product: two matrices with equal flattened length, shaped from the
//     divisors of a composite size.
//   - Sub / Add: two matrices of one shared random shape.
//   - Product: shapes (r, k) and (k, c).
//   - Mul / Transpose: any shape.
//
// Rejections (a singular draw, a prime dot size) are expected and handled
// here by resampling. Only exhausting the retry cap escapes, as
// ErrRetriesExhausted, and that is fatal for the whole sequence.
package constraint
