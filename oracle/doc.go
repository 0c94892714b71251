// Package oracle is the trusted reference against which the matrix library
// under test is checked.
//
// Every function is pure: inputs are never mutated and no state is kept
// between calls. Arithmetic is exact (math/big), so an expected value is the
// true result of the operation on the sampled integers; the only loss of
// precision happens later, when the serializer rounds it to a fixed number of
// decimals.
//
//   - Determinant: fraction-free Bareiss elimination for integer matrices,
//     rational Gaussian elimination otherwise.
//   - Inverse: Gauss-Jordan elimination on [M | I] with partial pivoting.
//   - InnerProduct: Σ a[i]·b[i] over the row-major flattening.
//   - Multiply, ScalarMultiply, Subtract, Add, Transpose: the matrix kernels.
package oracle
