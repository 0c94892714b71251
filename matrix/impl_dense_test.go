// Package matrix_test contains unit tests for the Dense value type.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/cmatfixture/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidShape ensures constructors reject non-positive dimensions
// and value counts that do not match rows*cols.
func TestNewDenseInvalidShape(t *testing.T) {
	_, err := matrix.FromInts(0, 5, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromInts(5, 0, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromInts(2, 2, []int64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(1, 2, []*big.Rat{big.NewRat(1, 1), nil})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromRowsRagged verifies that every row must have identical length.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6, m.Len())
	require.False(t, m.IsSquare())
}

// TestDenseImmutable checks that neither the constructor input nor accessor
// output aliases the matrix storage.
func TestDenseImmutable(t *testing.T) {
	in := []*big.Rat{big.NewRat(1, 2), big.NewRat(3, 1)}
	m, err := matrix.NewDense(1, 2, in)
	require.NoError(t, err)

	in[0].SetInt64(99) // mutate caller slice
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "1/2", v.RatString())

	v.SetInt64(42) // mutate returned copy
	again, _ := m.At(0, 0)
	require.Equal(t, "1/2", again.RatString())

	vals := m.Values()
	vals[1].SetInt64(-7)
	again, _ = m.At(0, 1)
	require.Equal(t, "3", again.RatString())
}

// TestAtOutOfRange ensures At returns ErrOutOfRange on invalid access.
func TestAtOutOfRange(t *testing.T) {
	m, err := matrix.Identity(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestIntsAndFloats(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{-10, 0}, {9, 3}})
	require.NoError(t, err)
	require.True(t, m.IsInteger())

	ints, err := m.Ints()
	require.NoError(t, err)
	require.Equal(t, []int64{-10, 0, 9, 3}, ints)
	require.Equal(t, []float64{-10, 0, 9, 3}, m.Float64s())

	half, err := matrix.NewDense(1, 1, []*big.Rat{big.NewRat(1, 2)})
	require.NoError(t, err)
	require.False(t, half.IsInteger())
	_, err = half.Ints()
	require.ErrorIs(t, err, matrix.ErrNotInteger)
	require.Equal(t, []float64{0.5}, half.Float64s())
}

func TestEqualAndString(t *testing.T) {
	a, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	c, _ := matrix.FromRows([][]int64{{1, 2, 3, 4}})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c)) // same values, different shape
	require.False(t, a.Equal(nil))
	require.Equal(t, "[1, 2]\n[3, 4]\n", a.String())
}
