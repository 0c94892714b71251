package constraint_test

import (
	"testing"

	"github.com/katalvlaran/cmatfixture/constraint"
	"github.com/katalvlaran/cmatfixture/matrix"
	"github.com/katalvlaran/cmatfixture/oracle"
	"github.com/katalvlaran/cmatfixture/sampler"
	"github.com/stretchr/testify/require"
)

func newResolver(seed int64, opts ...constraint.Option) *constraint.Resolver {
	return constraint.New(sampler.New(sampler.WithSeed(seed)), opts...)
}

func TestRegularSquare(t *testing.T) {
	r := newResolver(5)
	for i := 0; i < 30; i++ {
		reg, err := r.RegularSquare()
		require.NoError(t, err)
		require.True(t, reg.M.IsSquare())
		require.GreaterOrEqual(t, reg.M.Rows(), 1)
		require.LessOrEqual(t, reg.M.Rows(), constraint.DefaultMaxDim)
		require.True(t, oracle.IsRegular(reg.M))

		id, _ := matrix.Identity(reg.M.Rows())
		prod, err := matrix.Mul(reg.Inv, reg.M)
		require.NoError(t, err)
		require.True(t, prod.Equal(id))
	}
}

// TestRegularSquareRetryCap forces every draw to be singular (all zeros).
func TestRegularSquareRetryCap(t *testing.T) {
	s := sampler.New(sampler.WithSeed(1), sampler.WithRange(0, 1))
	r := constraint.New(s, constraint.WithRetryCap(5))

	_, err := r.RegularSquare()
	require.ErrorIs(t, err, constraint.ErrRetriesExhausted)
	require.Equal(t, 5, r.Rejections())
}

func TestDotSizeIsComposite(t *testing.T) {
	r := newResolver(8)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		s, err := r.DotSize()
		require.NoError(t, err)
		require.True(t, constraint.IsComposite(s), "s=%d", s)
		require.LessOrEqual(t, s, constraint.DefaultMaxDotSize)
		seen[s] = true
	}
	require.False(t, seen[1])
	require.Greater(t, r.Rejections(), 0)
}

func TestCheckComposite(t *testing.T) {
	require.ErrorIs(t, constraint.CheckComposite(13), constraint.ErrPrimeSize)
	require.ErrorIs(t, constraint.CheckComposite(1), constraint.ErrPrimeSize)
	require.NoError(t, constraint.CheckComposite(12))
}

func TestDotPairShapes(t *testing.T) {
	r := newResolver(21)
	for i := 0; i < 200; i++ {
		d, err := r.DotPair()
		require.NoError(t, err)
		require.Contains(t, d.Divisors, d.N)
		require.Contains(t, d.Divisors, d.M)
		require.Equal(t, d.N, d.Op1.Rows())
		require.Equal(t, d.Size/d.N, d.Op1.Cols())
		require.Equal(t, d.M, d.Op2.Rows())
		require.Equal(t, d.Size/d.M, d.Op2.Cols())
		require.Equal(t, d.Size, d.Op1.Len())
		require.Equal(t, d.Size, d.Op2.Len())
	}
}

func TestDotPairForTwelve(t *testing.T) {
	r := newResolver(1)
	divs, err := constraint.Divisors(12)
	require.NoError(t, err)

	d, err := r.DotPairFor(12, divs, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, d.Op1.Rows())
	require.Equal(t, 4, d.Op1.Cols())
	require.Equal(t, 4, d.Op2.Rows())
	require.Equal(t, 3, d.Op2.Cols())

	_, err = oracle.InnerProduct(d.Op1, d.Op2)
	require.NoError(t, err)

	_, err = r.DotPairFor(12, divs, 5, 4)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestShapePolicies(t *testing.T) {
	r := newResolver(33, constraint.WithMaxDim(4))
	for i := 0; i < 50; i++ {
		m, err := r.AnyShape()
		require.NoError(t, err)
		require.LessOrEqual(t, m.Rows(), 4)
		require.LessOrEqual(t, m.Cols(), 4)

		a, b, err := r.SameShapePair()
		require.NoError(t, err)
		require.Equal(t, a.Rows(), b.Rows())
		require.Equal(t, a.Cols(), b.Cols())

		p, q, err := r.ProductPair()
		require.NoError(t, err)
		require.Equal(t, p.Cols(), q.Rows())

		sc := r.Scalar()
		require.GreaterOrEqual(t, sc, sampler.DefaultLow)
		require.Less(t, sc, sampler.DefaultHigh)
	}
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { constraint.WithMaxDim(0) })
	require.Panics(t, func() { constraint.WithMaxDotSize(3) })
	require.Panics(t, func() { constraint.WithRetryCap(0) })
	require.Panics(t, func() { constraint.New(nil) })
}
