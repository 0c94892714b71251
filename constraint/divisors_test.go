package constraint_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/cmatfixture/constraint"
	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59}
	for n := -1; n <= 60; n++ {
		want := false
		for _, p := range primes {
			if p == n {
				want = true
			}
		}
		require.Equal(t, want, constraint.IsPrime(n), "n=%d", n)
		require.Equal(t, n > 1 && !want, constraint.IsComposite(n), "n=%d", n)
	}
}

func TestPrimeFactors(t *testing.T) {
	pf, err := constraint.PrimeFactors(360)
	require.NoError(t, err)
	require.Equal(t, []constraint.PrimePower{{Prime: 2, Exp: 3}, {Prime: 3, Exp: 2}, {Prime: 5, Exp: 1}}, pf)

	pf, err = constraint.PrimeFactors(1)
	require.NoError(t, err)
	require.Empty(t, pf)

	pf, err = constraint.PrimeFactors(58)
	require.NoError(t, err)
	require.Equal(t, []constraint.PrimePower{{Prime: 2, Exp: 1}, {Prime: 29, Exp: 1}}, pf)

	_, err = constraint.PrimeFactors(0)
	require.ErrorIs(t, err, constraint.ErrBadSize)
}

func TestDivisorsTwelve(t *testing.T) {
	d, err := constraint.Divisors(12)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 6, 12}, d)

	d, err = constraint.Divisors(1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, d)

	_, err = constraint.Divisors(-4)
	require.ErrorIs(t, err, constraint.ErrBadSize)
}

// TestDivisorsAgainstBruteForce compares every size up to 60 with trial division
// and checks ordering and uniqueness.
func TestDivisorsAgainstBruteForce(t *testing.T) {
	for n := 1; n <= 60; n++ {
		var want []int
		for d := 1; d <= n; d++ {
			if n%d == 0 {
				want = append(want, d)
			}
		}

		got, err := constraint.Divisors(n)
		require.NoError(t, err)
		require.Equal(t, want, got, "n=%d", n)
		require.True(t, sort.IntsAreSorted(got))
		for i := 1; i < len(got); i++ {
			require.NotEqual(t, got[i-1], got[i])
		}
	}
}
