// SPDX-License-Identifier: MIT
// Package: constraint
//
// divisors.go - primality, prime factorization and divisor lists.
//
// Divisors follows the factor-then-combine construction:
//   1. factor n into prime powers p₁^e₁ … p_k^e_k;
//   2. expand every factor into its power list [p^0, p^1, …, p^e];
//   3. take the Cartesian product of those lists;
//   4. collapse each tuple to the product of its elements;
//   5. sort ascending.
// Every tuple yields a distinct divisor, so the result has no duplicates.

package constraint

import (
	"fmt"
	"sort"
)

// PrimePower is one factor p^Exp of a prime factorization.
type PrimePower struct {
	Prime int
	Exp   int
}

// IsPrime reports whether n is prime. Trial division is plenty for the
// sizes used here.
// Complexity: O(√n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// IsComposite reports whether n > 1 and not prime.
func IsComposite(n int) bool {
	return n > 1 && !IsPrime(n)
}

// PrimeFactors returns the prime factorization of n in ascending prime order.
// PrimeFactors(1) is empty.
// Errors: ErrBadSize for n < 1.
// Complexity: O(√n).
func PrimeFactors(n int) ([]PrimePower, error) {
	if n < 1 {
		return nil, fmt.Errorf("PrimeFactors(%d): %w", n, ErrBadSize)
	}

	var out []PrimePower
	rest := n
	for p := 2; p*p <= rest; p++ {
		if rest%p != 0 {
			continue
		}
		pp := PrimePower{Prime: p}
		for rest%p == 0 {
			rest /= p
			pp.Exp++
		}
		out = append(out, pp)
	}
	if rest > 1 {
		out = append(out, PrimePower{Prime: rest, Exp: 1})
	}

	return out, nil
}

// Divisors returns every positive divisor of n in ascending order.
// Divisors(1) == [1].
// Errors: ErrBadSize for n < 1.
// Complexity: O(√n + d·k) where d is the divisor count and k the number of primes.
func Divisors(n int) ([]int, error) {
	factors, err := PrimeFactors(n)
	if err != nil {
		return nil, fmt.Errorf("Divisors: %w", err)
	}
	if len(factors) == 0 {
		return []int{1}, nil
	}

	// 2. power lists per factor
	powers := make([][]int, len(factors))
	for i, f := range factors {
		list := make([]int, f.Exp+1)
		list[0] = 1
		for e := 1; e <= f.Exp; e++ {
			list[e] = list[e-1] * f.Prime
		}
		powers[i] = list
	}

	// 3. Cartesian product of the power lists
	tuples := [][]int{{}}
	for _, list := range powers {
		next := make([][]int, 0, len(tuples)*len(list))
		for _, tup := range tuples {
			for _, v := range list {
				t := make([]int, len(tup), len(tup)+1)
				copy(t, tup)
				next = append(next, append(t, v))
			}
		}
		tuples = next
	}

	// 4. collapse each tuple to its product
	out := make([]int, len(tuples))
	for i, tup := range tuples {
		prod := 1
		for _, v := range tup {
			prod *= v
		}
		out[i] = prod
	}

	// 5. ascending
	sort.Ints(out)

	return out, nil
}
