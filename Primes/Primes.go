// Package Primes finds primes for sizing hash tables.
package Primes

import (
	Go_DSA "github.com/g-m-twostay/go-dsa"
	"golang.org/x/exp/constraints"
)

// sieve marks every composite below bound. Index i is up iff i is 0, 1 or composite.
// Time: O(bound*log(log(bound))); Space: O(bound) bits
func sieve(bound int) Go_DSA.BitArray {
	comp := Go_DSA.New(bound)
	comp.Up(0)
	if bound > 1 {
		comp.Up(1)
	}
	for p := 2; p*p < bound; p++ {
		if !comp.Get(p) {
			for m := p * p; m < bound; m += p {
				comp.Up(m)
			}
		}
	}
	return comp
}

// Largest prime strictly smaller than bound. Returns (0, false) when bound<=2.
func Largest[S constraints.Unsigned](bound S) (S, bool) {
	if bound <= 2 {
		return 0, false
	}
	comp := sieve(int(bound))
	for i := int(bound) - 1; i > 1; i-- {
		if !comp.Get(i) {
			return S(i), true
		}
	}
	return 0, false
}

// IsPrime by trial division.
// Time: O(sqrt(n))
func IsPrime[S constraints.Unsigned](n S) bool {
	if n < 2 {
		return false
	}
	for d := S(2); d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// AtLeast returns the smallest prime that is not smaller than n. The result is at least 2.
func AtLeast[S constraints.Unsigned](n S) S {
	if n < 2 {
		return 2
	}
	for !IsPrime(n) {
		n++
	}
	return n
}

// Iterator yields, on each call to Next, the largest prime below the current
// bound, then moves the bound to that prime times factor. With factor 2 the
// sequence approximates "next prime after doubling".
// The zero value yields nothing.
type Iterator[S constraints.Unsigned] struct {
	bound, factor S
}

func NewIterator[S constraints.Unsigned](upperBound, factor S) *Iterator[S] {
	return &Iterator[S]{upperBound, factor}
}

// Next prime of the sequence. Once it returns false it keeps returning false.
func (u *Iterator[S]) Next() (S, bool) {
	p, ok := Largest(u.bound)
	if !ok {
		u.bound = 0
		return 0, false
	}
	u.bound = p * u.factor
	return p, true
}

// Bound that the next call to Next searches below.
func (u *Iterator[S]) Bound() S {
	return u.bound
}
