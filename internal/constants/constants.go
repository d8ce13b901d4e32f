// Package constants derives the eight SHA-256 initial hash words and the
// sixty-four round constants from the fractional parts of the square and
// cube roots of the first primes, per FIPS 180-4.
package constants

import (
	"math"
	"sync"
)

var (
	once sync.Once
	h    [8]uint32
	k    [64]uint32
)

// H returns the eight initial hash words, computed (once, lazily) from the
// fractional parts of the square roots of the first eight primes.
func H() [8]uint32 {
	once.Do(initAll)
	return h
}

// K returns the sixty-four round constants, computed (once, lazily) from the
// fractional parts of the cube roots of the first sixty-four primes.
func K() [64]uint32 {
	once.Do(initAll)
	return k
}

func initAll() {
	p := primes(64)
	for i := 0; i < 8; i++ {
		h[i] = fracWord(math.Sqrt(float64(p[i])))
	}
	for i := 0; i < 64; i++ {
		k[i] = fracWord(math.Cbrt(float64(p[i])))
	}
}

// fracWord takes the fractional part of x and scales it into the top bits of
// a uint32, i.e. floor(frac(x) * 2^32).
func fracWord(x float64) uint32 {
	frac := x - math.Trunc(x)
	return uint32(frac * 4294967296.0)
}

// primes returns the first n primes via trial division. n is always a small
// compile-time-bounded constant (8 or 64) so the naive O(n^2) sieve is fine.
func primes(n int) []uint64 {
	out := make([]uint64, 0, n)
	out = append(out, 2)
	for candidate := uint64(3); len(out) < n; candidate += 2 {
		isPrime := true
		for _, p := range out {
			if p*p > candidate {
				break
			}
			if candidate%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			out = append(out, candidate)
		}
	}
	return out
}
