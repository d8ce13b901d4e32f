// Package bignat provides the Euclidean-mod reduction and extended-Euclidean
// modular inverse that the curve engine builds on, wrapping math/big with a
// named error taxonomy instead of panics or bare booleans.
package bignat

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when the modulus is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNotPrime is returned by ModInv when the post-check a*y ≡ 1 (mod p)
// fails, meaning gcd(a, p) != 1 — the lazy signal that p isn't prime (or a
// shares a factor with it).
var ErrNotPrime = errors.New("modulo is not prime")

// ModFloor returns x reduced modulo p as the unique Euclidean residue in
// [0, p), for p > 0. Go's big.Int.Mod already implements Euclidean mod
// (always non-negative for a positive modulus), so this wrapper exists to
// give the [0,p) contract and the zero-modulus error a name callers can
// check explicitly.
func ModFloor(x, p *big.Int) (*big.Int, error) {
	if p.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	abs := new(big.Int).Abs(p)
	r := new(big.Int).Mod(x, abs)
	return r, nil
}

// ModInv returns the unique y in [0, p) such that a*y ≡ 1 (mod p), found via
// the extended Euclidean algorithm. It fails with ErrDivisionByZero if a ≡ 0
// (mod p), and with ErrNotPrime if gcd(a, p) != 1 — the lazy check that
// catches a non-prime p (or n).
func ModInv(a, p *big.Int) (*big.Int, error) {
	a0, err := ModFloor(a, p)
	if err != nil {
		return nil, err
	}
	if a0.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	m := new(big.Int).Abs(p)
	aa := new(big.Int).Set(a0)

	y0 := big.NewInt(0)
	y := big.NewInt(1)

	one := big.NewInt(1)
	for aa.Cmp(one) > 0 {
		q := new(big.Int).Div(m, aa)
		newY := new(big.Int).Sub(y0, new(big.Int).Mul(q, y))
		y0 = y
		y = newY

		newA := new(big.Int).Mod(m, aa)
		m = aa
		aa = newA
	}

	result, err := ModFloor(y, p)
	if err != nil {
		return nil, err
	}

	check, err := ModFloor(new(big.Int).Mul(result, a0), p)
	if err != nil {
		return nil, err
	}
	if check.Cmp(one) != 0 {
		return nil, ErrNotPrime
	}
	return result, nil
}
