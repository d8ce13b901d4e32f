package ecc

import (
	"crypto/rand"
	"math/big"

	"github.com/lucasmabf/mysha/internal/bignat"
	"github.com/lucasmabf/mysha/internal/sha256"
)

// Signature is an ECDSA-style signature (r, s) bound to the curve and
// public point that produced it.
type Signature struct {
	r, s   *big.Int
	curve  Curve
	public Point
}

// NewSignature builds a Signature directly from raw values, without
// checking the algebraic relation — so a caller may construct a purported
// signature purely to exercise Verify against it.
func NewSignature(r, s *big.Int, curve Curve, public Point) Signature {
	return Signature{
		r:      new(big.Int).Set(r),
		s:      new(big.Int).Set(s),
		curve:  curve,
		public: public,
	}
}

// R returns the r component.
func (s Signature) R() *big.Int { return s.r }

// S returns the s component.
func (s Signature) S() *big.Int { return s.s }

// Curve returns the curve the signature was produced on.
func (s Signature) Curve() Curve { return s.curve }

// Public returns the public point of the purported signer.
func (s Signature) Public() Point { return s.public }

// Sign signs message (decoded per kind) with the given private scalar and
// public point on curve:
//
//	e = int(sha256(message, kind))
//	z = random nonce in [1, n)
//	R = z*G; r = R.x mod n
//	s = z^-1 * (e + k*r) mod n
//
// It does not retry when r or s comes out zero: for cryptographic-size n
// the probability is negligible, so this relies on that rather than
// guarding against it.
func Sign(k *big.Int, q Point, curve Curve, message string, kind sha256.Kind) (Signature, error) {
	hash, err := sha256.Sum(message, kind)
	if err != nil {
		return Signature{}, err
	}
	e := hash.Int()

	n := curve.N()
	z, err := randScalar(n)
	if err != nil {
		return Signature{}, err
	}

	rPoint, err := curve.Multiply(curve.G(), z)
	if err != nil {
		return Signature{}, err
	}
	rx := rPoint.X()
	if rx == nil {
		rx = big.NewInt(0)
	}
	r, err := bignat.ModFloor(rx, n)
	if err != nil {
		return Signature{}, translate(err)
	}

	zInv, err := bignat.ModInv(z, n)
	if err != nil {
		return Signature{}, translate(err)
	}
	kr := new(big.Int).Mul(k, r)
	sum := new(big.Int).Add(e, kr)
	s, err := bignat.ModFloor(new(big.Int).Mul(zInv, sum), n)
	if err != nil {
		return Signature{}, translate(err)
	}

	return Signature{r: r, s: s, curve: curve, public: q}, nil
}

// Verify checks the signature against message (decoded per kind):
//
//	e = int(sha256(message, kind))
//	w = s^-1 mod n
//	P1 = (e*w mod n)*G; P2 = (r*w mod n)*Q; P3 = P1 + P2
//	accept iff P3 != Infinity and P3.x == r
//
// P3.x is compared to r directly, without an extra reduction mod n — unlike
// textbook ECDSA, which reduces P3.x mod n before the comparison.
func (sig Signature) Verify(message string, kind sha256.Kind) (bool, error) {
	hash, err := sha256.Sum(message, kind)
	if err != nil {
		return false, err
	}
	e := hash.Int()

	n := sig.curve.N()
	w, err := bignat.ModInv(sig.s, n)
	if err != nil {
		return false, translate(err)
	}

	u1, err := bignat.ModFloor(new(big.Int).Mul(e, w), n)
	if err != nil {
		return false, translate(err)
	}
	u2, err := bignat.ModFloor(new(big.Int).Mul(sig.r, w), n)
	if err != nil {
		return false, translate(err)
	}

	p1, err := sig.curve.Multiply(sig.curve.G(), u1)
	if err != nil {
		return false, err
	}
	p2, err := sig.curve.Multiply(sig.public, u2)
	if err != nil {
		return false, err
	}
	p3, err := sig.curve.Add(p1, p2)
	if err != nil {
		return false, err
	}

	if p3.IsInfinity() {
		return false, nil
	}
	return p3.X().Cmp(sig.r) == 0, nil
}

// randScalar draws a scalar uniformly from [1, n) using crypto/rand as the
// OS-entropy-seeded source.
func randScalar(n *big.Int) (*big.Int, error) {
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	v, err := rand.Int(rand.Reader, nMinus1)
	if err != nil {
		return nil, err
	}
	return v.Add(v, big.NewInt(1)), nil
}
