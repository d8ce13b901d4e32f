// Package ecc implements a generic short-Weierstrass elliptic curve engine
// (field arithmetic mod p, affine point addition/doubling/scalar
// multiplication) and the ECDSA-style signing protocol built on top of it.
// Unlike production curve libraries, this engine works over any caller-
// supplied (a, b, p, n, G) — including secp256k1, built in via Secp256k1()
// — and deliberately uses plain math/big rather than a fixed-field,
// constant-time representation: it favors clarity and generality over
// resistance to timing side channels.
package ecc

import (
	"math/big"

	"github.com/lucasmabf/mysha/internal/bignat"
)

// Curve is a short-Weierstrass curve y^2 = x^3 + ax + b (mod p), with
// subgroup order n and generator G. It is immutable after construction.
type Curve struct {
	a, b *big.Int
	p    *big.Int
	n    *big.Int
	g    Point
}

// New validates and constructs a Curve from its defining parameters,
// enforcing:
//  1. G != Infinity
//  2. non-singularity: 4a^3 + 27b^2 !≡ 0 (mod p)
//  3. n != 0
//  4. n*G = Infinity
//  5. G is on the curve
func New(a, b, p, n *big.Int, g Point) (Curve, error) {
	if g.IsInfinity() {
		return Curve{}, ErrGeneratorOnInfinity
	}

	a3 := new(big.Int).Mul(new(big.Int).Mul(a, a), a)
	a3.Mul(a3, big.NewInt(4))
	b2 := new(big.Int).Mul(b, b)
	b2.Mul(b2, big.NewInt(27))
	disc := new(big.Int).Add(a3, b2)
	discMod, err := bignat.ModFloor(disc, p)
	if err != nil {
		return Curve{}, translate(err)
	}
	if discMod.Sign() == 0 {
		return Curve{}, ErrSingularCurve
	}

	if n.Sign() == 0 {
		return Curve{}, ErrInvalidOrderN
	}

	c := Curve{
		a: new(big.Int).Set(a),
		b: new(big.Int).Set(b),
		p: new(big.Int).Set(p),
		n: new(big.Int).Set(n),
		g: g,
	}

	nG, err := c.Multiply(c.g, n)
	if err != nil {
		return Curve{}, err
	}
	if !nG.IsInfinity() {
		return Curve{}, ErrInvalidOrderN
	}

	if !c.IsOnCurve(c.g) {
		return Curve{}, ErrGeneratorNotOnCurve
	}

	return c, nil
}

// translate maps a bignat error into the matching ecc error.
func translate(err error) error {
	switch err {
	case bignat.ErrDivisionByZero:
		return ErrDivisionByZero
	case bignat.ErrNotPrime:
		return ErrNotPrime
	default:
		return err
	}
}

// A returns the curve's a parameter.
func (c Curve) A() *big.Int { return c.a }

// B returns the curve's b parameter.
func (c Curve) B() *big.Int { return c.b }

// P returns the curve's field prime.
func (c Curve) P() *big.Int { return c.p }

// N returns the curve's subgroup order.
func (c Curve) N() *big.Int { return c.n }

// G returns the curve's generator point.
func (c Curve) G() Point { return c.g }

// IsOnCurve reports whether p satisfies y^2 ≡ x^3 + ax + b (mod p). Infinity
// is always considered on the curve.
func (c Curve) IsOnCurve(p Point) bool {
	x, y, ok := p.XY()
	if !ok {
		return true
	}
	lhs := new(big.Int).Mul(y, y)
	x3 := new(big.Int).Mul(new(big.Int).Mul(x, x), x)
	ax := new(big.Int).Mul(c.a, x)
	rhs := new(big.Int).Add(x3, ax)
	rhs.Add(rhs, c.b)

	diff := new(big.Int).Sub(lhs, rhs)
	residue, err := bignat.ModFloor(diff, c.p)
	if err != nil {
		return false
	}
	return residue.Sign() == 0
}

// Negate returns the additive inverse of p: Infinity maps to Infinity,
// (x, y) maps to (x, -y mod p).
func (c Curve) Negate(p Point) (Point, error) {
	if p.IsInfinity() {
		return Infinity, nil
	}
	negY, err := bignat.ModFloor(new(big.Int).Neg(p.y), c.p)
	if err != nil {
		return Point{}, translate(err)
	}
	return NewPoint(p.x, negY), nil
}

// Add performs the short-Weierstrass group addition law.
func (c Curve) Add(p, q Point) (Point, error) {
	if !c.IsOnCurve(p) || !c.IsOnCurve(q) {
		return Point{}, ErrNotOnCurve
	}
	if p.Equal(q) {
		return c.Double(p)
	}
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	if p.x.Cmp(q.x) == 0 {
		// p.x == q.x and p != q implies p.y == -q.y: the sum is Infinity.
		return Infinity, nil
	}

	dx := new(big.Int).Sub(p.x, q.x)
	dxInv, err := bignat.ModInv(dx, c.p)
	if err != nil {
		return Point{}, translate(err)
	}
	dy := new(big.Int).Sub(p.y, q.y)
	lambda, err := bignat.ModFloor(new(big.Int).Mul(dy, dxInv), c.p)
	if err != nil {
		return Point{}, translate(err)
	}

	x, err := c.reduce(new(big.Int).Sub(new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), p.x), q.x))
	if err != nil {
		return Point{}, err
	}
	yTerm := new(big.Int).Mul(lambda, new(big.Int).Sub(p.x, x))
	y, err := c.reduce(new(big.Int).Sub(yTerm, p.y))
	if err != nil {
		return Point{}, err
	}
	return NewPoint(x, y), nil
}

// Double performs the short-Weierstrass point-doubling law.
func (c Curve) Double(p Point) (Point, error) {
	if !c.IsOnCurve(p) {
		return Point{}, ErrNotOnCurve
	}
	if p.IsInfinity() {
		return Infinity, nil
	}
	if p.y.Sign() == 0 {
		return Infinity, nil
	}

	threeXSq := new(big.Int).Mul(big.NewInt(3), new(big.Int).Mul(p.x, p.x))
	num := new(big.Int).Add(threeXSq, c.a)
	twoY := new(big.Int).Mul(big.NewInt(2), p.y)
	twoYInv, err := bignat.ModInv(twoY, c.p)
	if err != nil {
		return Point{}, translate(err)
	}
	lambda, err := bignat.ModFloor(new(big.Int).Mul(num, twoYInv), c.p)
	if err != nil {
		return Point{}, translate(err)
	}

	x, err := c.reduce(new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), new(big.Int).Mul(big.NewInt(2), p.x)))
	if err != nil {
		return Point{}, err
	}
	yTerm := new(big.Int).Mul(lambda, new(big.Int).Sub(p.x, x))
	y, err := c.reduce(new(big.Int).Sub(yTerm, p.y))
	if err != nil {
		return Point{}, err
	}
	return NewPoint(x, y), nil
}

// Multiply computes k*P via left-to-right double-and-add over the bits of
// |k|. A negative k multiplies -P by |k| instead.
func (c Curve) Multiply(p Point, k *big.Int) (Point, error) {
	if k.Sign() == 0 {
		return Infinity, nil
	}

	base := p
	abs := new(big.Int).Abs(k)
	if k.Sign() < 0 {
		neg, err := c.Negate(p)
		if err != nil {
			return Point{}, err
		}
		base = neg
	}

	bits := abs.Text(2)
	current := base
	for _, bit := range bits[1:] {
		var err error
		current, err = c.Double(current)
		if err != nil {
			return Point{}, err
		}
		if bit == '1' {
			current, err = c.Add(current, base)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return current, nil
}

func (c Curve) reduce(x *big.Int) (*big.Int, error) {
	r, err := bignat.ModFloor(x, c.p)
	if err != nil {
		return nil, translate(err)
	}
	return r, nil
}
