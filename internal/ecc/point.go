package ecc

import "math/big"

// Point is a tagged value that is either a finite affine point (X, Y) or the
// distinguished Infinity element, the group identity.
type Point struct {
	x, y     *big.Int
	infinity bool
}

// Infinity is the point at infinity, the identity of every curve's group.
var Infinity = Point{infinity: true}

// NewPoint builds a finite affine point. It performs no curve validity
// check; use Curve.IsOnCurve to verify membership.
func NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// IsInfinity reports whether p is the identity element.
func (p Point) IsInfinity() bool { return p.infinity }

// XY returns the affine coordinates of p and true, or (nil, nil, false) if p
// is Infinity.
func (p Point) XY() (x, y *big.Int, ok bool) {
	if p.infinity {
		return nil, nil, false
	}
	return p.x, p.y, true
}

// X returns the affine x coordinate, or nil if p is Infinity.
func (p Point) X() *big.Int {
	if p.infinity {
		return nil
	}
	return p.x
}

// Y returns the affine y coordinate, or nil if p is Infinity.
func (p Point) Y() *big.Int {
	if p.infinity {
		return nil
	}
	return p.y
}

// Equal reports whether p and q denote the same point.
func (p Point) Equal(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// GoString lets go-spew/%#v dumps read as "Point{x, y}" or "Point{Infinity}"
// in test failure output instead of spewing the raw struct.
func (p Point) GoString() string {
	if p.infinity {
		return "ecc.Point{Infinity}"
	}
	return "ecc.Point{x: " + p.x.String() + ", y: " + p.y.String() + "}"
}
