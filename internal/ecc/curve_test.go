package ecc

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// toyCurve builds a small curve with arithmetic cheap enough to verify by
// hand: y^2 = x^3 + 2x + 3 (mod 97), n = 5, G = (3, 6).
func toyCurve(t *testing.T) Curve {
	t.Helper()
	c, err := New(big.NewInt(2), big.NewInt(3), big.NewInt(97), big.NewInt(5), NewPoint(big.NewInt(3), big.NewInt(6)))
	require.NoError(t, err)
	return c
}

func requirePointEqual(t *testing.T, want, got Point) {
	t.Helper()
	if !want.Equal(got) {
		t.Fatalf("point mismatch:\nwant %s\ngot  %s", spew.Sdump(want), spew.Sdump(got))
	}
}

func TestToyCurveAdd(t *testing.T) {
	c := toyCurve(t)
	sum, err := c.Add(NewPoint(big.NewInt(17), big.NewInt(10)), NewPoint(big.NewInt(95), big.NewInt(31)))
	require.NoError(t, err)
	requirePointEqual(t, NewPoint(big.NewInt(1), big.NewInt(54)), sum)
}

func TestToyCurveDouble(t *testing.T) {
	c := toyCurve(t)
	d, err := c.Double(NewPoint(big.NewInt(24), big.NewInt(2)))
	require.NoError(t, err)
	requirePointEqual(t, NewPoint(big.NewInt(65), big.NewInt(65)), d)
}

func TestToyCurveGTimes2(t *testing.T) {
	c := toyCurve(t)
	g2, err := c.Multiply(c.G(), big.NewInt(2))
	require.NoError(t, err)
	requirePointEqual(t, NewPoint(big.NewInt(80), big.NewInt(10)), g2)
}

func TestToyCurveOrderAnnihilatesGenerator(t *testing.T) {
	c := toyCurve(t)
	nG, err := c.Multiply(c.G(), c.N())
	require.NoError(t, err)
	require.True(t, nG.IsInfinity())
}

func TestAddCommutative(t *testing.T) {
	c := toyCurve(t)
	p := NewPoint(big.NewInt(17), big.NewInt(10))
	q := NewPoint(big.NewInt(95), big.NewInt(31))
	pq, err := c.Add(p, q)
	require.NoError(t, err)
	qp, err := c.Add(q, p)
	require.NoError(t, err)
	requirePointEqual(t, pq, qp)
}

func TestAddInverseIsInfinity(t *testing.T) {
	c := toyCurve(t)
	p := NewPoint(big.NewInt(17), big.NewInt(10))
	negP, err := c.Negate(p)
	require.NoError(t, err)
	sum, err := c.Add(p, negP)
	require.NoError(t, err)
	require.True(t, sum.IsInfinity())
}

func TestAddIdentity(t *testing.T) {
	c := toyCurve(t)
	p := NewPoint(big.NewInt(17), big.NewInt(10))
	sum, err := c.Add(p, Infinity)
	require.NoError(t, err)
	requirePointEqual(t, p, sum)
}

func TestMultiplyStaysOnCurve(t *testing.T) {
	c := toyCurve(t)
	for k := int64(-7); k <= 7; k++ {
		r, err := c.Multiply(c.G(), big.NewInt(k))
		require.NoError(t, err)
		require.True(t, c.IsOnCurve(r), "k=%d result not on curve", k)
	}
}

func TestMultiplyByZeroIsInfinity(t *testing.T) {
	c := toyCurve(t)
	r, err := c.Multiply(c.G(), big.NewInt(0))
	require.NoError(t, err)
	require.True(t, r.IsInfinity())
}

func TestCurveInvariants(t *testing.T) {
	_, err := New(big.NewInt(2), big.NewInt(3), big.NewInt(97), big.NewInt(5), Infinity)
	require.ErrorIs(t, err, ErrGeneratorOnInfinity)

	_, err = New(big.NewInt(2), big.NewInt(3), big.NewInt(97), big.NewInt(0), NewPoint(big.NewInt(3), big.NewInt(6)))
	require.ErrorIs(t, err, ErrInvalidOrderN)

	// 4a^3+27b^2 = 0 mod p makes the curve singular; a=0,b=0 is always singular.
	_, err = New(big.NewInt(0), big.NewInt(0), big.NewInt(97), big.NewInt(5), NewPoint(big.NewInt(3), big.NewInt(6)))
	require.ErrorIs(t, err, ErrSingularCurve)
}

func TestSecp256k1Construction(t *testing.T) {
	c := Secp256k1()
	require.True(t, c.IsOnCurve(c.G()))
	nG, err := c.Multiply(c.G(), c.N())
	require.NoError(t, err)
	require.True(t, nG.IsInfinity())
}
