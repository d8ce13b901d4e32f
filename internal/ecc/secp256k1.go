package ecc

import "math/big"

// Secp256k1 returns the standard secp256k1 curve. Construction is
// infallible: the constants below are fixed literals, so New is only called
// here to run the same invariant checks every other curve goes through; a
// failure would mean the literals were transcribed wrong, which panics
// rather than surfacing an error.
func Secp256k1() Curve {
	a := big.NewInt(0)
	b := big.NewInt(7)
	p := fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	n := fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	gx := fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy := fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	curve, err := New(a, b, p, n, NewPoint(gx, gy))
	if err != nil {
		panic("ecc: secp256k1 literals failed curve validation: " + err.Error())
	}
	return curve
}

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: invalid hex literal in source: " + s)
	}
	return v
}
