package ecc

import "math/big"

// PrivKey is a private scalar bound to the curve it is valid for.
type PrivKey struct {
	k     *big.Int
	curve Curve
}

// NewPrivKey builds a PrivKey, requiring 0 < k < n.
func NewPrivKey(k *big.Int, curve Curve) (PrivKey, error) {
	if k.Sign() <= 0 || k.Cmp(curve.N()) >= 0 {
		return PrivKey{}, ErrInvalidPrivateKey
	}
	return PrivKey{k: new(big.Int).Set(k), curve: curve}, nil
}

// Scalar returns the private scalar.
func (pk PrivKey) Scalar() *big.Int { return pk.k }

// Curve returns the curve the private key is valid for.
func (pk PrivKey) Curve() Curve { return pk.curve }

// PubKey is a public curve point bound to the curve it lives on.
type PubKey struct {
	q     Point
	curve Curve
}

// NewPubKey builds a PubKey, requiring Q != Infinity and Q on curve.
func NewPubKey(q Point, curve Curve) (PubKey, error) {
	if !curve.IsOnCurve(q) {
		return PubKey{}, ErrNotOnCurve
	}
	if q.IsInfinity() {
		return PubKey{}, ErrPublicKeyOnInfinity
	}
	return PubKey{q: q, curve: curve}, nil
}

// Point returns the public point.
func (pub PubKey) Point() Point { return pub.q }

// Curve returns the curve the public key lives on.
func (pub PubKey) Curve() Curve { return pub.curve }

// KeyPair is a private scalar together with its derived public point.
type KeyPair struct {
	k     *big.Int
	q     Point
	curve Curve
}

// NewKeyPair builds a KeyPair from a raw scalar, requiring 0 < k < n, and
// derives Q = k*G.
func NewKeyPair(k *big.Int, curve Curve) (KeyPair, error) {
	if k.Sign() <= 0 || k.Cmp(curve.N()) >= 0 {
		return KeyPair{}, ErrInvalidPrivateKey
	}
	q, err := curve.Multiply(curve.G(), k)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{k: new(big.Int).Set(k), q: q, curve: curve}, nil
}

// KeyPairFromPrivate derives a full KeyPair (recomputing the public point)
// from a PrivKey alone.
func KeyPairFromPrivate(priv PrivKey) (KeyPair, error) {
	q, err := priv.curve.Multiply(priv.curve.G(), priv.k)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{k: new(big.Int).Set(priv.k), q: q, curve: priv.curve}, nil
}

// Curve returns the curve the key pair is on.
func (kp KeyPair) Curve() Curve { return kp.curve }

// Private returns the private scalar.
func (kp KeyPair) Private() *big.Int { return kp.k }

// Public returns the derived public point.
func (kp KeyPair) Public() Point { return kp.q }

// PrivKey projects the key pair down to its PrivKey half.
func (kp KeyPair) PrivKey() PrivKey {
	return PrivKey{k: kp.k, curve: kp.curve}
}

// PubKey projects the key pair down to its PubKey half.
func (kp KeyPair) PubKey() PubKey {
	return PubKey{q: kp.q, curve: kp.curve}
}
