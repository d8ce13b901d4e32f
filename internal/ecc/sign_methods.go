package ecc

import "github.com/lucasmabf/mysha/internal/sha256"

// Sign signs message using the key pair's private scalar and public point.
func (kp KeyPair) Sign(message string, kind sha256.Kind) (Signature, error) {
	return Sign(kp.k, kp.q, kp.curve, message, kind)
}

// Sign signs message using the private key alone, recomputing the public
// point Q = k*G so the resulting Signature can still be verified.
func (pk PrivKey) Sign(message string, kind sha256.Kind) (Signature, error) {
	q, err := pk.curve.Multiply(pk.curve.G(), pk.k)
	if err != nil {
		return Signature{}, err
	}
	return Sign(pk.k, q, pk.curve, message, kind)
}
