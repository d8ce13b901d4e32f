package ecc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucasmabf/mysha/internal/sha256"
)

func TestKeyPairPublicIsScalarTimesGenerator(t *testing.T) {
	c := toyCurve(t)
	kp, err := NewKeyPair(big.NewInt(3), c)
	require.NoError(t, err)

	want, err := c.Multiply(c.G(), big.NewInt(3))
	require.NoError(t, err)
	requirePointEqual(t, want, kp.Public())
}

func TestSignVerifyRoundTripSecp256k1(t *testing.T) {
	c := Secp256k1()
	kp, err := NewKeyPair(big.NewInt(1), c)
	require.NoError(t, err)
	requirePointEqual(t, c.G(), kp.Public())

	sig, err := kp.Sign("hello world", sha256.Text)
	require.NoError(t, err)

	ok, err := sig.Verify("hello world", sha256.Text)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyFailsOnTamperedMessage(t *testing.T) {
	c := Secp256k1()
	kp, err := NewKeyPair(big.NewInt(42), c)
	require.NoError(t, err)

	sig, err := kp.Sign("original message", sha256.Text)
	require.NoError(t, err)

	ok, err := sig.Verify("original messagf", sha256.Text)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyFailsOnWrongPublicKey(t *testing.T) {
	c := Secp256k1()
	kp, err := NewKeyPair(big.NewInt(7), c)
	require.NoError(t, err)
	other, err := NewKeyPair(big.NewInt(8), c)
	require.NoError(t, err)

	sig, err := kp.Sign("message", sha256.Text)
	require.NoError(t, err)

	tampered := NewSignature(sig.R(), sig.S(), sig.Curve(), other.Public())
	ok, err := tampered.Verify("message", sha256.Text)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPrivKeySignRecoversPublicPoint(t *testing.T) {
	c := Secp256k1()
	pk, err := NewPrivKey(big.NewInt(5), c)
	require.NoError(t, err)

	sig, err := pk.Sign("via priv key", sha256.Text)
	require.NoError(t, err)

	want, err := c.Multiply(c.G(), big.NewInt(5))
	require.NoError(t, err)
	requirePointEqual(t, want, sig.Public())

	ok, err := sig.Verify("via priv key", sha256.Text)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSignVerifyHexInput(t *testing.T) {
	c := Secp256k1()
	kp, err := NewKeyPair(big.NewInt(2), c)
	require.NoError(t, err)

	sig, err := kp.Sign("deadbeef", sha256.Hex)
	require.NoError(t, err)
	ok, err := sig.Verify("deadbeef", sha256.Hex)
	require.NoError(t, err)
	require.True(t, ok)
}
