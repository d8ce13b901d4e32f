package persist

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucasmabf/mysha/internal/ecc"
	"github.com/lucasmabf/mysha/internal/sha256"
)

func toyCurve(t *testing.T) ecc.Curve {
	t.Helper()
	c, err := ecc.New(big.NewInt(2), big.NewInt(3), big.NewInt(97), big.NewInt(5), ecc.NewPoint(big.NewInt(3), big.NewInt(6)))
	require.NoError(t, err)
	return c
}

func TestCurveRoundTripDecimal(t *testing.T) {
	c := toyCurve(t)
	doc := FromCurve(c, false, false)
	got, err := doc.ToCurve()
	require.NoError(t, err)
	require.True(t, got.G().Equal(c.G()))
	require.Equal(t, c.N(), got.N())
	require.Equal(t, c.P(), got.P())
}

func TestCurveRoundTripHex(t *testing.T) {
	c := toyCurve(t)
	for _, le := range []bool{false, true} {
		doc := FromCurve(c, true, le)
		got, err := doc.ToCurve()
		require.NoError(t, err)
		require.True(t, got.G().Equal(c.G()), "le=%v", le)
	}
}

func TestKeyPairRoundTrip(t *testing.T) {
	c := toyCurve(t)
	kp, err := ecc.NewKeyPair(big.NewInt(3), c)
	require.NoError(t, err)

	doc := FromKeyPair(kp, true, false)
	priv, err := doc.ToPrivKey()
	require.NoError(t, err)
	require.Equal(t, kp.Private(), priv.Scalar())

	pub, err := doc.ToPubKey()
	require.NoError(t, err)
	require.True(t, pub.Point().Equal(kp.Public()))
}

func TestSignatureRoundTrip(t *testing.T) {
	c := ecc.Secp256k1()
	kp, err := ecc.NewKeyPair(big.NewInt(1), c)
	require.NoError(t, err)

	sig, err := kp.Sign("hello", sha256.Text)
	require.NoError(t, err)

	doc := FromSignature(sig, true, true)
	got, err := doc.ToSignature()
	require.NoError(t, err)

	ok, err := got.Verify("hello", sha256.Text)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPrivKeyMissingField(t *testing.T) {
	c := toyCurve(t)
	doc := FromCurve(c, false, false)
	_, err := doc.ToPrivKey()
	require.ErrorIs(t, err, ErrMissingField)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := toyCurve(t)
	doc := FromCurve(c, false, false)

	dir := t.TempDir()
	path := filepath.Join(dir, "curve")

	require.NoError(t, Save(path, doc, false))
	_, err := os.Stat(path + ".toml")
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	got, err := loaded.ToCurve()
	require.NoError(t, err)
	require.True(t, got.G().Equal(c.G()))
}

func TestSaveCreateRefusesExisting(t *testing.T) {
	c := toyCurve(t)
	doc := FromCurve(c, false, false)

	dir := t.TempDir()
	path := filepath.Join(dir, "curve.toml")

	require.NoError(t, Save(path, doc, true))
	err := Save(path, doc, true)
	require.Error(t, err)
}

func TestReverseHexBytes(t *testing.T) {
	require.Equal(t, "0201", reverseHexBytes("0102"))
	require.Equal(t, "0a", reverseHexBytes("0a"))
}
