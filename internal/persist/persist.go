// Package persist encodes and decodes curves, key pairs, public/private
// keys, and signatures as TOML documents, so a caller can round-trip them
// through a file between CLI invocations.
package persist

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lucasmabf/mysha/internal/ecc"
)

// ErrMissingField is returned when decoding a Document that lacks a field
// required for the requested conversion (e.g. a Signature with no
// KeyPair.Public, or a PrivKey with no KeyPair.Private).
var ErrMissingField = errors.New("persist: required field missing from document")

// CurveFields carries a Curve's defining parameters.
type CurveFields struct {
	A int64  `toml:"a"`
	B int64  `toml:"b"`
	P string `toml:"p"`
	N string `toml:"n"`
	X string `toml:"x"`
	Y string `toml:"y"`
}

// KeyPairFields carries the public and/or private halves of a key pair.
// Either may be absent depending on what the document represents.
type KeyPairFields struct {
	PublicX string `toml:"public_x,omitempty"`
	PublicY string `toml:"public_y,omitempty"`
	Private string `toml:"private,omitempty"`
}

// SignatureFields carries a signature's (r, s) pair.
type SignatureFields struct {
	R string `toml:"r"`
	S string `toml:"s"`
}

// Flags records how the numeric fields above were rendered, so a reader
// without other context can parse them back correctly.
type Flags struct {
	Hex          bool `toml:"hex"`
	LittleEndian bool `toml:"little_endian"`
}

// Document is the top-level TOML shape: a curve is always present; the key
// pair and signature sections are populated only for the object being
// persisted.
type Document struct {
	Curve     CurveFields      `toml:"curve"`
	KeyPair   *KeyPairFields   `toml:"key_pair,omitempty"`
	Signature *SignatureFields `toml:"signature,omitempty"`
	Flags     Flags            `toml:"flags"`
}

// FromCurve renders a bare curve (generator only, no key material).
func FromCurve(c ecc.Curve, hex, le bool) Document {
	return Document{
		Curve: curveFields(c, hex, le),
		Flags: Flags{Hex: hex, LittleEndian: le},
	}
}

// FromKeyPair renders a full key pair: public point and private scalar.
func FromKeyPair(kp ecc.KeyPair, hex, le bool) Document {
	pub := kp.Public()
	x, y := pub.X(), pub.Y()
	return Document{
		Curve: curveFields(kp.Curve(), hex, le),
		KeyPair: &KeyPairFields{
			PublicX: render(x, hex, le),
			PublicY: render(y, hex, le),
			Private: render(kp.Private(), hex, le),
		},
		Flags: Flags{Hex: hex, LittleEndian: le},
	}
}

// FromPrivKey renders a private key alone (no public point).
func FromPrivKey(pk ecc.PrivKey, hex, le bool) Document {
	return Document{
		Curve: curveFields(pk.Curve(), hex, le),
		KeyPair: &KeyPairFields{
			Private: render(pk.Scalar(), hex, le),
		},
		Flags: Flags{Hex: hex, LittleEndian: le},
	}
}

// FromPubKey renders a public key alone (no private scalar).
func FromPubKey(pub ecc.PubKey, hex, le bool) Document {
	point := pub.Point()
	x, y := point.X(), point.Y()
	return Document{
		Curve: curveFields(pub.Curve(), hex, le),
		KeyPair: &KeyPairFields{
			PublicX: render(x, hex, le),
			PublicY: render(y, hex, le),
		},
		Flags: Flags{Hex: hex, LittleEndian: le},
	}
}

// FromSignature renders a signature together with the public point needed
// to verify it.
func FromSignature(sig ecc.Signature, hex, le bool) Document {
	pub := sig.Public()
	x, y := pub.X(), pub.Y()
	return Document{
		Curve: curveFields(sig.Curve(), hex, le),
		KeyPair: &KeyPairFields{
			PublicX: render(x, hex, le),
			PublicY: render(y, hex, le),
		},
		Signature: &SignatureFields{
			R: render(sig.R(), hex, le),
			S: render(sig.S(), hex, le),
		},
		Flags: Flags{Hex: hex, LittleEndian: le},
	}
}

// ToCurve reconstructs the Curve described by the document.
func (d Document) ToCurve() (ecc.Curve, error) {
	hex, le := d.Flags.Hex, d.Flags.LittleEndian
	p, err := parse(d.Curve.P, hex, le)
	if err != nil {
		return ecc.Curve{}, err
	}
	n, err := parse(d.Curve.N, hex, le)
	if err != nil {
		return ecc.Curve{}, err
	}
	x, err := parse(d.Curve.X, hex, le)
	if err != nil {
		return ecc.Curve{}, err
	}
	y, err := parse(d.Curve.Y, hex, le)
	if err != nil {
		return ecc.Curve{}, err
	}
	return ecc.New(big.NewInt(d.Curve.A), big.NewInt(d.Curve.B), p, n, ecc.NewPoint(x, y))
}

// ToPrivKey reconstructs the PrivKey described by the document.
func (d Document) ToPrivKey() (ecc.PrivKey, error) {
	curve, err := d.ToCurve()
	if err != nil {
		return ecc.PrivKey{}, err
	}
	if d.KeyPair == nil || d.KeyPair.Private == "" {
		return ecc.PrivKey{}, fmt.Errorf("%w: key_pair.private", ErrMissingField)
	}
	k, err := parse(d.KeyPair.Private, d.Flags.Hex, d.Flags.LittleEndian)
	if err != nil {
		return ecc.PrivKey{}, err
	}
	return ecc.NewPrivKey(k, curve)
}

// ToPubKey reconstructs the PubKey described by the document.
func (d Document) ToPubKey() (ecc.PubKey, error) {
	curve, err := d.ToCurve()
	if err != nil {
		return ecc.PubKey{}, err
	}
	if d.KeyPair == nil || d.KeyPair.PublicX == "" || d.KeyPair.PublicY == "" {
		return ecc.PubKey{}, fmt.Errorf("%w: key_pair.public", ErrMissingField)
	}
	x, err := parse(d.KeyPair.PublicX, d.Flags.Hex, d.Flags.LittleEndian)
	if err != nil {
		return ecc.PubKey{}, err
	}
	y, err := parse(d.KeyPair.PublicY, d.Flags.Hex, d.Flags.LittleEndian)
	if err != nil {
		return ecc.PubKey{}, err
	}
	return ecc.NewPubKey(ecc.NewPoint(x, y), curve)
}

// ToSignature reconstructs the Signature described by the document.
func (d Document) ToSignature() (ecc.Signature, error) {
	curve, err := d.ToCurve()
	if err != nil {
		return ecc.Signature{}, err
	}
	if d.Signature == nil {
		return ecc.Signature{}, fmt.Errorf("%w: signature", ErrMissingField)
	}
	if d.KeyPair == nil || d.KeyPair.PublicX == "" || d.KeyPair.PublicY == "" {
		return ecc.Signature{}, fmt.Errorf("%w: key_pair.public", ErrMissingField)
	}
	hex, le := d.Flags.Hex, d.Flags.LittleEndian
	r, err := parse(d.Signature.R, hex, le)
	if err != nil {
		return ecc.Signature{}, err
	}
	s, err := parse(d.Signature.S, hex, le)
	if err != nil {
		return ecc.Signature{}, err
	}
	x, err := parse(d.KeyPair.PublicX, hex, le)
	if err != nil {
		return ecc.Signature{}, err
	}
	y, err := parse(d.KeyPair.PublicY, hex, le)
	if err != nil {
		return ecc.Signature{}, err
	}
	return ecc.NewSignature(r, s, curve, ecc.NewPoint(x, y)), nil
}

// Save writes d as a TOML file at path (appending a ".toml" suffix if
// missing). When create is true the file must not already exist.
func Save(path string, d Document, create bool) error {
	path = withTomlSuffix(path)

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if create {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(d)
}

// Load reads and decodes a Document from a TOML file at path (appending a
// ".toml" suffix if missing).
func Load(path string) (Document, error) {
	path = withTomlSuffix(path)

	var d Document
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return Document{}, err
	}
	return d, nil
}

func withTomlSuffix(path string) string {
	const suffix = ".toml"
	if len(path) >= len(suffix) && path[len(path)-len(suffix):] == suffix {
		return path
	}
	return path + suffix
}

func curveFields(c ecc.Curve, hex, le bool) CurveFields {
	g := c.G()
	x, y := g.X(), g.Y()
	return CurveFields{
		A: c.A().Int64(),
		B: c.B().Int64(),
		P: render(c.P(), hex, le),
		N: render(c.N(), hex, le),
		X: render(x, hex, le),
		Y: render(y, hex, le),
	}
}

// ParseBigInt parses s as a decimal or hexadecimal integer, matching the
// encoding render produces. This is the same conversion ToCurve and friends
// apply to document fields, exposed for callers (the CLI's curve/key-object
// flags) that build values directly from command-line strings.
func ParseBigInt(s string, hex, le bool) (*big.Int, error) {
	return parse(s, hex, le)
}

// render formats v either in decimal, or in hexadecimal (optionally with
// its bytes reversed to a little-endian byte order).
func render(v *big.Int, hex, le bool) string {
	if v == nil {
		v = big.NewInt(0)
	}
	if !hex {
		return v.Text(10)
	}
	s := v.Text(16)
	if len(s)%2 != 0 {
		s = "0" + s
	}
	if le {
		s = reverseHexBytes(s)
	}
	return s
}

// parse is the inverse of render.
func parse(s string, hex, le bool) (*big.Int, error) {
	if !hex {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("persist: invalid decimal integer %q", s)
		}
		return v, nil
	}
	if le {
		s = reverseHexBytes(s)
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("persist: invalid hex integer %q", s)
	}
	return v, nil
}

// reverseHexBytes reverses a hex string byte-by-byte (pairs of nibbles),
// first left-padding an odd-length string with a zero nibble.
func reverseHexBytes(s string) string {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	out := make([]byte, len(s))
	n := len(s) / 2
	for i := 0; i < n; i++ {
		src := s[i*2 : i*2+2]
		dst := n - 1 - i
		out[dst*2] = src[0]
		out[dst*2+1] = src[1]
	}
	return string(out)
}
