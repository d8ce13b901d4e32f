package sha256

import (
	"errors"
	"math/big"
	"strings"
)

// ErrInvalidHash is returned by FromHex when the supplied string is not
// exactly 64 lowercase-or-mixed-case hex characters.
var ErrInvalidHash = errors.New("invalid hex for a hash")

// Digest is an opaque carrier of exactly 256 bits, canonically represented
// as a 64-character lowercase hex string.
type Digest struct {
	hex string
}

const hexDigits = "0123456789abcdef"

// FromHex builds a Digest from a 64-character hex string. If le is true, the
// string is interpreted byte-reversed (little-endian) before being stored.
func FromHex(hex string, le bool) (Digest, error) {
	if len(hex) != 64 {
		return Digest{}, ErrInvalidHash
	}
	lower := strings.ToLower(hex)
	for _, c := range lower {
		if !strings.ContainsRune(hexDigits, c) {
			return Digest{}, ErrInvalidHash
		}
	}
	if le {
		lower = reverseHexBytes(lower)
	}
	return Digest{hex: lower}, nil
}

func reverseHexBytes(hex string) string {
	var b strings.Builder
	b.Grow(len(hex))
	for i := len(hex) - 2; i >= 0; i -= 2 {
		b.WriteString(hex[i : i+2])
	}
	return b.String()
}

// Hex returns the big-endian, lowercase hex view of the digest.
func (d Digest) Hex() string { return d.hex }

// HexLittleEndian returns the byte-reversed hex view of the digest.
func (d Digest) HexLittleEndian() string { return reverseHexBytes(d.hex) }

// Int interprets the digest's hex as a base-16, unsigned, big-endian integer.
func (d Digest) Int() *big.Int {
	v, _ := new(big.Int).SetString(d.hex, 16)
	return v
}

// String satisfies fmt.Stringer.
func (d Digest) String() string { return d.hex }
