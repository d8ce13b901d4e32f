// Package sha256 is a from-scratch, bit-string-driven SHA-256 engine: the
// point of this module is to make every intermediate value (padded message,
// schedule words, working state per round) inspectable, not to be fast.
// Production code wanting a hash should use crypto/sha256; this package
// exists to teach how crypto/sha256 works underneath.
package sha256

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasmabf/mysha/internal/bitword"
	"github.com/lucasmabf/mysha/internal/constants"
	"github.com/lucasmabf/mysha/internal/hashinput"
)

// Kind re-exports hashinput.Kind so callers only need to import this
// package to select an input encoding.
type Kind = hashinput.Kind

const (
	Text     = hashinput.Text
	Binary   = hashinput.Binary
	LeBinary = hashinput.LeBinary
	Hex      = hashinput.Hex
	LeHex    = hashinput.LeHex
	Decimal  = hashinput.Decimal
	File     = hashinput.File
)

// Sum hashes message (decoded according to kind) and returns its 64-character
// lowercase hex digest.
func Sum(message string, kind Kind) (Digest, error) {
	bits, err := hashinput.Bits(message, kind)
	if err != nil {
		return Digest{}, err
	}
	return sumBits(bits), nil
}

// Round captures the working state after one compression round of a block,
// together with that round's schedule word, emitted by
// SumStepwise for callers (the CLI's --animate mode) that want to walk the
// algorithm round by round rather than get only the final digest.
type Round struct {
	BlockIndex int
	RoundIndex int
	Schedule   uint32
	A, B, C, D uint32
	E, F, G, H uint32
}

// SumStepwise behaves like Sum but additionally invokes onRound after every
// one of the 64 compression rounds of every block, in order. It is the engine
// underneath the CLI's stepwise animation.
func SumStepwise(message string, kind Kind, onRound func(Round)) (Digest, error) {
	bits, err := hashinput.Bits(message, kind)
	if err != nil {
		return Digest{}, err
	}
	return sumBitsStepwise(bits, onRound), nil
}

func sumBits(bits string) Digest {
	return sumBitsStepwise(bits, nil)
}

func sumBitsStepwise(bits string, onRound func(Round)) Digest {
	padded := pad(bits)
	blocks := splitBlocks(padded)

	h := constants.H()
	a0, b0, c0, d0, e0, f0, g0, h0 := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	k := constants.K()

	for blockIdx, block := range blocks {
		schedule := expandSchedule(block)

		a, b, c, d, e, f, g, hh := a0, b0, c0, d0, e0, f0, g0, h0

		for i := 0; i < 64; i++ {
			t1 := bitword.AddN(bitword.BigSigma1(e), bitword.Ch(e, f, g), hh, k[i], schedule[i])
			t2 := bitword.Add(bitword.BigSigma0(a), bitword.Maj(a, b, c))

			hh = g
			g = f
			f = e
			e = bitword.Add(d, t1)
			d = c
			c = b
			b = a
			a = bitword.Add(t1, t2)

			if onRound != nil {
				onRound(Round{
					BlockIndex: blockIdx,
					RoundIndex: i,
					Schedule:   schedule[i],
					A: a, B: b, C: c, D: d,
					E: e, F: f, G: g, H: hh,
				})
			}
		}

		a0 = bitword.Add(a, a0)
		b0 = bitword.Add(b, b0)
		c0 = bitword.Add(c, c0)
		d0 = bitword.Add(d, d0)
		e0 = bitword.Add(e, e0)
		f0 = bitword.Add(f, f0)
		g0 = bitword.Add(g, g0)
		h0 = bitword.Add(hh, h0)
	}

	hex := fmt.Sprintf("%08x%08x%08x%08x%08x%08x%08x%08x", a0, b0, c0, d0, e0, f0, g0, h0)
	return Digest{hex: hex}
}

// pad applies the Merkle-Damgard padding: append a single 1 bit, then 0
// bits until length ≡ 448 (mod 512), then the 64-bit big-endian length.
func pad(bits string) string {
	length := uint64(len(bits))
	var b strings.Builder
	b.Grow(len(bits) + 1 + 512 + 64)
	b.WriteString(bits)
	b.WriteByte('1')
	for (b.Len()+64)%512 != 0 {
		b.WriteByte('0')
	}
	b.WriteString(fmt.Sprintf("%064b", length))
	return b.String()
}

func splitBlocks(padded string) []string {
	blocks := make([]string, 0, len(padded)/512)
	for i := 0; i < len(padded); i += 512 {
		blocks = append(blocks, padded[i:i+512])
	}
	return blocks
}

func expandSchedule(block string) [64]uint32 {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		v, _ := strconv.ParseUint(block[i*32:i*32+32], 2, 32)
		w[i] = uint32(v)
	}
	for i := 16; i < 64; i++ {
		w[i] = bitword.AddN(
			bitword.SmallSigma1(w[i-2]),
			w[i-7],
			bitword.SmallSigma0(w[i-15]),
			w[i-16],
		)
	}
	return w
}
