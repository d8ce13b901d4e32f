package hashcli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucasmabf/mysha/internal/sha256"
)

func TestHashAllDigestsMatchDirectSum(t *testing.T) {
	opts := Options{Kind: sha256.Text}
	results := HashAll([]string{"abc", "hello"}, opts, nil)
	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)

	want0, err := sha256.Sum("abc", sha256.Text)
	require.NoError(t, err)
	want1, err := sha256.Sum("hello", sha256.Text)
	require.NoError(t, err)

	require.Equal(t, want0.Hex(), results[0].Digest.Hex())
	require.Equal(t, want1.Hex(), results[1].Digest.Hex())
}

func TestHashAllPropagatesDecodeError(t *testing.T) {
	opts := Options{Kind: sha256.Binary}
	results := HashAll([]string{"not-binary"}, opts, nil)
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

func TestHashAllAnimatedWritesFrames(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Kind: sha256.Text, Animate: true, Faster: true}
	results := HashAll([]string{"abc"}, opts, &buf)
	require.NoError(t, results[0].Err)

	out := buf.String()
	require.True(t, strings.Contains(out, "message: abc"))
	require.True(t, strings.Contains(out, "hash: "))
	require.True(t, strings.Contains(out, "round 63"))
}

func TestFormatResultVerbose(t *testing.T) {
	d, err := sha256.Sum("abc", sha256.Text)
	require.NoError(t, err)
	r := Result{Message: "abc", Digest: d}

	plain := FormatResult(0, r, false, false)
	require.Equal(t, d.Hex(), plain)

	verbose := FormatResult(2, r, true, false)
	require.True(t, strings.HasPrefix(verbose, "[2]("))
	require.True(t, strings.HasSuffix(verbose, d.Hex()))
}

func TestFormatResultLittleEndian(t *testing.T) {
	d, err := sha256.Sum("abc", sha256.Text)
	require.NoError(t, err)
	r := Result{Message: "abc", Digest: d}
	require.Equal(t, d.HexLittleEndian(), FormatResult(0, r, false, true))
}
