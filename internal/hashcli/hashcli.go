// Package hashcli drives internal/sha256 for command-line use: one-shot
// hashing of a batch of messages, or a stepwise animation that walks the
// compression rounds on screen at a configurable pace.
package hashcli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lucasmabf/mysha/internal/sha256"
)

// Options controls how a batch of messages is hashed and displayed.
type Options struct {
	Kind         sha256.Kind
	Verbose      bool
	LittleEndian bool
	Animate      bool
	Step         bool   // pause for Enter between rounds instead of sleeping
	Faster       bool   // shorten the sleep between rounds
	Stdin        io.Reader
}

// Result is one message's outcome: either a digest or the error that
// prevented computing one.
type Result struct {
	Message string
	Digest  sha256.Digest
	Err     error
}

// HashAll hashes every message in messages under opts, writing animation
// frames (if opts.Animate) to out as it goes, and returns one Result per
// message in order.
func HashAll(messages []string, opts Options, out io.Writer) []Result {
	results := make([]Result, 0, len(messages))
	for _, message := range messages {
		results = append(results, hashOne(message, opts, out))
	}
	return results
}

func hashOne(message string, opts Options, out io.Writer) Result {
	if !opts.Animate {
		digest, err := sha256.Sum(message, opts.Kind)
		return Result{Message: message, Digest: digest, Err: err}
	}

	pacer := newPacer(opts)
	fmt.Fprintf(out, "message: %s\n", message)

	digest, err := sha256.SumStepwise(message, opts.Kind, func(r sha256.Round) {
		fmt.Fprintf(out, "block %d round %2d: a=%08x b=%08x c=%08x d=%08x e=%08x f=%08x g=%08x h=%08x\n",
			r.BlockIndex, r.RoundIndex, r.A, r.B, r.C, r.D, r.E, r.F, r.G, r.H)
		pacer.pace()
	})
	if err != nil {
		return Result{Message: message, Err: err}
	}

	if opts.LittleEndian {
		fmt.Fprintf(out, "hash (le): %s\n", digest.HexLittleEndian())
	} else {
		fmt.Fprintf(out, "hash: %s\n", digest.Hex())
	}
	return Result{Message: message, Digest: digest}
}

// FormatResult renders a successful Result the way the non-animated path
// prints it: "[i](message): hash" when verbose, else just the hash.
func FormatResult(index int, r Result, verbose, le bool) string {
	hex := r.Digest.Hex()
	if le {
		hex = r.Digest.HexLittleEndian()
	}
	if verbose {
		return fmt.Sprintf("[%d](%-70s): %s", index, r.Message, hex)
	}
	return hex
}

// pacer paces animation frames, either by sleeping a fixed duration or by
// blocking for Enter on stdin, depending on Options.Step.
type pacer struct {
	step   bool
	reader *bufio.Reader
	delay  time.Duration
}

func newPacer(opts Options) *pacer {
	delay := 150 * time.Millisecond
	if opts.Faster {
		delay = 40 * time.Millisecond
	}
	p := &pacer{step: opts.Step, delay: delay}
	if opts.Step {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		p.reader = bufio.NewReader(stdin)
	}
	return p
}

func (p *pacer) pace() {
	if p.step && p.reader != nil {
		p.reader.ReadString('\n')
		return
	}
	time.Sleep(p.delay)
}
