package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lucasmabf/mysha/internal/hashcli"
	"github.com/lucasmabf/mysha/internal/sha256"
)

func newHashCmd() *cobra.Command {
	var (
		kindFlag     string
		animate      bool
		step         bool
		verbose      bool
		faster       bool
		littleEndian bool
	)

	cmd := &cobra.Command{
		Use:   "sha256 [messages...]",
		Short: "Hash one or more messages with the SHA-256 engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}

			messages := args
			if len(messages) == 0 {
				messages, err = readMessagesFromStdin(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			opts := hashcli.Options{
				Kind:         kind,
				Verbose:      verbose,
				LittleEndian: littleEndian,
				Animate:      animate,
				Step:         step,
				Faster:       faster,
				Stdin:        cmd.InOrStdin(),
			}

			logger.Debug().Int("messages", len(messages)).Str("kind", kindFlag).Msg("hashing")

			results := hashcli.HashAll(messages, opts, cmd.OutOrStdout())
			for i, r := range results {
				if r.Err != nil {
					return fmt.Errorf("message %d (%q): %w", i, r.Message, r.Err)
				}
				if !animate {
					fmt.Fprintln(cmd.OutOrStdout(), hashcli.FormatResult(i, r, verbose, littleEndian))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "type", "t", "text", "input kind: text, binary, le-binary, hex, le-hex, decimal, file")
	cmd.Flags().BoolVarP(&animate, "animate", "a", false, "step through the compression rounds")
	cmd.Flags().BoolVarP(&step, "enter", "e", false, "pause for Enter between animation frames instead of sleeping")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "prefix each result with its index and message")
	cmd.Flags().BoolVarP(&faster, "faster", "f", false, "shorten the pauses between animation frames")
	cmd.Flags().BoolVarP(&littleEndian, "little-endian", "l", false, "print the digest in little-endian hex")

	return cmd
}

func parseKind(s string) (sha256.Kind, error) {
	switch s {
	case "text":
		return sha256.Text, nil
	case "binary":
		return sha256.Binary, nil
	case "le-binary", "lebinary":
		return sha256.LeBinary, nil
	case "hex":
		return sha256.Hex, nil
	case "le-hex", "lehex":
		return sha256.LeHex, nil
	case "decimal":
		return sha256.Decimal, nil
	case "file":
		return sha256.File, nil
	default:
		return 0, fmt.Errorf("unknown input type %q", s)
	}
}

// readMessagesFromStdin reads one message per line when stdin is piped,
// mirroring the prototype's "one message per line" default behavior.
func readMessagesFromStdin(in io.Reader) ([]string, error) {
	var messages []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		messages = append(messages, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("no message provided")
	}
	return messages, nil
}
