package main

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/lucasmabf/mysha/internal/ecc"
	"github.com/lucasmabf/mysha/internal/persist"
)

// eccFlags are the flags shared by every ecc subcommand.
type eccFlags struct {
	curve        string
	output       string
	overwrite    bool
	hex          bool
	littleEndian bool
}

func (f *eccFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.curve, "curve", "c", "", "path to a curve TOML file (defaults to secp256k1)")
	cmd.PersistentFlags().StringVarP(&f.output, "output", "o", "", "write the result to this TOML file instead of stdout")
	cmd.PersistentFlags().BoolVar(&f.overwrite, "overwrite", false, "allow overwriting an existing output file")
	cmd.PersistentFlags().BoolVar(&f.hex, "hex", false, "render/parse numbers as hex")
	cmd.PersistentFlags().BoolVarP(&f.littleEndian, "little-endian", "l", false, "render/parse hex numbers as little-endian bytes (requires --hex)")
}

func newECCCmd() *cobra.Command {
	flags := &eccFlags{}
	cmd := &cobra.Command{
		Use:   "ecc",
		Short: "Generate, sign, and verify with the generic elliptic-curve engine",
	}
	flags.register(cmd)

	cmd.AddCommand(newECCGenerateCmd(flags))
	cmd.AddCommand(newECCSignCmd(flags))
	cmd.AddCommand(newECCVerifyCmd(flags))
	cmd.AddCommand(newECCNewCmd(flags))

	return cmd
}

func newECCGenerateCmd(flags *eccFlags) *cobra.Command {
	var privateArg string
	var inputHex, inputLE bool

	cmd := &cobra.Command{
		Use:   "generate [private-key|random]",
		Short: "Generate a key pair from a private scalar, or a random one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				privateArg = args[0]
			}

			curve, err := loadCurve(flags.curve)
			if err != nil {
				return err
			}

			var k *big.Int
			if privateArg == "" || privateArg == "random" {
				k, err = randomScalar(curve.N())
				if err != nil {
					return err
				}
			} else {
				k, err = parseBigInt(privateArg, inputHex, inputLE)
				if err != nil {
					return err
				}
			}

			kp, err := ecc.NewKeyPair(k, curve)
			if err != nil {
				return err
			}
			logger.Debug().Str("curve", flags.curve).Msg("generated key pair")

			doc := persist.FromKeyPair(kp, flags.hex, flags.littleEndian)
			return emit(cmd, flags, doc, func() {
				x, y := kp.Public().X(), kp.Public().Y()
				fmt.Fprintf(cmd.OutOrStdout(), "private key: %s\npublic key: (%s, %s)\n",
					renderOrDecimal(kp.Private(), flags), renderOrDecimal(x, flags), renderOrDecimal(y, flags))
			})
		},
	}
	cmd.Flags().BoolVar(&inputHex, "input-hex", false, "treat the private-key argument as hex")
	cmd.Flags().BoolVar(&inputLE, "input-little-endian", false, "treat the hex private-key argument as little-endian bytes")
	return cmd
}

func newECCSignCmd(flags *eccFlags) *cobra.Command {
	var privateKeyPath, kindFlag string

	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with a private key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}

			doc, err := persist.Load(privateKeyPath)
			if err != nil {
				return err
			}
			priv, err := doc.ToPrivKey()
			if err != nil {
				return err
			}

			sig, err := priv.Sign(args[0], kind)
			if err != nil {
				return err
			}
			logger.Debug().Str("private_key", privateKeyPath).Msg("signed message")

			out := persist.FromSignature(sig, flags.hex, flags.littleEndian)
			return emit(cmd, flags, out, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "r: %s\ns: %s\n",
					renderOrDecimal(sig.R(), flags), renderOrDecimal(sig.S(), flags))
			})
		},
	}
	cmd.Flags().StringVarP(&privateKeyPath, "private", "p", "", "path to a private-key TOML file")
	cmd.Flags().StringVarP(&kindFlag, "type", "t", "text", "input kind: text, binary, le-binary, hex, le-hex, decimal, file")
	cmd.MarkFlagRequired("private")
	return cmd
}

func newECCVerifyCmd(flags *eccFlags) *cobra.Command {
	var signaturePath, message, kindFlag string

	cmd := &cobra.Command{
		Use:   "verify <signature-file>",
		Short: "Verify a signature file against a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signaturePath = args[0]

			kind, err := parseKind(kindFlag)
			if err != nil {
				return err
			}

			doc, err := persist.Load(signaturePath)
			if err != nil {
				return err
			}
			sig, err := doc.ToSignature()
			if err != nil {
				return err
			}

			ok, err := sig.Verify(message, kind)
			if err != nil {
				return err
			}
			logger.Debug().Bool("valid", ok).Msg("verified signature")

			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "signature IS valid")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "signature is NOT valid")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message the signature claims to cover")
	cmd.Flags().StringVarP(&kindFlag, "type", "t", "text", "input kind: text, binary, le-binary, hex, le-hex, decimal, file")
	cmd.MarkFlagRequired("message")
	return cmd
}

func randomScalar(n *big.Int) (*big.Int, error) {
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	v, err := rand.Int(rand.Reader, nMinus1)
	if err != nil {
		return nil, err
	}
	return v.Add(v, big.NewInt(1)), nil
}

// renderOrDecimal formats v per the shared ecc flags, for the plain-text
// (non-TOML) fallback output path.
func renderOrDecimal(v *big.Int, flags *eccFlags) string {
	if flags.hex {
		if flags.littleEndian {
			s := v.Text(16)
			if len(s)%2 != 0 {
				s = "0" + s
			}
			out := make([]byte, 0, len(s))
			for i := len(s) - 2; i >= 0; i -= 2 {
				out = append(out, s[i:i+2]...)
			}
			return string(out)
		}
		return v.Text(16)
	}
	return v.Text(10)
}

// emit writes doc to the output file named by flags.output, or else calls
// fallback to print a plain-text rendering to stdout.
func emit(cmd *cobra.Command, flags *eccFlags, doc persist.Document, fallback func()) error {
	if flags.output == "" {
		fallback()
		return nil
	}
	if err := persist.Save(flags.output, doc, !flags.overwrite); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flags.output)
	return nil
}
