package main

import (
	"fmt"
	"math/big"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/lucasmabf/mysha/internal/ecc"
	"github.com/lucasmabf/mysha/internal/persist"
)

// printToml writes doc's TOML rendering to cmd's stdout, for the no
// --output fallback path.
func printToml(cmd *cobra.Command, doc persist.Document) {
	_ = toml.NewEncoder(cmd.OutOrStdout()).Encode(doc)
}

// newECCNewCmd builds the "ecc new" subtree: curve, key-pair, pub-key,
// priv-key, and signature object constructors that print (or save) a TOML
// document without going through a generate/sign/verify flow.
func newECCNewCmd(flags *eccFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build a curve/key/signature TOML object directly from values",
	}
	cmd.AddCommand(newNewCurveCmd(flags))
	cmd.AddCommand(newNewKeyPairCmd(flags))
	cmd.AddCommand(newNewPubKeyCmd(flags))
	cmd.AddCommand(newNewPrivKeyCmd(flags))
	cmd.AddCommand(newNewSignatureCmd(flags))
	return cmd
}

func newNewCurveCmd(flags *eccFlags) *cobra.Command {
	var a, b, p, n, x, y string
	var inputHex, inputLE bool

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Build a curve TOML object, defaulting unset fields to secp256k1",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := loadCurve(flags.curve)
			if err != nil {
				return err
			}

			av, bv, pv, nv := base.A(), base.B(), base.P(), base.N()
			g := base.G()
			xv, yv := g.X(), g.Y()

			if a != "" {
				v, ok := new(big.Int).SetString(a, 10)
				if !ok {
					return fmt.Errorf("invalid a parameter %q", a)
				}
				av = v
			}
			if b != "" {
				v, ok := new(big.Int).SetString(b, 10)
				if !ok {
					return fmt.Errorf("invalid b parameter %q", b)
				}
				bv = v
			}
			if p != "" {
				if pv, err = parseBigInt(p, inputHex, inputLE); err != nil {
					return err
				}
			}
			if n != "" {
				if nv, err = parseBigInt(n, inputHex, inputLE); err != nil {
					return err
				}
			}
			if x != "" {
				if xv, err = parseBigInt(x, inputHex, inputLE); err != nil {
					return err
				}
			}
			if y != "" {
				if yv, err = parseBigInt(y, inputHex, inputLE); err != nil {
					return err
				}
			}

			curve, err := ecc.New(av, bv, pv, nv, ecc.NewPoint(xv, yv))
			if err != nil {
				return err
			}

			doc := persist.FromCurve(curve, flags.hex, flags.littleEndian)
			return emit(cmd, flags, doc, func() { printToml(cmd, doc) })
		},
	}
	cmd.Flags().StringVar(&a, "a", "", "curve a parameter (decimal)")
	cmd.Flags().StringVar(&b, "b", "", "curve b parameter (decimal)")
	cmd.Flags().StringVar(&p, "p", "", "field prime")
	cmd.Flags().StringVar(&n, "n", "", "subgroup order")
	cmd.Flags().StringVar(&x, "x", "", "generator x coordinate")
	cmd.Flags().StringVar(&y, "y", "", "generator y coordinate")
	cmd.Flags().BoolVar(&inputHex, "input-hex", false, "treat p/n/x/y as hex")
	cmd.Flags().BoolVar(&inputLE, "input-little-endian", false, "treat hex p/n/x/y as little-endian bytes")
	return cmd
}

func newNewKeyPairCmd(flags *eccFlags) *cobra.Command {
	var private, x, y string
	var inputHex, inputLE bool

	cmd := &cobra.Command{
		Use:   "key-pair",
		Short: "Build a key-pair TOML object, checking public against private",
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := loadCurve(flags.curve)
			if err != nil {
				return err
			}
			k, err := parseBigInt(private, inputHex, inputLE)
			if err != nil {
				return err
			}
			kp, err := ecc.NewKeyPair(k, curve)
			if err != nil {
				return err
			}

			px, err := parseBigInt(x, inputHex, inputLE)
			if err != nil {
				return err
			}
			py, err := parseBigInt(y, inputHex, inputLE)
			if err != nil {
				return err
			}
			if !kp.Public().Equal(ecc.NewPoint(px, py)) {
				return fmt.Errorf("public key does not match the private key provided")
			}

			doc := persist.FromKeyPair(kp, flags.hex, flags.littleEndian)
			return emit(cmd, flags, doc, func() { printToml(cmd, doc) })
		},
	}
	cmd.Flags().StringVarP(&private, "private", "p", "", "private scalar")
	cmd.Flags().StringVar(&x, "x", "", "public key x coordinate")
	cmd.Flags().StringVar(&y, "y", "", "public key y coordinate")
	cmd.Flags().BoolVar(&inputHex, "input-hex", false, "treat values as hex")
	cmd.Flags().BoolVar(&inputLE, "input-little-endian", false, "treat hex values as little-endian bytes")
	cmd.MarkFlagRequired("private")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
	return cmd
}

func newNewPubKeyCmd(flags *eccFlags) *cobra.Command {
	var x, y string
	var inputHex, inputLE bool

	cmd := &cobra.Command{
		Use:   "pub-key",
		Short: "Build a public-key TOML object",
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := loadCurve(flags.curve)
			if err != nil {
				return err
			}
			xv, err := parseBigInt(x, inputHex, inputLE)
			if err != nil {
				return err
			}
			yv, err := parseBigInt(y, inputHex, inputLE)
			if err != nil {
				return err
			}
			pub, err := ecc.NewPubKey(ecc.NewPoint(xv, yv), curve)
			if err != nil {
				return err
			}

			doc := persist.FromPubKey(pub, flags.hex, flags.littleEndian)
			return emit(cmd, flags, doc, func() { printToml(cmd, doc) })
		},
	}
	cmd.Flags().StringVar(&x, "x", "", "public key x coordinate")
	cmd.Flags().StringVar(&y, "y", "", "public key y coordinate")
	cmd.Flags().BoolVar(&inputHex, "input-hex", false, "treat values as hex")
	cmd.Flags().BoolVar(&inputLE, "input-little-endian", false, "treat hex values as little-endian bytes")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
	return cmd
}

func newNewPrivKeyCmd(flags *eccFlags) *cobra.Command {
	var inputHex, inputLE bool

	cmd := &cobra.Command{
		Use:   "priv-key <private-scalar>",
		Short: "Build a private-key TOML object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := loadCurve(flags.curve)
			if err != nil {
				return err
			}
			k, err := parseBigInt(args[0], inputHex, inputLE)
			if err != nil {
				return err
			}
			priv, err := ecc.NewPrivKey(k, curve)
			if err != nil {
				return err
			}

			doc := persist.FromPrivKey(priv, flags.hex, flags.littleEndian)
			return emit(cmd, flags, doc, func() { printToml(cmd, doc) })
		},
	}
	cmd.Flags().BoolVar(&inputHex, "input-hex", false, "treat the private scalar as hex")
	cmd.Flags().BoolVar(&inputLE, "input-little-endian", false, "treat the hex private scalar as little-endian bytes")
	return cmd
}

func newNewSignatureCmd(flags *eccFlags) *cobra.Command {
	var x, y, r, s string
	var inputHex, inputLE bool

	cmd := &cobra.Command{
		Use:   "signature",
		Short: "Build a signature TOML object from raw (r, s, public key) values",
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := loadCurve(flags.curve)
			if err != nil {
				return err
			}
			xv, err := parseBigInt(x, inputHex, inputLE)
			if err != nil {
				return err
			}
			yv, err := parseBigInt(y, inputHex, inputLE)
			if err != nil {
				return err
			}
			rv, err := parseBigInt(r, inputHex, inputLE)
			if err != nil {
				return err
			}
			sv, err := parseBigInt(s, inputHex, inputLE)
			if err != nil {
				return err
			}

			sig := ecc.NewSignature(rv, sv, curve, ecc.NewPoint(xv, yv))
			doc := persist.FromSignature(sig, flags.hex, flags.littleEndian)
			return emit(cmd, flags, doc, func() { printToml(cmd, doc) })
		},
	}
	cmd.Flags().StringVar(&x, "x", "", "public key x coordinate")
	cmd.Flags().StringVar(&y, "y", "", "public key y coordinate")
	cmd.Flags().StringVar(&r, "r", "", "signature r")
	cmd.Flags().StringVar(&s, "s", "", "signature s")
	cmd.Flags().BoolVar(&inputHex, "input-hex", false, "treat values as hex")
	cmd.Flags().BoolVar(&inputLE, "input-little-endian", false, "treat hex values as little-endian bytes")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
	cmd.MarkFlagRequired("r")
	cmd.MarkFlagRequired("s")
	return cmd
}
