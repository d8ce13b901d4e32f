package main

import (
	"math/big"

	"github.com/lucasmabf/mysha/internal/ecc"
	"github.com/lucasmabf/mysha/internal/persist"
)

// loadCurve returns the curve named by path, or secp256k1 when path is empty.
func loadCurve(path string) (ecc.Curve, error) {
	if path == "" {
		return ecc.Secp256k1(), nil
	}
	doc, err := persist.Load(path)
	if err != nil {
		return ecc.Curve{}, err
	}
	return doc.ToCurve()
}

// parseBigInt parses s as a curve-parameter integer, either decimal or hex
// (optionally little-endian-by-byte), matching the --hex/--little-endian
// flag pair every ecc subcommand exposes.
func parseBigInt(s string, hex, le bool) (*big.Int, error) {
	return persist.ParseBigInt(s, hex, le)
}
