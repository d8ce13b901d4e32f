// Command mysha hashes messages with the from-scratch SHA-256 engine and
// generates, signs, and verifies with the generic elliptic-curve engine.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
