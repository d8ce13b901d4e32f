package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level zerolog logger every command writes through.
// Library code (internal/...) never logs; only this binary does.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mysha",
		Short:         "SHA-256 hashing and generic elliptic-curve signing, from scratch",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("debug"); verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}
	root.PersistentFlags().Bool("debug", false, "enable debug logging")

	root.AddCommand(newHashCmd())
	root.AddCommand(newECCCmd())

	return root
}
