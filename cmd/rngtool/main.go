// Command rngtool streams, benchmarks and inspects the generators in
// github.com/zeebo/rng.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var jsonLogs, debug bool

	rootCmd := &cobra.Command{
		Use:           "rngtool",
		Short:         "Pseudorandom generator toolbox",
		Long:          "Stream raw output for statistical batteries, time draws, invert pulley outputs and mint jumped generators.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !jsonLogs {
				log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"})
			}
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "log as JSON instead of console text")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newStreamCmd(),
		newBenchCmd(),
		newInvertCmd(),
		newJumpCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed")
	}
}
