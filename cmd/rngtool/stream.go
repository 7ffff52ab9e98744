package main

import (
	"errors"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zeebo/rng"
	"github.com/zeebo/rng/seed"
)

const streamChunk = 64 << 10

func newStreamCmd() *cobra.Command {
	var (
		algo     string
		seedNum  uint64
		seedText string
		total    int64
	)

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Write raw generator output to stdout",
		Long:  "Write raw generator output to stdout, for piping into PractRand, dieharder or similar batteries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := seedNum
			if seedText != "" {
				s = seed.String(seedText)
			}
			g, err := rng.Lookup(algo, s)
			if err != nil {
				return err
			}

			// with SIGPIPE ignored a closed reader surfaces as EPIPE from
			// Write instead of killing the process.
			signal.Ignore(syscall.SIGPIPE)

			log.Debug().Str("algo", algo).Uint64("seed", s).Int64("bytes", total).Msg("streaming")

			start := time.Now()
			n, err := stream(cmd.OutOrStdout(), g, total)
			log.Info().
				Str("algo", algo).
				Int64("bytes", n).
				Dur("elapsed", time.Since(start)).
				Msg("stream finished")
			return err
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "linnorm", "generator to stream")
	cmd.Flags().Uint64Var(&seedNum, "seed", 0, "numeric seed")
	cmd.Flags().StringVar(&seedText, "seed-text", "", "text seed, hashed; overrides --seed")
	cmd.Flags().Int64Var(&total, "bytes", 0, "bytes to write; 0 streams until the reader goes away")
	return cmd
}

// stream writes total bytes of output from g to w, or writes until w fails
// when total is not positive. A reader closing the pipe ends the stream
// without error.
func stream(w io.Writer, g *rng.T, total int64) (int64, error) {
	buf := make([]byte, streamChunk)
	var written int64
	for total <= 0 || written < total {
		chunk := buf
		if total > 0 && total-written < int64(len(chunk)) {
			chunk = chunk[:total-written]
		}
		_, _ = g.Read(chunk)

		n, err := w.Write(chunk)
		written += int64(n)
		if errors.Is(err, syscall.EPIPE) {
			return written, nil
		} else if err != nil {
			return written, err
		}
	}
	return written, nil
}
