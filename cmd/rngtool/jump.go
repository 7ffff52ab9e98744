package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zeebo/rng/longperiod"
	"github.com/zeebo/rng/seed"
)

func newJumpCmd() *cobra.Command {
	var (
		count    int
		seedNum  uint64
		seedText string
		draws    int
	)

	cmd := &cobra.Command{
		Use:   "jump",
		Short: "Mint non-overlapping longperiod generators from one seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := seedNum
			if seedText != "" {
				s = seed.String(seedText)
			}

			start := time.Now()
			gens := longperiod.CreateMany(count, s)
			log.Debug().Int("count", len(gens)).Dur("elapsed", time.Since(start)).Msg("minted")

			w := cmd.OutOrStdout()
			for i, g := range gens {
				fmt.Fprintf(w, "%d:", i)
				for j := 0; j < draws; j++ {
					fmt.Fprintf(w, " %016x", g.Uint64())
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 4, "generators to mint")
	cmd.Flags().Uint64Var(&seedNum, "seed", 0, "numeric seed")
	cmd.Flags().StringVar(&seedText, "seed-text", "", "text seed, hashed; overrides --seed")
	cmd.Flags().IntVar(&draws, "draws", 4, "outputs to print per generator")
	return cmd
}
