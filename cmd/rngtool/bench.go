package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zeebo/rng"
	"github.com/zeebo/rng/internal/mon"
)

// ops are the draw operations a battery can time. Each makes draws calls
// and returns a value so the work is not optimized away.
var ops = map[string]func(g *rng.T, draws int) uint64{
	"uint64": func(g *rng.T, draws int) (acc uint64) {
		for i := 0; i < draws; i++ {
			acc += g.Uint64()
		}
		return acc
	},
	"uint32": func(g *rng.T, draws int) (acc uint64) {
		for i := 0; i < draws; i++ {
			acc += uint64(g.Uint32())
		}
		return acc
	},
	"intn": func(g *rng.T, draws int) (acc uint64) {
		for i := 0; i < draws; i++ {
			acc += uint64(g.Intn(1000))
		}
		return acc
	},
	"float64": func(g *rng.T, draws int) (acc uint64) {
		var f float64
		for i := 0; i < draws; i++ {
			f += g.Float64()
		}
		return uint64(f)
	},
}

func opNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result is the timing of one algorithm on one op.
type Result struct {
	Algorithm string
	Op        string
	Draws     int
	Hist      *mon.Histogram
}

// PerDraw returns the average time of a single draw.
func (r Result) PerDraw() time.Duration {
	return time.Duration(r.Hist.Average() / float64(r.Draws))
}

var benchSink uint64

// runBench times every algorithm and op pair in b, in order.
func runBench(b Battery) ([]Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	var results []Result
	for _, name := range b.Algorithms {
		for _, op := range b.Ops {
			g, err := rng.Lookup(name, b.Seed)
			if err != nil {
				return nil, err
			}

			fn, hist := ops[op], new(mon.Histogram)
			for i := 0; i < b.Batches; i++ {
				hist.Time(func() { benchSink += fn(g, b.Draws) })
			}

			res := Result{Algorithm: name, Op: op, Draws: b.Draws, Hist: hist}
			log.Debug().
				Str("algo", name).
				Str("op", op).
				Dur("per_draw", res.PerDraw()).
				Msg("timed")
			results = append(results, res)
		}
	}
	return results, nil
}

// renderResults writes results as a table.
func renderResults(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"algorithm", "op", "ns/draw", "p50 batch", "p99 batch", "batches"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm,
			r.Op,
			fmt.Sprintf("%.3f", r.Hist.Average()/float64(r.Draws)),
			r.Hist.Quantile(0.5).String(),
			r.Hist.Quantile(0.99).String(),
			fmt.Sprint(r.Hist.Total()),
		})
	}
	table.Render()
}

func newBenchCmd() *cobra.Command {
	var (
		configPath string
		algos      string
		opList     string
		draws      int
		batches    int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time generator draws",
		RunE: func(cmd *cobra.Command, args []string) error {
			battery := defaultBattery()
			if configPath != "" {
				var err error
				battery, err = ParseBatteryFile(configPath)
				if err != nil {
					return err
				}
				log.Info().Str("path", configPath).Msg("loaded battery")
			}

			flags := cmd.Flags()
			if flags.Changed("algo") && algos != "all" {
				battery.Algorithms = strings.Split(algos, ",")
			}
			if flags.Changed("ops") {
				battery.Ops = strings.Split(opList, ",")
			}
			if flags.Changed("draws") {
				battery.Draws = draws
			}
			if flags.Changed("batches") {
				battery.Batches = batches
			}

			results, err := runBench(battery)
			if err != nil {
				return err
			}
			renderResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML battery file")
	cmd.Flags().StringVar(&algos, "algo", "all", "comma separated generators, or all")
	cmd.Flags().StringVar(&opList, "ops", strings.Join(opNames(), ","), "comma separated draw operations")
	cmd.Flags().IntVar(&draws, "draws", 1<<16, "draws per batch")
	cmd.Flags().IntVar(&batches, "batches", 32, "batches per algorithm and op")
	return cmd
}
