package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/zeebo/rng/pulley"
)

func newInvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invert VALUE...",
		Short: "Recover the pulley counter behind observed outputs",
		Long:  "Recover the pulley counter behind observed outputs. Values may be decimal or 0x prefixed hex.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				out, err := strconv.ParseUint(arg, 0, 64)
				if err != nil {
					return errs.Wrap(err)
				}
				counter := pulley.Inverse(out)
				fmt.Fprintf(cmd.OutOrStdout(), "%#016x counter=%#016x next=%#016x\n",
					out, counter, pulley.Determine(counter+1))
			}
			return nil
		},
	}
}
