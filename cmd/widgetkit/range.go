package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetkit/internal/state"
)

type rangeOptions struct {
	min, max  float64
	low, high float64
	setLow    float64
	setHigh   float64
}

func newRangeCmd() *cobra.Command {
	opts := &rangeOptions{}

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Apply endpoint updates to a bounded range",
		Long: `Range builds a two-handle range, applies --set-low then --set-high when
given, and prints "low high leftPct rightPct".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRange(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.min, "min", 0, "Lower bound")
	cmd.Flags().Float64Var(&opts.max, "max", 100, "Upper bound")
	cmd.Flags().Float64Var(&opts.low, "low", 0, "Initial low endpoint")
	cmd.Flags().Float64Var(&opts.high, "high", 100, "Initial high endpoint")
	cmd.Flags().Float64Var(&opts.setLow, "set-low", 0, "Request a new low endpoint")
	cmd.Flags().Float64Var(&opts.setHigh, "set-high", 0, "Request a new high endpoint")

	return cmd
}

func runRange(cmd *cobra.Command, opts *rangeOptions) error {
	r, err := state.NewRange(opts.min, opts.max, opts.low, opts.high)
	if err != nil {
		return newCommandError("build range", fmt.Sprintf("bounds %g..%g", opts.min, opts.max), err, "Pass numeric bounds with --min no greater than --max.")
	}

	if cmd.Flags().Changed("set-low") {
		r.SetLow(opts.setLow)
	}
	if cmd.Flags().Changed("set-high") {
		r.SetHigh(opts.setHigh)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%g %g %.2f %.2f\n", r.Low(), r.High(), r.LeftPct(), r.RightPct())
	return nil
}
