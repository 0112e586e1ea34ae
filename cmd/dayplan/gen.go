package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/dayplan/builder"
	"github.com/katalvlaran/dayplan/input"
	"github.com/spf13/cobra"
)

func genCmd() *cobra.Command {
	var (
		flagSeed    int64
		flagEdgeP   float64
		flagPrereqP float64
		flagBudget  int64
		flagCyclic  bool
		flagJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "gen <locations>",
		Short: "Generate a random instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("locations: %w", err)
			}

			opts := []builder.BuilderOption{
				builder.WithSeed(flagSeed),
				builder.WithEdgeProbability(flagEdgeP),
				builder.WithPrereqProbability(flagPrereqP),
			}
			if cmd.Flags().Changed("budget") {
				opts = append(opts, builder.WithBudget(flagBudget))
			}
			if flagCyclic {
				opts = append(opts, builder.WithCyclicPrereqs())
			}

			in, err := builder.RandomInstance(n, opts...)
			if err != nil {
				return err
			}
			verbosef("generated %d locations, %d roads, %d prerequisites", n, in.Graph.EdgeCount(), len(in.Prerequisites))

			if flagJSON {
				return input.WriteJSON(os.Stdout, in)
			}

			return input.WriteText(os.Stdout, in)
		},
	}

	cmd.Flags().Int64Var(&flagSeed, "seed", 1, "Random seed")
	cmd.Flags().Float64Var(&flagEdgeP, "roads", 0.5, "Probability of a road between two locations")
	cmd.Flags().Float64Var(&flagPrereqP, "prereqs", 0.1, "Probability of a prerequisite between two tasks")
	cmd.Flags().Int64Var(&flagBudget, "budget", 0, "Time budget (default derived from size)")
	cmd.Flags().BoolVar(&flagCyclic, "cyclic", false, "Allow prerequisite cycles")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Write JSON instead of text")

	return cmd
}
