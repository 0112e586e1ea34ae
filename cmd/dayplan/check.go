package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dayplan/matrix"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/prereq"
	"github.com/katalvlaran/dayplan/report"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var flagPlain bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report prerequisite cycles and tasks that can never be completed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			in, err := readInstance(path)
			if err != nil {
				return fmt.Errorf("read instance: %w", err)
			}

			table, err := matrix.AllPairs(in.Graph)
			if err != nil {
				return fmt.Errorf("distances: %w", err)
			}
			checker, err := prereq.New(in.Order(), in.Prerequisites)
			if err != nil {
				return fmt.Errorf("prerequisites: %w", err)
			}
			rep, err := prereq.Analyze(checker, func(task int) bool {
				return table.Reachable(planner.Home, task) && table.Reachable(task, planner.Home)
			})
			if err != nil {
				return err
			}
			verbosef("%d blocked of %d tasks", rep.Blocked.Size(), in.Order())

			var ropts []report.Option
			if flagPlain {
				ropts = append(ropts, report.WithPlain())
			}

			return report.Check(os.Stdout, in.Order(), rep, ropts...)
		},
	}
	cmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colors")

	return cmd
}
