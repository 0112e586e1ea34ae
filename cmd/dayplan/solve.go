package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/dayplan/config"
	"github.com/katalvlaran/dayplan/input"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/katalvlaran/dayplan/report"
	"github.com/katalvlaran/dayplan/store"
	"github.com/spf13/cobra"
)

func solveCmd() *cobra.Command {
	var (
		flagAPSP        string
		flagParallelism int
		flagMaxLoc      int
		flagFormat      string
		flagRoutes      bool
		flagStats       bool
		flagSave        bool
		flagPlain       bool
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Compute the optimal plan of an instance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("apsp") {
				cfg.APSP = flagAPSP
			}
			if flags.Changed("parallelism") {
				cfg.Parallelism = flagParallelism
			}
			if flags.Changed("max-locations") {
				cfg.MaxLocations = flagMaxLoc
			}
			if flags.Changed("format") {
				cfg.Format = flagFormat
			}
			if flags.Changed("routes") {
				cfg.Routes = flagRoutes
			}
			opts, err := cfg.PlannerOptions()
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			in, err := readInstance(path)
			if err != nil {
				return fmt.Errorf("read instance: %w", err)
			}
			verbosef("%d locations, %d roads, %d prerequisites, budget %d",
				in.Order(), in.Graph.EdgeCount(), len(in.Prerequisites), in.Budget)
			verbosef("all-pairs distances via %s, parallelism %d", cfg.APSP, cfg.Parallelism)

			start := time.Now()
			plan, err := planner.Solve(in, opts...)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			took := time.Since(start)
			verbosef("solved in %s: %d of %d states reached", took, plan.Stats.Reached, plan.Stats.States)

			if flagSave {
				if err := savePlan(cmd.Context(), cfg, in, plan, sourceName(args), took); err != nil {
					return err
				}
			}

			if cfg.Format == config.FormatJSON {
				return report.JSON(os.Stdout, plan)
			}
			var ropts []report.Option
			if flagPlain {
				ropts = append(ropts, report.WithPlain())
			}
			if flagStats {
				ropts = append(ropts, report.WithStats())
			}

			return report.Text(os.Stdout, in, plan, ropts...)
		},
	}

	cmd.Flags().StringVar(&flagAPSP, "apsp", "dijkstra", "All-pairs algorithm: dijkstra or floyd-warshall")
	cmd.Flags().IntVar(&flagParallelism, "parallelism", 1, "Concurrent shortest-path runs")
	cmd.Flags().IntVar(&flagMaxLoc, "max-locations", planner.DefaultMaxLocations, "Reject instances with more locations")
	cmd.Flags().StringVar(&flagFormat, "format", config.FormatText, "Output format: text or json")
	cmd.Flags().BoolVar(&flagRoutes, "routes", false, "Show the concrete route of every move")
	cmd.Flags().BoolVar(&flagStats, "stats", false, "Show state-space counters")
	cmd.Flags().BoolVar(&flagSave, "save", false, "Record the plan in the history database")
	cmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colors")

	return cmd
}

func savePlan(ctx context.Context, cfg *config.Config, in *planner.Instance, plan *planner.Plan, source string, took time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	digest, err := input.Digest(in)
	if err != nil {
		return err
	}

	s, err := store.NewSQLiteStore(ctx, cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer s.Close()

	rec := &store.Record{
		Digest:    digest,
		Source:    source,
		Locations: in.Order(),
		Budget:    in.Budget,
		Score:     plan.Score,
		TotalTime: plan.TotalTime,
		Algorithm: cfg.APSP,
		Elapsed:   took,
		Plan:      plan,
	}
	if err := s.SavePlan(ctx, rec); err != nil {
		return err
	}
	verbosef("saved plan %s to %s", rec.ID, cfg.HistoryDB)

	return nil
}
