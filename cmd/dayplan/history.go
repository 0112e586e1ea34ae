package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/dayplan/report"
	"github.com/katalvlaran/dayplan/store"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var flagLimit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openHistory(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			recs, err := s.ListPlans(cmd.Context(), flagLimit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("no saved plans")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tWHEN\tSOURCE\tN\tSCORE\tTIME\tBUDGET\tAPSP")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
					r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Source,
					r.Locations, r.Score, r.TotalTime, r.Budget, r.Algorithm)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&flagLimit, "limit", 20, "Show at most this many plans (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openHistory(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			rec, err := s.GetPlan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return report.Text(os.Stdout, nil, rec.Plan)
		},
	})

	return cmd
}

func openHistory(cmd *cobra.Command) (*store.SQLiteStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	s, err := store.NewSQLiteStore(cmd.Context(), cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}

	return s, nil
}
