// Command dayplan computes the highest-value set of tasks that fits in a
// day's time budget, visiting locations over a road network and returning
// home.
package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/dayplan/config"
	"github.com/katalvlaran/dayplan/input"
	"github.com/katalvlaran/dayplan/planner"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
	flagInput   string
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dayplan: ")

	rootCmd := &cobra.Command{
		Use:   "dayplan",
		Short: "Plan the most valuable day that fits in a time budget",
		Long: `dayplan reads locations, roads, task scores, durations and prerequisites,
then finds the set and order of tasks with the highest total score that can
be completed and still get back home within the time budget.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.dayplan/config.json merged with .dayplan/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&flagInput, "input-format", "", "Instance format: text or json (default by file extension)")

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(genCmd())
	rootCmd.AddCommand(historyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func verbosef(format string, args ...any) {
	if flagVerbose {
		log.Printf(format, args...)
	}
}

// loadConfig reads --config alone when given, the conventional files otherwise.
func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.Load("", flagConfig)
	}

	return config.LoadDefault()
}

// readInstance decodes the instance at path ("-" or empty for stdin).
func readInstance(path string) (*planner.Instance, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	format := flagInput
	if format == "" && strings.EqualFold(filepath.Ext(path), ".json") {
		format = config.FormatJSON
	}
	if format == config.FormatJSON {
		return input.ParseJSON(r)
	}

	return input.ParseText(r)
}

func sourceName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "stdin"
	}

	return args[0]
}
