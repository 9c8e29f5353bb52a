package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/report"
	"github.com/rustyeddy/tradelog/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the performance snapshot",
	Long: `Derive the performance snapshot from the journal: current capital,
total P/L, win rate, average risk:reward and the equity curve summary.

Examples:
  tradelog stats
  tradelog stats --direction long --window 3months`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var statsFlags struct {
	direction string
	window    string
}

func init() {
	rootCmd.AddCommand(statsCmd)
	filterFlags(statsCmd, &statsFlags.direction, &statsFlags.window)
}

func runStats(cmd *cobra.Command, args []string) error {
	owner, err := currentOwner()
	if err != nil {
		return err
	}
	f, err := parseFilter(statsFlags.direction, statsFlags.window)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	capital, err := store.StartingCapital()
	if err != nil {
		capital = cfg.Journal.StartingCapital
	}

	snap := stats.Compute(loadTrades(store, owner), capital, f, time.Now())
	report.Fprint(os.Stdout, snap)
	return nil
}
