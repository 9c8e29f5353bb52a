package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/stats"
	"github.com/rustyeddy/tradelog/trade"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A personal trading journal with performance statistics",
	Long: `Tradelog keeps a personal journal of closed trades and derives
performance statistics from it.

It provides tools for:
  - Recording trades (symbol, direction, entry/exit, size, stop)
  - Capital, P/L, win-rate and risk:reward summaries
  - Equity-curve charts
  - Importing legacy journal exports and exporting CSV
  - Serving the journal over a small JSON API`,
	SilenceUsage: true,
}

var (
	cfgPath string
	dbPath  string
	cfg     *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ./tradelog.yaml when present)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite journal DB (overrides config)")
	rootCmd.PersistentPreRunE = loadConfig
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path := cfgPath
	if path == "" {
		if _, err := os.Stat("./tradelog.yaml"); err == nil {
			path = "./tradelog.yaml"
		}
	}

	if path == "" {
		cfg = config.Default()
	} else {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if dbPath != "" {
		cfg.Journal.DBPath = dbPath
	}
	return nil
}

func openStore() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

// currentOwner resolves the acting user or reports the MissingUser condition.
func currentOwner() (string, error) {
	owner, ok := cfg.CurrentOwner()
	if !ok {
		return "", fmt.Errorf("must be signed in: set owner in the config file or TRADELOG_OWNER")
	}
	return owner, nil
}

// loadTrades reads the owner's records. Storage trouble on a read path is
// recoverable: warn and continue with an empty set so the statistics
// degrade to zeros instead of failing the command.
func loadTrades(store journal.Store, owner string) []trade.Record {
	recs, err := store.ListTrades(owner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not read trades (%v), continuing with empty journal\n", err)
		return nil
	}
	return recs
}

// filterFlags wires the shared --direction/--window flags onto a command.
func filterFlags(cmd *cobra.Command, direction, window *string) {
	cmd.Flags().StringVar(direction, "direction", "all", "direction filter: all, long or short")
	cmd.Flags().StringVar(window, "window", "all", "time window: all, week, month, 3months, 6months or 12months")
}

func parseFilter(direction, window string) (stats.Filter, error) {
	side, err := stats.ParseSide(direction)
	if err != nil {
		return stats.Filter{}, err
	}
	w, err := stats.ParseWindow(window)
	if err != nil {
		return stats.Filter{}, err
	}
	return stats.Filter{Side: side, Window: w}, nil
}
