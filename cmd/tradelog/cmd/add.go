package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/pkg/id"
	"github.com/rustyeddy/tradelog/trade"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a closed trade",
	Long: `Record one closed trade in the journal.

Realized P/L is computed here, at the write boundary, from direction, entry,
exit and size. Readers trust the stored value and never recompute it.

Example:
  tradelog add --symbol AAPL --direction long --entry 100 --exit 110 --size 10 --stop 95`,
	Args: cobra.NoArgs,
}

var addFlags struct {
	symbol    string
	direction string
	entry     float64
	exit      float64
	size      float64
	stop      float64
	date      string
}

func init() {
	addCmd.RunE = runAdd
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addFlags.symbol, "symbol", "", "instrument label")
	addCmd.Flags().StringVar(&addFlags.direction, "direction", "", "long or short")
	addCmd.Flags().Float64Var(&addFlags.entry, "entry", 0, "entry price")
	addCmd.Flags().Float64Var(&addFlags.exit, "exit", 0, "exit price")
	addCmd.Flags().Float64Var(&addFlags.size, "size", 0, "quantity traded")
	addCmd.Flags().Float64Var(&addFlags.stop, "stop", 0, "stop price (omit when no stop was set)")
	addCmd.Flags().StringVar(&addFlags.date, "date", "", "trade date as YYYY-MM-DD (default today)")

	_ = addCmd.MarkFlagRequired("symbol")
	_ = addCmd.MarkFlagRequired("direction")
	_ = addCmd.MarkFlagRequired("entry")
	_ = addCmd.MarkFlagRequired("exit")
	_ = addCmd.MarkFlagRequired("size")
}

func runAdd(cmd *cobra.Command, args []string) error {
	owner, err := currentOwner()
	if err != nil {
		return err
	}

	direction := trade.ParseDirection(addFlags.direction)
	if direction == trade.Unknown {
		return fmt.Errorf("direction must be long or short, got %q", addFlags.direction)
	}
	for name, v := range map[string]float64{
		"entry": addFlags.entry, "exit": addFlags.exit, "size": addFlags.size,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number", name)
		}
	}

	date := time.Now()
	if addFlags.date != "" {
		date, err = time.Parse(time.DateOnly, addFlags.date)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	rec := trade.Record{
		ID:        id.New(),
		OwnerID:   owner,
		Date:      date,
		Symbol:    addFlags.symbol,
		Direction: direction,
		Entry:     addFlags.entry,
		Exit:      addFlags.exit,
		Size:      addFlags.size,
		PnLUSD:    trade.RealizedPnL(direction, addFlags.entry, addFlags.exit, addFlags.size),
	}
	if addCmd.Flags().Changed("stop") {
		stop := addFlags.stop
		rec.Stop = &stop
	}
	if notional := addFlags.entry * addFlags.size; notional != 0 {
		pct := rec.PnLUSD / math.Abs(notional) * 100
		rec.PnLPct = &pct
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InsertTrade(rec); err != nil {
		return fmt.Errorf("record trade: %w", err)
	}

	fmt.Printf("recorded %s %s %s  pnl %+.2f USD\n", rec.ID, rec.Direction, rec.Symbol, rec.PnLUSD)
	return nil
}
