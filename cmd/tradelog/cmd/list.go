package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/stats"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal trades",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var listFlags struct {
	direction string
	window    string
}

func init() {
	rootCmd.AddCommand(listCmd)
	filterFlags(listCmd, &listFlags.direction, &listFlags.window)
}

func runList(cmd *cobra.Command, args []string) error {
	owner, err := currentOwner()
	if err != nil {
		return err
	}
	f, err := parseFilter(listFlags.direction, listFlags.window)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.ListTrades(owner)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	recs = f.Apply(recs, time.Now())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSYMBOL\tDIR\tENTRY\tEXIT\tSIZE\tSTOP\tPNL")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%+.2f\n",
			r.Date.Format(time.DateOnly),
			r.Symbol,
			r.Direction,
			cell(r.Entry),
			cell(r.Exit),
			cell(r.Size),
			cellPtr(r.Stop),
			r.PnLUSD,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d trades, total pnl %+.2f USD\n", len(recs), stats.TotalPnL(recs))
	return nil
}

func cell(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return fmt.Sprintf("%g", v)
}

func cellPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return cell(*v)
}
