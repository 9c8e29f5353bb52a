// Package report renders a performance snapshot as plain text.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/tradelog/stats"
)

func Fprint(w io.Writer, s stats.Snapshot) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w, "Capital")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Starting Capital: %.2f USD\n", s.StartingCapital)
	fmt.Fprintf(w, "Current Capital:  %.2f USD\n", s.CurrentCapital)
	fmt.Fprintf(w, "Total PnL:        %+.2f USD\n", s.TotalPnL)
	fmt.Fprintf(w, "Change:           %+.2f%%\n", s.PctChange)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:           %d\n", s.Trades)
	fmt.Fprintf(w, "Wins:             %d\n", s.Wins)
	fmt.Fprintf(w, "Losses:           %d\n", s.Losses)
	fmt.Fprintf(w, "Win Rate:         %.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Avg Risk:Reward:  %.2f R\n", s.AvgRiskReward)

	if len(s.EquityCurve) > 0 {
		last := s.EquityCurve[len(s.EquityCurve)-1]
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Equity Curve")
		fmt.Fprintln(w, "--------------------------------------------------")
		fmt.Fprintf(w, "Points:           %d\n", len(s.EquityCurve))
		fmt.Fprintf(w, "Last Point:       %s  %+.2f USD\n",
			last.Date.Format(time.DateOnly), last.Cumulative)
	}

	fmt.Fprintln(w)
}
