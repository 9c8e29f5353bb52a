package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/chart"
	"github.com/rustyeddy/tradelog/stats"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the equity curve to an HTML file",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

var chartFlags struct {
	direction string
	window    string
	out       string
}

func init() {
	rootCmd.AddCommand(chartCmd)
	filterFlags(chartCmd, &chartFlags.direction, &chartFlags.window)
	chartCmd.Flags().StringVarP(&chartFlags.out, "out", "o", "equity.html", "output HTML file")
}

func runChart(cmd *cobra.Command, args []string) error {
	owner, err := currentOwner()
	if err != nil {
		return err
	}
	f, err := parseFilter(chartFlags.direction, chartFlags.window)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	curve := stats.EquityCurve(f.Apply(loadTrades(store, owner), time.Now()))

	out, err := os.Create(chartFlags.out)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer out.Close()

	if err := chart.RenderEquity(out, curve); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	fmt.Printf("wrote %s (%d points)\n", chartFlags.out, len(curve))
	return nil
}
