package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
)

var capitalCmd = &cobra.Command{
	Use:   "capital",
	Short: "Show the persisted starting capital",
	Args:  cobra.NoArgs,
	RunE:  runCapital,
}

var capitalSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the starting capital",
	Args:  cobra.ExactArgs(1),
	RunE:  runCapitalSet,
}

func init() {
	rootCmd.AddCommand(capitalCmd)
	capitalCmd.AddCommand(capitalSetCmd)
}

func runCapital(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	v, err := store.StartingCapital()
	if err != nil {
		return fmt.Errorf("read starting capital: %w", err)
	}

	fmt.Printf("starting capital: %.2f USD\n", v)
	return nil
}

func runCapitalSet(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("amount must be a non-negative finite number")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetStartingCapital(v); err != nil {
		return fmt.Errorf("save starting capital: %w", err)
	}

	fmt.Printf("starting capital set to %.2f USD\n", v)
	return nil
}
