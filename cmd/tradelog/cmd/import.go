package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a legacy JSON journal export",
	Long: `Import trades from a JSON export in any historical schema.

Each row is normalized onto the current schema: legacy field names fall
back per the documented table, malformed fields degrade to defaults, and
no single bad row aborts the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	owner, err := currentOwner()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := journal.ImportJSON(store, owner, data)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d trades\n", n)
	return nil
}
