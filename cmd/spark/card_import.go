// Card import command restores the card table from a JSONL snapshot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cardImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import cards from a JSONL snapshot",
	Long: `Import replaces the card table with the contents of a JSONL
snapshot, preserving card IDs. Malformed lines are skipped.

Example:
  spark card import cards.jsonl`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runCardImport,
}

func runCardImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.ImportCards(path); err != nil {
		return fmt.Errorf("import cards: %w", err)
	}

	fmt.Printf("Imported cards from %s\n", path)
	return nil
}
