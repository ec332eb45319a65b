// Card export command writes a JSONL snapshot of the card table.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cardExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export all cards to a JSONL snapshot",
	Long: `Export writes every card to a JSONL file, one record per line in
insertion order. The file is written atomically.

Example:
  spark card export cards.jsonl`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runCardExport,
}

func runCardExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.ExportCards(path); err != nil {
		return fmt.Errorf("export cards: %w", err)
	}

	fmt.Printf("Exported cards to %s\n", path)
	return nil
}
