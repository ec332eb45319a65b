// Card command group: CRUD and snapshot operations over quick action cards.
package main

import "github.com/spf13/cobra"

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage quick action cards",
	Long: `Card groups the operations on quick action cards: add, get, list,
update, delete, and JSONL snapshot export/import. Cards are persisted in
quick_actions.db in the data directory.`,
}

func init() {
	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardGetCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardUpdateCmd)
	cardCmd.AddCommand(cardDeleteCmd)
	cardCmd.AddCommand(cardExportCmd)
	cardCmd.AddCommand(cardImportCmd)
}
