// Card list command prints all cards in insertion order.
package main

import (
	"github.com/spf13/cobra"
)

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cards",
	Long: `List prints every quick action card in insertion order.

Example:
  spark card list
  spark card list --json`,
	Args: usageArgs(cobra.NoArgs),
	RunE: runCardList,
}

func runCardList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	cards, err := store.List()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cards)
	}
	for _, card := range cards {
		printCard(card)
	}
	return nil
}
