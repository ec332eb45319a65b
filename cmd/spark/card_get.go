// Card get command retrieves a card by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cardGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a card by ID",
	Long: `Get retrieves a quick action card by its ID.

Example:
  spark card get 1
  spark card get 1 --json`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runCardGet,
}

func runCardGet(cmd *cobra.Command, args []string) error {
	id, err := parseCardID(args[0])
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	card, err := store.Get(id)
	if err != nil {
		return fmt.Errorf("get card %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(card)
	}
	printCard(card)
	return nil
}
