// Card delete command removes a card by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card by ID",
	Long: `Delete removes a quick action card by its ID.

Example:
  spark card delete 1`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runCardDelete,
}

func runCardDelete(cmd *cobra.Command, args []string) error {
	id, err := parseCardID(args[0])
	if err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.Delete(id); err != nil {
		return fmt.Errorf("delete card %d: %w", id, err)
	}

	fmt.Printf("Deleted card %d\n", id)
	return nil
}
