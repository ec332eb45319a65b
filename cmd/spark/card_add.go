// Card add command creates a new quick action card.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/spark/pkg/types"
)

var (
	cardAddTitle   string
	cardAddContent string
)

var cardAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new quick action card",
	Long: `Add creates a new quick action card with the given title and content.

Example:
  spark card add --title "Backup" --content "run backup.sh"
  spark card add --title "Deploy" --content "make deploy" --json`,
	RunE: runCardAdd,
}

func init() {
	cardAddCmd.Flags().StringVar(&cardAddTitle, "title", "", "card title (required)")
	cardAddCmd.Flags().StringVar(&cardAddContent, "content", "", "card content (required)")
}

func runCardAdd(cmd *cobra.Command, args []string) error {
	card := &types.Card{Title: cardAddTitle, Content: cardAddContent}
	if err := card.Validate(); err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if _, err := store.Create(card); err != nil {
		return fmt.Errorf("create card: %w", err)
	}

	if flagJSON {
		return printJSON(card)
	}
	fmt.Printf("Created card %d\n", card.CardID)
	return nil
}
