// Card update command replaces the fields of an existing card.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/spark/pkg/types"
)

var (
	cardUpdateTitle   string
	cardUpdateContent string
)

var cardUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a card's title and content",
	Long: `Update replaces the title and content of an existing card.

Example:
  spark card update 1 --title "Backup" --content "run backup.sh --full"`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runCardUpdate,
}

func init() {
	cardUpdateCmd.Flags().StringVar(&cardUpdateTitle, "title", "", "new card title (required)")
	cardUpdateCmd.Flags().StringVar(&cardUpdateContent, "content", "", "new card content (required)")
}

func runCardUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseCardID(args[0])
	if err != nil {
		return err
	}

	card := &types.Card{Title: cardUpdateTitle, Content: cardUpdateContent}
	if err := card.Validate(); err != nil {
		return err
	}

	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.Update(id, card); err != nil {
		return fmt.Errorf("update card %d: %w", id, err)
	}

	if flagJSON {
		updated, err := store.Get(id)
		if err != nil {
			return fmt.Errorf("get updated card: %w", err)
		}
		return printJSON(updated)
	}
	fmt.Printf("Updated card %d\n", id)
	return nil
}
