// Shared helpers for spark CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/spark/internal/sqlite"
	"github.com/mesh-intelligence/spark/pkg/types"
)

// usageArgs wraps a cobra positional-args validator so its failures are
// reported as usage errors and exit with the user-error code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

// attachStore resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// parseCardID parses a card ID argument. A non-numeric or non-positive
// argument is reported as ErrInvalidID.
func parseCardID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printCard writes a one-line human-readable rendering of a card.
func printCard(card *types.Card) {
	fmt.Printf("[%d] %s: %s\n", card.CardID, card.Title, card.Content)
}
