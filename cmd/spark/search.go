// Search command finds files and directories by name.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/spark/internal/workspace"
)

var searchCmd = &cobra.Command{
	Use:   "search <query> [root]",
	Short: "Find files and directories by name",
	Long: `Search walks the tree under root (default: current directory) and
prints the paths whose name contains the query, case-insensitively.

Example:
  spark search backup
  spark search .py projects`,
	Args: usageArgs(cobra.RangeArgs(1, 2)),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	root := "."
	if len(args) == 2 {
		root = args[1]
	}

	matches, err := workspace.Search(root, query)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(matches)
	}
	for _, m := range matches {
		fmt.Println(m)
	}
	return nil
}
