// Ls command lists the entries of a directory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/spark/internal/workspace"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List directory entries",
	Long: `Ls lists the entries of a directory, directories first. The path
defaults to the current directory.

Example:
  spark ls
  spark ls projects --json`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	entries, err := workspace.ListDir(path)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(entries)
	}
	for _, e := range entries {
		if e.IsDir {
			fmt.Printf("%s/\n", e.Name)
		} else {
			fmt.Printf("%s\t%d\n", e.Name, e.Size)
		}
	}
	return nil
}
