// New command creates a file or directory in the workspace.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/spark/internal/workspace"
)

var newCmd = &cobra.Command{
	Use:   "new <file|dir> <path>",
	Short: "Create a new file or directory",
	Long: `New creates an empty file or a directory at the given path.
Creating a file that already exists is an error; creating a directory
also creates missing parents.

Example:
  spark new file notes.txt
  spark new dir projects/spark`,
	Args: usageArgs(cobra.ExactArgs(2)),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	kind := args[0]
	path := args[1]

	switch kind {
	case "file":
		if err := workspace.CreateFile(path); err != nil {
			return err
		}
		fmt.Printf("Created file %s\n", path)
	case "dir":
		if err := workspace.CreateDir(path); err != nil {
			return err
		}
		fmt.Printf("Created directory %s\n", path)
	default:
		return fmt.Errorf("%w: unknown item type %q (expected file or dir)", errUsage, kind)
	}
	return nil
}
