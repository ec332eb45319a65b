// Save command writes content to a file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/spark/internal/workspace"
)

var saveContent string

var saveCmd = &cobra.Command{
	Use:   "save <path>",
	Short: "Write content to a file",
	Long: `Save writes content to the file at the given path, replacing any
existing content. The content comes from --content when set, otherwise
from standard input. The write is atomic: a save followed by an open
returns exactly the saved content.

Example:
  spark save notes.txt --content "remember the milk"
  echo "remember the milk" | spark save notes.txt`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVar(&saveContent, "content", "", "content to write (default: read from stdin)")
}

func runSave(cmd *cobra.Command, args []string) error {
	path := args[0]

	content := saveContent
	if !cmd.Flags().Changed("content") {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		content = string(data)
	}

	if err := workspace.Save(path, content); err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", path)
	return nil
}
