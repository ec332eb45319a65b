// Open command reads a file and prints its content.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/spark/internal/workspace"
)

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Print the content of a file",
	Long: `Open reads the file at the given path and prints its content.
With --json the output includes the path and the language detected from
the file extension.

Example:
  spark open notes.txt
  spark open script.py --json`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	file, err := workspace.Open(args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(file)
	}
	fmt.Print(file.Content)
	return nil
}
