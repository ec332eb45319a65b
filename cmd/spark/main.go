// Package main provides the spark CLI: a quick action card store and
// workspace file tool.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mesh-intelligence/spark/internal/workspace"
	"github.com/mesh-intelligence/spark/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spark:", err)
		os.Exit(exitCode(err))
	}
}

// errUsage marks command-line usage mistakes: wrong argument counts,
// unknown flags, bad item kinds.
var errUsage = errors.New("invalid usage")

// userErrors are failures caused by the request itself rather than the
// system: bad usage, bad IDs, missing cards, malformed fields, missing paths.
var userErrors = []error{
	errUsage,
	types.ErrNotFound,
	types.ErrInvalidID,
	types.ErrTitleEmpty,
	types.ErrContentEmpty,
	types.ErrStoreLocked,
	workspace.ErrIsDirectory,
	workspace.ErrExists,
	fs.ErrNotExist,
}

// exitCode maps an error to the CLI exit code: user errors exit 1,
// everything else exits 2.
func exitCode(err error) int {
	for _, ue := range userErrors {
		if errors.Is(err, ue) {
			return exitUserError
		}
	}
	return exitSysError
}
