// Tests for the CLI exit-code contract: mistakes in the request itself
// report as user errors, everything else as system errors.
package main

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/spark/pkg/types"
)

// runCLI executes the root command with isolated config and data
// directories and returns the resulting error.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	full := append([]string{"--config-dir", t.TempDir(), "--data-dir", t.TempDir()}, args...)
	rootCmd.SetArgs(full)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	return rootCmd.Execute()
}

func TestMissingArgumentIsUserError(t *testing.T) {
	err := runCLI(t, "card", "get")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUsage))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestTooManyArgumentsIsUserError(t *testing.T) {
	err := runCLI(t, "card", "delete", "1", "2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUsage))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestUnknownFlagIsUserError(t *testing.T) {
	err := runCLI(t, "card", "list", "--bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUsage))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestMissingRequiredFieldIsUserError(t *testing.T) {
	err := runCLI(t, "card", "add", "--content", "run backup.sh")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTitleEmpty))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestUnknownItemTypeIsUserError(t *testing.T) {
	err := runCLI(t, "new", "link", "somewhere")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUsage))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestMissingCardIsUserError(t *testing.T) {
	err := runCLI(t, "card", "get", "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestBadCardIDIsUserError(t *testing.T) {
	err := runCLI(t, "card", "get", "not-a-number")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidID))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestUnexpectedErrorIsSysError(t *testing.T) {
	assert.Equal(t, exitSysError, exitCode(errors.New("database file corrupted")))
}
