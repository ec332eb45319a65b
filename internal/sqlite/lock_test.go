// Unit tests for the single-process data directory lock.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/spark/pkg/types"
)

func TestAttachTakesLockFile(t *testing.T) {
	dataDir := t.TempDir()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: "sqlite", DataDir: dataDir}))
	defer b.Detach()

	_, err := os.Stat(filepath.Join(dataDir, LockFile))
	assert.NoError(t, err, "lock file should exist while attached")
}

func TestSecondAttachOnSameDirReturnsErrStoreLocked(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: "sqlite", DataDir: dataDir}

	b1 := NewBackend()
	require.NoError(t, b1.Attach(cfg))
	defer b1.Detach()

	b2 := NewBackend()
	err := b2.Attach(cfg)
	assert.ErrorIs(t, err, types.ErrStoreLocked)
}

func TestDetachReleasesLock(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: "sqlite", DataDir: dataDir}

	b1 := NewBackend()
	require.NoError(t, b1.Attach(cfg))
	require.NoError(t, b1.Detach())

	_, err := os.Stat(filepath.Join(dataDir, LockFile))
	assert.True(t, os.IsNotExist(err), "lock file should be gone after detach")

	b2 := NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()
}

func TestReleaseLeavesForeignLockAlone(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(dataDir, LockFile)

	lock, err := acquireLock(dataDir)
	require.NoError(t, err)

	// Simulate another process replacing the lock.
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"other","pid":1}`), 0o644))

	require.NoError(t, lock.release())

	_, err = os.Stat(path)
	assert.NoError(t, err, "a foreign lock must not be removed")
}

func TestReleaseLeavesUnparseableLockAlone(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(dataDir, LockFile)

	lock, err := acquireLock(dataDir)
	require.NoError(t, err)

	// A lock file we cannot read as ours may belong to someone else.
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	require.NoError(t, lock.release())

	_, err = os.Stat(path)
	assert.NoError(t, err, "an unreadable lock must not be removed")
}
