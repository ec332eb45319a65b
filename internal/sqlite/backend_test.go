// Unit tests for the backend attach/detach lifecycle.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/spark/pkg/types"
)

// setupBackend creates an attached Backend over a fresh temp data directory.
func setupBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestAttachCreatesDatabaseFile(t *testing.T) {
	dataDir := t.TempDir()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: "sqlite", DataDir: dataDir}))
	defer b.Detach()

	_, err := os.Stat(filepath.Join(dataDir, DatabaseFile))
	assert.NoError(t, err, "quick_actions.db should exist after attach")
}

func TestAttachTwiceReturnsErrAlreadyAttached(t *testing.T) {
	b := setupBackend(t)

	err := b.Attach(types.Config{Backend: "sqlite", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	b := NewBackend()

	err := b.Attach(types.Config{Backend: "", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	err = b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestDetachIsIdempotent(t *testing.T) {
	b := setupBackend(t)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach())
}

func TestOperationsAfterDetachReturnErrStoreDetached(t *testing.T) {
	b := setupBackend(t)
	require.NoError(t, b.Detach())

	_, err := b.Create(&types.Card{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	_, err = b.Get(1)
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	_, err = b.List()
	assert.ErrorIs(t, err, types.ErrStoreDetached)

	assert.ErrorIs(t, b.Update(1, &types.Card{Title: "t", Content: "c"}), types.ErrStoreDetached)
	assert.ErrorIs(t, b.Delete(1), types.ErrStoreDetached)
}

func TestReattachKeepsPersistedCards(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: "sqlite", DataDir: dataDir}

	b := NewBackend()
	require.NoError(t, b.Attach(cfg))
	id, err := b.Create(&types.Card{Title: "Backup", Content: "run backup.sh"})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	// A fresh backend over the same data directory sees the card.
	b2 := NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()

	card, err := b2.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Backup", card.Title)
	assert.Equal(t, "run backup.sh", card.Content)
}
