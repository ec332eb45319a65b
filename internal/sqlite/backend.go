// Package sqlite implements the SQLite storage backend for the quick action
// card store. The backend owns a single quick_actions.db file in the data
// directory and guards it with a lock file so only one process attaches at
// a time.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/spark/pkg/types"
)

// DatabaseFile is the name of the SQLite database inside the data directory.
const DatabaseFile = "quick_actions.db"

// Compile-time interface check: Backend must implement CardStore.
var _ types.CardStore = (*Backend)(nil)

// Backend implements the CardStore interface on top of SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	lock     *lockFile
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates the
// data directory if it does not exist, acquires the process lock, opens the
// database, and ensures the schema. Returns ErrAlreadyAttached if already
// attached and ErrStoreLocked if another process holds the lock.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	lock, err := acquireLock(dataDir)
	if err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		lock.release()
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		lock.release()
		return fmt.Errorf("ensuring schema: %w", err)
	}

	b.db = db
	b.config = config
	b.lock = lock
	b.attached = true
	return nil
}

// Detach releases all resources held by the backend: closes the SQLite
// connection and removes the lock file. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	if b.lock != nil {
		if err := b.lock.release(); err != nil {
			return fmt.Errorf("releasing lock: %w", err)
		}
		b.lock = nil
	}

	b.attached = false
	return nil
}
