// This file implements the single-process lock on the data directory.
// The database is a plain file next to the application, so the store takes
// an exclusive lock file on Attach and removes it on Detach.
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/spark/pkg/types"
)

// LockFile is the name of the lock file inside the data directory.
const LockFile = "quick_actions.lock"

// lockRecord is the JSON content of the lock file, identifying the holder.
type lockRecord struct {
	Token     string `json:"token"`
	PID       int    `json:"pid"`
	CreatedAt string `json:"created_at"`
}

// lockFile represents a held data directory lock.
type lockFile struct {
	path  string
	token string
}

// acquireLock creates the lock file with O_EXCL. If the file already exists,
// another process holds the store and ErrStoreLocked is returned.
func acquireLock(dataDir string) (*lockFile, error) {
	path := filepath.Join(dataDir, LockFile)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, types.ErrStoreLocked
		}
		return nil, fmt.Errorf("creating lock file: %w", err)
	}

	rec := lockRecord{
		Token:     uuid.Must(uuid.NewV7()).String(),
		PID:       os.Getpid(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("marshaling lock record: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("writing lock file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("closing lock file: %w", err)
	}

	return &lockFile{path: path, token: rec.Token}, nil
}

// release removes the lock file. Only the holder's own lock is removed: if
// the file on disk carries a different token, release leaves it alone.
func (l *lockFile) release() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // already released
		}
		return fmt.Errorf("reading lock file: %w", err)
	}

	var rec lockRecord
	if err := json.Unmarshal(data, &rec); err != nil || rec.Token != l.token {
		return nil // not our lock, or not readable as ours
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing lock file: %w", err)
	}
	return nil
}
