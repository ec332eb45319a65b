// This file provides JSONL snapshot export/import for the card table, with
// atomic writes (temp file, fsync, rename).
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mesh-intelligence/spark/pkg/types"
)

// cardRecord is the JSONL representation of one card.
type cardRecord struct {
	CardID    int64  `json:"card_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ExportCards writes all cards to a JSONL snapshot at path, one record per
// line in insertion order. The write is atomic.
func (b *Backend) ExportCards(path string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT card_id, title, content, created_at, updated_at FROM quick_actions ORDER BY card_id ASC",
	)
	if err != nil {
		return fmt.Errorf("querying cards for export: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec cardRecord
		if err := rows.Scan(&rec.CardID, &rec.Title, &rec.Content, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return fmt.Errorf("scanning card for export: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling card for export: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating cards for export: %w", err)
	}

	return writeJSONL(path, records)
}

// ImportCards restores the card table from a JSONL snapshot at path. The
// existing table contents are replaced in a single transaction; card IDs
// from the snapshot are preserved. Malformed lines are skipped.
func (b *Backend) ImportCards(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	raw, err := readJSONL(path)
	if err != nil {
		return err
	}

	var records []cardRecord
	for _, line := range raw {
		var rec cardRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue // skip malformed records
		}
		if rec.CardID <= 0 || strings.TrimSpace(rec.Title) == "" || strings.TrimSpace(rec.Content) == "" {
			continue
		}
		records = append(records, rec)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM quick_actions"); err != nil {
		return fmt.Errorf("clearing cards for import: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		createdAt := rec.CreatedAt
		if createdAt == "" {
			createdAt = now
		}
		updatedAt := rec.UpdatedAt
		if updatedAt == "" {
			updatedAt = createdAt
		}
		if _, err := tx.Exec(
			"INSERT INTO quick_actions (card_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			rec.CardID, rec.Title, rec.Content, createdAt, updatedAt,
		); err != nil {
			return fmt.Errorf("importing card %d: %w", rec.CardID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
