// This file implements the card CRUD operations for the SQLite backend.
// Each operation hydrates between SQLite rows and *types.Card structs.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mesh-intelligence/spark/pkg/types"
)

// Create inserts a new card and returns its assigned ID. The card's CardID,
// CreatedAt, and UpdatedAt fields are populated on success. The insert is
// committed before Create returns.
func (b *Backend) Create(card *types.Card) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return 0, types.ErrStoreDetached
	}
	if err := card.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	res, err := b.db.Exec(
		"INSERT INTO quick_actions (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)",
		card.Title, card.Content, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting card: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted card ID: %w", err)
	}

	card.CardID = id
	card.CreatedAt = now
	card.UpdatedAt = now
	return id, nil
}

// Get retrieves a card by ID. Returns ErrInvalidID for non-positive IDs and
// ErrNotFound if no card exists with that ID.
func (b *Backend) Get(id int64) (*types.Card, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	row := b.db.QueryRow(
		"SELECT card_id, title, content, created_at, updated_at FROM quick_actions WHERE card_id = ?",
		id,
	)
	card, err := hydrateCard(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting card %d: %w", id, err)
	}
	return card, nil
}

// List returns all cards in insertion order (ascending card ID).
// Returns an empty slice, not nil, when the table is empty.
func (b *Backend) List() ([]*types.Card, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT card_id, title, content, created_at, updated_at FROM quick_actions ORDER BY card_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	cards := []*types.Card{}
	for rows.Next() {
		card, err := hydrateCard(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards: %w", err)
	}
	return cards, nil
}

// Update replaces the title and content of an existing card and bumps its
// UpdatedAt. The existence check and the update run in one transaction, so a
// missing ID leaves the store unchanged.
func (b *Backend) Update(id int64, card *types.Card) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if id <= 0 {
		return types.ErrInvalidID
	}
	if err := card.Validate(); err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow("SELECT 1 FROM quick_actions WHERE card_id = ?", id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return fmt.Errorf("checking card existence: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	if _, err := tx.Exec(
		"UPDATE quick_actions SET title = ?, content = ?, updated_at = ? WHERE card_id = ?",
		card.Title, card.Content, now.Format(time.RFC3339), id,
	); err != nil {
		return fmt.Errorf("updating card %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing card update: %w", err)
	}

	card.CardID = id
	card.UpdatedAt = now
	return nil
}

// Delete removes a card by ID. Returns ErrNotFound if no card exists with
// that ID.
func (b *Backend) Delete(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if id <= 0 {
		return types.ErrInvalidID
	}

	res, err := b.db.Exec("DELETE FROM quick_actions WHERE card_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting card %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading delete result: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// hydrateCard converts one SQLite row into a *types.Card. The scan argument
// abstracts over sql.Row and sql.Rows.
func hydrateCard(scan func(dest ...any) error) (*types.Card, error) {
	var c types.Card
	var createdAt, updatedAt string
	if err := scan(&c.CardID, &c.Title, &c.Content, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}
