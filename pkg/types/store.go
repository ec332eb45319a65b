package types

import "errors"

// CardStore is the persistence contract for quick action cards. Callers
// attach to a backend, perform CRUD operations, and detach when done. The
// store exclusively owns the persisted records; every mutating call is
// durable before it returns.
type CardStore interface {
	// Attach connects the store to the backend described by config.
	// Creates the data directory if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached, and
	// ErrStoreLocked if another process holds the store.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, all operations return ErrStoreDetached.
	Detach() error

	// Create inserts a new card and returns its assigned ID. The card's
	// CardID, CreatedAt, and UpdatedAt are populated on success.
	Create(card *Card) (int64, error)

	// Get retrieves the card with the given ID.
	// Returns ErrNotFound if no card exists with that ID.
	Get(id int64) (*Card, error)

	// List returns all cards in insertion order.
	List() ([]*Card, error)

	// Update replaces the title and content of an existing card and bumps
	// its UpdatedAt. Returns ErrNotFound if the ID does not exist; the
	// store is left unchanged in that case.
	Update(id int64, card *Card) error

	// Delete removes the card with the given ID.
	// Returns ErrNotFound if no card exists with that ID.
	Delete(id int64) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrStoreLocked     = errors.New("store is locked by another process")
)

// Card operation errors.
var (
	ErrNotFound  = errors.New("card not found")
	ErrInvalidID = errors.New("invalid card ID")
)
