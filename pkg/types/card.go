package types

import (
	"errors"
	"strings"
	"time"
)

// Card is a persisted quick action: a short title and the action text it
// stands for. Cards are identified by an auto-incrementing integer assigned
// by the store on creation.
type Card struct {
	CardID    int64     `json:"card_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Card validation errors.
var (
	ErrTitleEmpty   = errors.New("card title must not be empty")
	ErrContentEmpty = errors.New("card content must not be empty")
)

// Validate checks that the card carries both required fields. Whitespace-only
// values are rejected the same as empty ones.
func (c *Card) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return ErrTitleEmpty
	}
	if strings.TrimSpace(c.Content) == "" {
		return ErrContentEmpty
	}
	return nil
}
