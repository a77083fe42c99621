package repository

import (
	"context"

	"biaresh/internal/errors"
)

// ErrSlotNotFound is returned by Get when the slot has never been written or was deleted
var ErrSlotNotFound = errors.New("slot not found")

// SlotRepository is durable key to document storage. Each store owns one key
// and always writes the whole document.
type SlotRepository interface {
	// Get returns the raw document, or ErrSlotNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the document stored under key
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}
