package repository

import (
	"context"
	"errors"
)

// ErrMsgNotFound is the message of ErrNotFound
const ErrMsgNotFound = "inventory not found"

// ErrNotFound is returned when no inventory is stored for a player
var ErrNotFound = errors.New(ErrMsgNotFound)

// Inventory defines the interface for inventory persistence.
// Inventories are stored in their encoded "~"-joined form.
type Inventory interface {
	GetInventory(ctx context.Context, playerID string) (string, error)
	UpsertInventory(ctx context.Context, playerID, encoded string) error
	DeleteInventory(ctx context.Context, playerID string) error
	Ping(ctx context.Context) error
}
