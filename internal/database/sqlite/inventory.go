// Package sqlite provides a SQLite-backed inventory store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/netitem/internal/repository"
)

const (
	queryGetInventory = `SELECT inventory FROM player_inventories WHERE player_id = ?`

	queryUpsertInventory = `
		INSERT INTO player_inventories (player_id, inventory, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (player_id) DO UPDATE
		SET inventory = excluded.inventory, updated_at = excluded.updated_at`

	queryDeleteInventory = `DELETE FROM player_inventories WHERE player_id = ?`
)

// InventoryRepository stores encoded inventories in SQLite.
type InventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository wraps an open SQLite handle.
func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

var _ repository.Inventory = (*InventoryRepository)(nil)

func (r *InventoryRepository) GetInventory(ctx context.Context, playerID string) (string, error) {
	var encoded string
	err := r.db.QueryRowContext(ctx, queryGetInventory, playerID).Scan(&encoded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("get inventory: %w", err)
	}
	return encoded, nil
}

func (r *InventoryRepository) UpsertInventory(ctx context.Context, playerID, encoded string) error {
	if _, err := r.db.ExecContext(ctx, queryUpsertInventory, playerID, encoded, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepository) DeleteInventory(ctx context.Context, playerID string) error {
	res, err := r.db.ExecContext(ctx, queryDeleteInventory, playerID)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *InventoryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
