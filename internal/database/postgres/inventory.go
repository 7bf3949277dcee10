package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/netitem/internal/repository"
)

const (
	queryGetInventory = `SELECT inventory FROM player_inventories WHERE player_id = $1`

	queryUpsertInventory = `
		INSERT INTO player_inventories (player_id, inventory, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO UPDATE
		SET inventory = EXCLUDED.inventory, updated_at = EXCLUDED.updated_at`

	queryDeleteInventory = `DELETE FROM player_inventories WHERE player_id = $1`
)

// InventoryRepository stores encoded inventories in PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

var _ repository.Inventory = (*InventoryRepository)(nil)

// GetInventory returns the encoded inventory of a player
func (r *InventoryRepository) GetInventory(ctx context.Context, playerID string) (string, error) {
	var encoded string
	err := r.db.QueryRow(ctx, queryGetInventory, playerID).Scan(&encoded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
	}
	return encoded, nil
}

// UpsertInventory inserts or replaces the encoded inventory of a player
func (r *InventoryRepository) UpsertInventory(ctx context.Context, playerID, encoded string) error {
	_, err := r.db.Exec(ctx, queryUpsertInventory, playerID, encoded, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertInventoryFailed, err)
	}
	return nil
}

// DeleteInventory removes the inventory of a player
func (r *InventoryRepository) DeleteInventory(ctx context.Context, playerID string) error {
	tag, err := r.db.Exec(ctx, queryDeleteInventory, playerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteInventoryFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Ping checks the connection to the database
func (r *InventoryRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
