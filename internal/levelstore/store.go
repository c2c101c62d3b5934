package levelstore

import (
	"context"

	"github.com/google/uuid"
)

// Store persists the reforge level of each (player, item) pair.
// Item ids are canonicalized before use, so "hytale:Weapon_Sword_Iron" and
// "Weapon_Sword_Iron" share one record. A missing record reads as level 0.
type Store interface {
	Get(ctx context.Context, player uuid.UUID, itemID string) (int, error)
	// Set upserts a level; a level of 0 removes the record.
	Set(ctx context.Context, player uuid.UUID, itemID string, level int) error
	// Remove deletes a record and drops the player once nothing is left.
	Remove(ctx context.Context, player uuid.UUID, itemID string) error
	// GetAll returns a copy of every record of one player.
	GetAll(ctx context.Context, player uuid.UUID) (map[string]int, error)
	Close() error
}
