// Package repository defines the player registry store and its errors.
package repository

import (
	"context"

	"github.com/okian/volley/internal/domain/model"
)

// Store provides keyed access to registered players. Implementations
// must be safe for concurrent use; the ledger's single-writer section
// is enforced one layer up, in the application service.
type Store interface {
	// Register creates a player with the baseline rating.
	Register(ctx context.Context, name string) (model.Player, error)

	// Get returns the player for id.
	// Returns ErrNotFound if the player is unknown.
	Get(ctx context.Context, id string) (model.Player, error)

	// Rename updates the display name only; no derived state changes.
	Rename(ctx context.Context, id, name string) (model.Player, error)

	// Remove deletes the player record. The caller is responsible for
	// refusing removal while the player has ledger history.
	Remove(ctx context.Context, id string) error

	// List returns all players sorted by name, then id.
	List(ctx context.Context) []model.Player

	// SetRating overwrites the player's current rating. Only the
	// ledger's replay commit calls this.
	SetRating(ctx context.Context, id string, rating float64) error

	// Count returns the number of registered players.
	Count(ctx context.Context) int
}
