package life

import "context"

// Repository persists per-player life balances
type Repository interface {
	// Get retrieves the balance for a player, or a NotFound error when the
	// player has never been observed
	Get(ctx context.Context, playerID string) (int, error)

	// Set upserts the balance
	Set(ctx context.Context, playerID string, lives int) error

	// GetAll loads every balance keyed by player id
	GetAll(ctx context.Context) (map[string]int, error)
}
