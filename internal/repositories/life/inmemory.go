package life

import (
	"context"
	"sync"

	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the life repository
type InMemoryRepository struct {
	mu       sync.RWMutex
	balances map[string]int
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		balances: make(map[string]int),
	}
}

// Get retrieves the balance for a player
func (r *InMemoryRepository) Get(ctx context.Context, playerID string) (int, error) {
	if playerID == "" {
		return 0, apperrors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lives, exists := r.balances[playerID]
	if !exists {
		return 0, apperrors.NotFoundf("no life balance for player '%s'", playerID)
	}

	return lives, nil
}

// Set upserts the balance
func (r *InMemoryRepository) Set(ctx context.Context, playerID string, lives int) error {
	if playerID == "" {
		return apperrors.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.balances[playerID] = lives
	return nil
}

// GetAll loads every balance
func (r *InMemoryRepository) GetAll(ctx context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	balances := make(map[string]int, len(r.balances))
	for id, lives := range r.balances {
		balances[id] = lives
	}

	return balances, nil
}
