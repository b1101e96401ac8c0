package banbox

import (
	"context"
	"sync"

	"github.com/xreatlabs/headsteal/internal/domain/banbox"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the ban box repository.
// Useful for testing and store-less hosts.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*banbox.Record
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string]*banbox.Record),
	}
}

// Get retrieves the record for a player
func (r *InMemoryRepository) Get(ctx context.Context, playerID string) (*banbox.Record, error) {
	if playerID == "" {
		return nil, apperrors.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[playerID]
	if !exists {
		return nil, apperrors.NotFoundf("player '%s' is not banboxed", playerID)
	}

	// Return a copy to avoid external modifications
	recordCopy := *record
	return &recordCopy, nil
}

// Save upserts the record
func (r *InMemoryRepository) Save(ctx context.Context, record *banbox.Record) error {
	if record == nil {
		return apperrors.InvalidArgument("record cannot be nil")
	}
	if record.PlayerID == "" {
		return apperrors.InvalidArgument("record player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	recordCopy := *record
	r.records[record.PlayerID] = &recordCopy

	return nil
}

// Delete removes the record; exactly one concurrent caller succeeds
func (r *InMemoryRepository) Delete(ctx context.Context, playerID string) error {
	if playerID == "" {
		return apperrors.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[playerID]; !exists {
		return apperrors.NotFoundf("player '%s' is not banboxed", playerID)
	}

	delete(r.records, playerID)
	return nil
}

// GetAll loads every record
func (r *InMemoryRepository) GetAll(ctx context.Context) ([]*banbox.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*banbox.Record, 0, len(r.records))
	for _, record := range r.records {
		recordCopy := *record
		records = append(records, &recordCopy)
	}

	return records, nil
}
