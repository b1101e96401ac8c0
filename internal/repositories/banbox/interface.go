package banbox

import (
	"context"

	"github.com/xreatlabs/headsteal/internal/domain/banbox"
)

// Repository persists ban box records. Absence of a record is authoritative:
// a deleted record means the player is alive.
type Repository interface {
	// Get retrieves the record for a player, or a NotFound error
	Get(ctx context.Context, playerID string) (*banbox.Record, error)

	// Save upserts the record
	Save(ctx context.Context, record *banbox.Record) error

	// Delete removes the record. Returns NotFound when no record exists,
	// which is what decides a revival race: exactly one caller wins.
	Delete(ctx context.Context, playerID string) error

	// GetAll loads every record. Corrupt entries are skipped, not fatal.
	GetAll(ctx context.Context) ([]*banbox.Record, error)
}
