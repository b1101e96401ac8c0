// Package banbox defines the persisted record for a player trapped in the
// ban box. Absence of a record means the player is alive.
package banbox

import (
	"time"

	"github.com/xreatlabs/headsteal/internal/domain/shared"
)

// Record is the durable state for one banboxed player
type Record struct {
	PlayerID      string
	PlayerName    string
	KillerID      string // empty when death was environmental
	DeathLocation shared.Location
	BanTimestamp  time.Time
	AutoUnbanDays int
	PermanentBan  bool

	// HeadToken uniquely tags the dropped revival head so a stray player
	// head can never revive anyone
	HeadToken string

	// PendingRestore marks a revival granted while the player was offline;
	// login applies the mode/teleport restore
	PendingRestore bool
}

// AutoUnbanAt returns the moment the permanent ban lapses
func (r *Record) AutoUnbanAt() time.Time {
	return r.BanTimestamp.Add(time.Duration(r.AutoUnbanDays) * 24 * time.Hour)
}

// Expired reports whether the auto-unban window has fully elapsed at now
func (r *Record) Expired(now time.Time) bool {
	return now.Sub(r.BanTimestamp) > time.Duration(r.AutoUnbanDays)*24*time.Hour
}
