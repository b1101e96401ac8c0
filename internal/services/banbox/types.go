package banbox

import (
	"context"
	"time"

	"github.com/xreatlabs/headsteal/internal/domain/banbox"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
)

// Service manages the death/ban/revival lifecycle. A player is banned when a
// record exists for them; revival removes the record.
type Service interface {
	// HandleDeath evaluates eligibility and, when eligible, bans the player
	HandleDeath(ctx context.Context, input *DeathInput) (*DeathResult, error)

	// Revive frees a banned player using their tagged revival head. Exactly
	// one concurrent caller wins.
	Revive(ctx context.Context, input *ReviveInput) (*ReviveResult, error)

	// Release frees a banned player by admin fiat, with no head, cost, or
	// reward involved
	Release(ctx context.Context, playerID string) error

	// HandleHeadDestroyed converts the ban matching the destroyed head's
	// token into a permanent ban
	HandleHeadDestroyed(ctx context.Context, token string) (*banbox.Record, error)

	// HandleLogin re-applies or resolves ban state when a player connects
	HandleLogin(ctx context.Context, playerID string) error

	// IsBanned reports whether the player currently sits in the ban box
	IsBanned(ctx context.Context, playerID string) (bool, error)

	// Get returns the player's ban record, or a NotFound error
	Get(ctx context.Context, playerID string) (*banbox.Record, error)

	// Count returns the number of active bans
	Count(ctx context.Context) (int, error)

	// ProcessAutoUnbans releases permanent bans whose window has elapsed,
	// returning how many were released
	ProcessAutoUnbans(ctx context.Context) (int, error)
}

// SkipReason says why a death did not result in a ban
type SkipReason string

const (
	SkipNone          SkipReason = ""
	SkipDisabled      SkipReason = "disabled"
	SkipWorld         SkipReason = "world_excluded"
	SkipGameMode      SkipReason = "game_mode"
	SkipBypass        SkipReason = "permission_bypass"
	SkipAlreadyBanned SkipReason = "already_banned"
)

// DeathInput describes one player death
type DeathInput struct {
	PlayerID string
	KillerID string // empty for environmental deaths
	Location shared.Location
}

// DeathResult reports whether the death produced a ban
type DeathResult struct {
	Banned    bool
	Skipped   SkipReason
	HeadToken string // set when Banned
}

// ReviveInput describes one revival attempt
type ReviveInput struct {
	VictimID  string
	ReviverID string
	Token     string // tag carried by the revival head used

	// Location is where the head was used; the victim is restored there.
	// Zero means no location is known and the world spawn is used.
	Location shared.Location
}

// ReviveResult reports a successful revival
type ReviveResult struct {
	VictimName string
	Deferred   bool // victim was offline; restore applies on their next login
	LivesSpent int
	BannedFor  time.Duration
}
