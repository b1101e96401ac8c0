package interfaces

//go:generate mockgen -destination=mock/mock_world.go -package=mockinterfaces -source=world.go

import (
	"time"

	"github.com/xreatlabs/headsteal/internal/domain/shared"
)

// WorldAPI is the capability the core calls through to act on players and
// the world. All methods are expected to be cheap; the host engine performs
// the actual work on its own tick.
type WorldAPI interface {
	// IsOnline reports whether the player is currently connected
	IsOnline(playerID string) bool

	// PlayerName returns the display name for a player id
	PlayerName(playerID string) (string, error)

	// PlayerWorld returns the name of the world the player is in
	PlayerWorld(playerID string) (string, error)

	// PlayerGameMode returns the player's current interaction mode
	PlayerGameMode(playerID string) (shared.GameMode, error)

	// HasPermission checks a permission node for the player
	HasPermission(playerID, permission string) bool

	// SetGameMode changes the player's interaction mode
	SetGameMode(playerID string, mode shared.GameMode) error

	// Teleport moves the player to the given location
	Teleport(playerID string, loc shared.Location) error

	// RestoreVitals refills the player's health, hunger, and saturation
	RestoreVitals(playerID string) error

	// ApplyEffect applies a stock status effect to the player
	ApplyEffect(playerID string, effect shared.EffectType, duration time.Duration, amplifier int) error

	// RemoveEffects strips the listed status effects from the player
	RemoveEffects(playerID string, effects []shared.EffectType) error

	// DropHead drops the victim's tagged revival head at the location
	DropHead(loc shared.Location, victimID, victimName, token string) error

	// GiveExperience grants experience points
	GiveExperience(playerID string, amount int) error

	// TakeExperienceLevels removes experience levels, clamping at zero
	TakeExperienceLevels(playerID string, levels int) error

	// Disconnect kicks the player with a message
	Disconnect(playerID, message string) error

	// SendMessage delivers a chat message to the player
	SendMessage(playerID, message string)

	// Broadcast delivers a chat message to every online player
	Broadcast(message string)

	// PlaySound plays a named sound for the player
	PlaySound(playerID, sound string)

	// SpawnParticles spawns a particle burst at the player
	SpawnParticles(playerID, particle string, count int)

	// SpawnLocation returns the spawn point of a world
	SpawnLocation(world string) shared.Location
}
