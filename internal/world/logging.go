// Package world provides world API adapters that are not backed by a live
// game host. The real adapter lives with the host integration.
package world

import (
	"log"
	"time"

	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

// LogWorld is a headless world adapter for maintenance runs: every action is
// logged instead of performed, and no players are ever online. Lifecycle
// operations that only touch storage work normally against it.
type LogWorld struct{}

// NewLogWorld creates a headless world adapter
func NewLogWorld() *LogWorld {
	return &LogWorld{}
}

func (w *LogWorld) IsOnline(playerID string) bool { return false }

func (w *LogWorld) PlayerName(playerID string) (string, error) {
	return "", apperrors.NotFoundf("player '%s' not reachable in headless mode", playerID)
}

func (w *LogWorld) PlayerWorld(playerID string) (string, error) {
	return "", apperrors.NotFoundf("player '%s' not reachable in headless mode", playerID)
}

func (w *LogWorld) PlayerGameMode(playerID string) (shared.GameMode, error) {
	return "", apperrors.NotFoundf("player '%s' not reachable in headless mode", playerID)
}

func (w *LogWorld) HasPermission(playerID, permission string) bool { return false }

func (w *LogWorld) SetGameMode(playerID string, mode shared.GameMode) error {
	log.Printf("world: set game mode %s for %s", mode, playerID)
	return nil
}

func (w *LogWorld) Teleport(playerID string, loc shared.Location) error {
	log.Printf("world: teleport %s to %s (%.1f, %.1f, %.1f)", playerID, loc.World, loc.X, loc.Y, loc.Z)
	return nil
}

func (w *LogWorld) RestoreVitals(playerID string) error {
	log.Printf("world: restore vitals for %s", playerID)
	return nil
}

func (w *LogWorld) ApplyEffect(playerID string, effect shared.EffectType, duration time.Duration, amplifier int) error {
	log.Printf("world: apply %s to %s for %s", effect, playerID, duration)
	return nil
}

func (w *LogWorld) RemoveEffects(playerID string, effects []shared.EffectType) error {
	log.Printf("world: remove %d effects from %s", len(effects), playerID)
	return nil
}

func (w *LogWorld) DropHead(loc shared.Location, victimID, victimName, token string) error {
	log.Printf("world: drop head of %s at %s", victimName, loc.World)
	return nil
}

func (w *LogWorld) GiveExperience(playerID string, amount int) error {
	log.Printf("world: give %d xp to %s", amount, playerID)
	return nil
}

func (w *LogWorld) TakeExperienceLevels(playerID string, levels int) error {
	log.Printf("world: take %d xp levels from %s", levels, playerID)
	return nil
}

func (w *LogWorld) Disconnect(playerID, message string) error {
	log.Printf("world: disconnect %s: %s", playerID, message)
	return nil
}

func (w *LogWorld) SendMessage(playerID, message string) {
	log.Printf("world: message %s: %s", playerID, message)
}

func (w *LogWorld) Broadcast(message string) {
	log.Printf("world: broadcast: %s", message)
}

func (w *LogWorld) PlaySound(playerID, sound string) {}

func (w *LogWorld) SpawnParticles(playerID, particle string, count int) {}

func (w *LogWorld) SpawnLocation(world string) shared.Location {
	return shared.Location{World: world, Y: 64}
}
