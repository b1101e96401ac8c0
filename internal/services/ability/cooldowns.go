package ability

import (
	"sync"
	"time"

	"github.com/xreatlabs/headsteal/internal/clock"
	"github.com/xreatlabs/headsteal/internal/domain/head"
)

// CooldownTracker keeps per-player, per-ability cooldown expiries. Expired
// entries are treated as absent on read and reclaimed by periodic sweeps.
type CooldownTracker struct {
	mu         sync.RWMutex
	clock      clock.Clock
	enabled    bool
	multiplier float64
	expiries   map[string]map[string]time.Time
}

// CooldownTrackerConfig holds configuration for the tracker
type CooldownTrackerConfig struct {
	Clock      clock.Clock
	Enabled    bool
	Multiplier float64
}

// NewCooldownTracker creates a tracker. A nil or zeroed config yields a
// tracker with cooldowns disabled.
func NewCooldownTracker(cfg *CooldownTrackerConfig) *CooldownTracker {
	t := &CooldownTracker{
		clock:      clock.New(),
		multiplier: 1.0,
		expiries:   make(map[string]map[string]time.Time),
	}
	if cfg != nil {
		t.enabled = cfg.Enabled
		if cfg.Clock != nil {
			t.clock = cfg.Clock
		}
		if cfg.Multiplier > 0 {
			t.multiplier = cfg.Multiplier
		}
	}
	return t
}

// IsOnCooldown reports whether the player's ability is still cooling down.
// At exactly the expiry instant the cooldown is over.
func (t *CooldownTracker) IsOnCooldown(playerID, abilityType string) bool {
	return t.Remaining(playerID, abilityType) > 0
}

// Remaining returns the time left on the cooldown, or zero if none
func (t *CooldownTracker) Remaining(playerID, abilityType string) time.Duration {
	if !t.enabled {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	expiry, exists := t.expiries[playerID][abilityType]
	if !exists {
		return 0
	}

	remaining := expiry.Sub(t.clock.Now())
	if remaining <= 0 {
		return 0
	}
	return remaining
}

// Apply starts the cooldown described by the ability descriptor. A zero
// cooldown or a disabled tracker records nothing.
func (t *CooldownTracker) Apply(playerID string, desc head.AbilityDescriptor) {
	if !t.enabled || desc.CooldownSeconds <= 0 {
		return
	}

	duration := time.Duration(float64(desc.CooldownSeconds) * t.multiplier * float64(time.Second))

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.expiries[playerID] == nil {
		t.expiries[playerID] = make(map[string]time.Time)
	}
	t.expiries[playerID][desc.Type] = t.clock.Now().Add(duration)
}

// Clear drops all cooldowns for a player
func (t *CooldownTracker) Clear(playerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.expiries, playerID)
}

// Sweep removes expired entries and returns how many were reclaimed
func (t *CooldownTracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	reclaimed := 0
	for playerID, byAbility := range t.expiries {
		for abilityType, expiry := range byAbility {
			if !expiry.After(now) {
				delete(byAbility, abilityType)
				reclaimed++
			}
		}
		if len(byAbility) == 0 {
			delete(t.expiries, playerID)
		}
	}
	return reclaimed
}
