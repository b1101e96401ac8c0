package ability

import (
	"sync"
	"time"

	"github.com/xreatlabs/headsteal/internal/clock"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
)

// maxComboLength bounds the recorded trigger sequence per player
const maxComboLength = 10

type comboEntry struct {
	headKey     string
	triggers    []shared.TriggerKind
	lastTrigger time.Time
}

// ComboTracker records recent boss-head trigger sequences per player.
// A sequence belongs to one head; switching heads reseeds it. Sequences
// go stale once the inactivity window elapses.
type ComboTracker struct {
	mu      sync.Mutex
	clock   clock.Clock
	window  time.Duration
	entries map[string]*comboEntry
}

// ComboTrackerConfig holds configuration for the tracker
type ComboTrackerConfig struct {
	Clock  clock.Clock
	Window time.Duration
}

// NewComboTracker creates a tracker with a 5 second default window
func NewComboTracker(cfg *ComboTrackerConfig) *ComboTracker {
	t := &ComboTracker{
		clock:   clock.New(),
		window:  5 * time.Second,
		entries: make(map[string]*comboEntry),
	}
	if cfg != nil {
		if cfg.Clock != nil {
			t.clock = cfg.Clock
		}
		if cfg.Window > 0 {
			t.window = cfg.Window
		}
	}
	return t
}

// RecordTrigger appends a trigger to the player's sequence and returns the
// sequence as it stands after the append
func (t *ComboTracker) RecordTrigger(playerID, headKey string, trigger shared.TriggerKind) []shared.TriggerKind {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	entry, exists := t.entries[playerID]
	if !exists || entry.headKey != headKey || t.stale(entry, now) {
		entry = &comboEntry{headKey: headKey}
		t.entries[playerID] = entry
	}

	entry.triggers = append(entry.triggers, trigger)
	if len(entry.triggers) > maxComboLength {
		entry.triggers = entry.triggers[len(entry.triggers)-maxComboLength:]
	}
	entry.lastTrigger = now

	return append([]shared.TriggerKind(nil), entry.triggers...)
}

// Sequence returns the player's current sequence, or nil when none is live
func (t *ComboTracker) Sequence(playerID string) []shared.TriggerKind {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.entries[playerID]
	if !exists || t.stale(entry, t.clock.Now()) {
		return nil
	}
	return append([]shared.TriggerKind(nil), entry.triggers...)
}

// Clear drops the player's sequence
func (t *ComboTracker) Clear(playerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, playerID)
}

// Sweep removes stale sequences and returns how many were reclaimed
func (t *ComboTracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	reclaimed := 0
	for playerID, entry := range t.entries {
		if t.stale(entry, now) {
			delete(t.entries, playerID)
			reclaimed++
		}
	}
	return reclaimed
}

// stale is true strictly after the window elapses; a trigger landing at
// exactly the window boundary still continues the sequence
func (t *ComboTracker) stale(entry *comboEntry, now time.Time) bool {
	return now.Sub(entry.lastTrigger) > t.window
}
