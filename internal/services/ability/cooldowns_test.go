package ability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xreatlabs/headsteal/internal/clock"
	"github.com/xreatlabs/headsteal/internal/domain/head"
)

func newTestCooldowns(mock *clock.Mock) *CooldownTracker {
	return NewCooldownTracker(&CooldownTrackerConfig{
		Clock:      mock,
		Enabled:    true,
		Multiplier: 1.0,
	})
}

func TestCooldownTracker_Window(t *testing.T) {
	mock := clock.NewMock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	tracker := newTestCooldowns(mock)

	desc := head.AbilityDescriptor{Type: "arrow_spread", CooldownSeconds: 3}
	tracker.Apply("player-1", desc)

	assert.True(t, tracker.IsOnCooldown("player-1", "arrow_spread"))
	assert.Equal(t, 3*time.Second, tracker.Remaining("player-1", "arrow_spread"))

	mock.Advance(1 * time.Second)
	assert.True(t, tracker.IsOnCooldown("player-1", "arrow_spread"))
	assert.Equal(t, 2*time.Second, tracker.Remaining("player-1", "arrow_spread"))

	// At exactly the expiry instant the ability is usable again
	mock.Advance(2 * time.Second)
	assert.False(t, tracker.IsOnCooldown("player-1", "arrow_spread"))
	assert.Zero(t, tracker.Remaining("player-1", "arrow_spread"))
}

func TestCooldownTracker_IsolatesPlayersAndAbilities(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCooldowns(mock)

	tracker.Apply("player-1", head.AbilityDescriptor{Type: "arrow_spread", CooldownSeconds: 3})

	assert.False(t, tracker.IsOnCooldown("player-2", "arrow_spread"))
	assert.False(t, tracker.IsOnCooldown("player-1", "sonic_boom"))
}

func TestCooldownTracker_Multiplier(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := NewCooldownTracker(&CooldownTrackerConfig{
		Clock:      mock,
		Enabled:    true,
		Multiplier: 2.0,
	})

	tracker.Apply("player-1", head.AbilityDescriptor{Type: "dash", CooldownSeconds: 5})
	assert.Equal(t, 10*time.Second, tracker.Remaining("player-1", "dash"))
}

func TestCooldownTracker_DisabledRecordsNothing(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := NewCooldownTracker(&CooldownTrackerConfig{Clock: mock, Enabled: false})

	tracker.Apply("player-1", head.AbilityDescriptor{Type: "dash", CooldownSeconds: 5})
	assert.False(t, tracker.IsOnCooldown("player-1", "dash"))
}

func TestCooldownTracker_ZeroCooldownRecordsNothing(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCooldowns(mock)

	tracker.Apply("player-1", head.AbilityDescriptor{Type: "glow", CooldownSeconds: 0})
	assert.False(t, tracker.IsOnCooldown("player-1", "glow"))
}

func TestCooldownTracker_Clear(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCooldowns(mock)

	tracker.Apply("player-1", head.AbilityDescriptor{Type: "dash", CooldownSeconds: 30})
	tracker.Clear("player-1")

	assert.False(t, tracker.IsOnCooldown("player-1", "dash"))
}

func TestCooldownTracker_Sweep(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCooldowns(mock)

	tracker.Apply("player-1", head.AbilityDescriptor{Type: "dash", CooldownSeconds: 3})
	tracker.Apply("player-1", head.AbilityDescriptor{Type: "glide", CooldownSeconds: 60})
	tracker.Apply("player-2", head.AbilityDescriptor{Type: "dash", CooldownSeconds: 3})

	mock.Advance(10 * time.Second)
	assert.Equal(t, 2, tracker.Sweep())

	// The unexpired entry survives the sweep
	assert.True(t, tracker.IsOnCooldown("player-1", "glide"))
	assert.Equal(t, 0, tracker.Sweep())
}
