package ability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xreatlabs/headsteal/internal/clock"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
)

func newTestCombos(mock *clock.Mock) *ComboTracker {
	return NewComboTracker(&ComboTrackerConfig{Clock: mock, Window: 5 * time.Second})
}

func TestComboTracker_RecordsSequence(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCombos(mock)

	tracker.RecordTrigger("player-1", "wither", shared.TriggerLeftClick)
	seq := tracker.RecordTrigger("player-1", "wither", shared.TriggerRightClick)

	assert.Equal(t, []shared.TriggerKind{shared.TriggerLeftClick, shared.TriggerRightClick}, seq)
	assert.Equal(t, seq, tracker.Sequence("player-1"))
}

func TestComboTracker_SwitchingHeadsReseeds(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCombos(mock)

	tracker.RecordTrigger("player-1", "wither", shared.TriggerLeftClick)
	seq := tracker.RecordTrigger("player-1", "warden", shared.TriggerRightClick)

	assert.Equal(t, []shared.TriggerKind{shared.TriggerRightClick}, seq)
}

func TestComboTracker_CapsLength(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCombos(mock)

	for i := 0; i < maxComboLength+5; i++ {
		tracker.RecordTrigger("player-1", "wither", shared.TriggerLeftClick)
	}
	tracker.RecordTrigger("player-1", "wither", shared.TriggerRightClick)

	seq := tracker.Sequence("player-1")
	assert.Len(t, seq, maxComboLength)
	// The oldest triggers fall off, the newest stays
	assert.Equal(t, shared.TriggerRightClick, seq[len(seq)-1])
}

func TestComboTracker_WindowBoundary(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCombos(mock)

	tracker.RecordTrigger("player-1", "wither", shared.TriggerLeftClick)

	// Exactly at the window the sequence is still live
	mock.Advance(5 * time.Second)
	assert.Len(t, tracker.Sequence("player-1"), 1)

	seq := tracker.RecordTrigger("player-1", "wither", shared.TriggerRightClick)
	assert.Len(t, seq, 2)

	// Strictly past the window it goes stale
	mock.Advance(5*time.Second + time.Millisecond)
	assert.Nil(t, tracker.Sequence("player-1"))

	seq = tracker.RecordTrigger("player-1", "wither", shared.TriggerLeftClick)
	assert.Equal(t, []shared.TriggerKind{shared.TriggerLeftClick}, seq)
}

func TestComboTracker_Clear(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCombos(mock)

	tracker.RecordTrigger("player-1", "wither", shared.TriggerLeftClick)
	tracker.Clear("player-1")

	assert.Nil(t, tracker.Sequence("player-1"))
}

func TestComboTracker_Sweep(t *testing.T) {
	mock := clock.NewMock(time.Now())
	tracker := newTestCombos(mock)

	tracker.RecordTrigger("player-1", "wither", shared.TriggerLeftClick)
	mock.Advance(3 * time.Second)
	tracker.RecordTrigger("player-2", "warden", shared.TriggerLeftClick)

	mock.Advance(4 * time.Second)
	assert.Equal(t, 1, tracker.Sweep())
	assert.Nil(t, tracker.Sequence("player-1"))
	assert.NotNil(t, tracker.Sequence("player-2"))
}
