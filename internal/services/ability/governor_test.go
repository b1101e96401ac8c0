package ability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGovernor_EnforcesLimit(t *testing.T) {
	g := NewGovernor(2)

	assert.True(t, g.TryAcquire())
	assert.True(t, g.TryAcquire())
	assert.False(t, g.TryAcquire())
	assert.Equal(t, 2, g.InFlight())

	g.Release()
	assert.True(t, g.TryAcquire())
	assert.False(t, g.TryAcquire())
}

func TestGovernor_NeverExceedsLimitUnderContention(t *testing.T) {
	const limit = 10
	const attempts = 200

	g := NewGovernor(limit)

	var wg sync.WaitGroup
	acquired := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire() {
				acquired <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(acquired)

	held := 0
	for range acquired {
		held++
	}
	assert.Equal(t, limit, held)
	assert.Equal(t, limit, g.InFlight())
}

func TestGovernor_CountNeverGoesNegative(t *testing.T) {
	g := NewGovernor(1)

	g.Release()
	g.Release()
	assert.Equal(t, 0, g.InFlight())

	// Capacity must still be intact after stray releases
	assert.True(t, g.TryAcquire())
	assert.False(t, g.TryAcquire())
}

func TestGovernor_MinimumLimitOfOne(t *testing.T) {
	g := NewGovernor(0)

	assert.True(t, g.TryAcquire())
	assert.False(t, g.TryAcquire())
}
