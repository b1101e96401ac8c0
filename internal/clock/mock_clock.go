package clock

import (
	"sync"
	"time"
)

// Mock implements Clock for testing with a manually advanced time
type Mock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMock creates a mock clock fixed at the given time
func NewMock(now time.Time) *Mock {
	return &Mock{now: now}
}

// Now returns the mock's current time
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the mock clock forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Set pins the mock clock to a specific time
func (m *Mock) Set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}
