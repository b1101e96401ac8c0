package ability

import "sync/atomic"

// Governor is the bounded admission-control counter for ability execution.
// It is a valve, not a scheduler: rejected attempts are never queued.
type Governor struct {
	max   int64
	count atomic.Int64
}

// NewGovernor creates a governor allowing at most max concurrent executions
func NewGovernor(max int) *Governor {
	if max < 1 {
		max = 1
	}
	return &Governor{max: int64(max)}
}

// TryAcquire claims a slot, failing immediately when the limit is reached
func (g *Governor) TryAcquire() bool {
	for {
		current := g.count.Load()
		if current >= g.max {
			return false
		}
		if g.count.CompareAndSwap(current, current+1) {
			return true
		}
	}
}

// Release frees a slot. Must be called exactly once per successful
// TryAcquire; the count never goes negative.
func (g *Governor) Release() {
	if g.count.Add(-1) < 0 {
		g.count.Add(1)
	}
}

// InFlight returns the current number of held slots
func (g *Governor) InFlight() int {
	return int(g.count.Load())
}
