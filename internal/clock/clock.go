// Package clock provides an injectable time source so cooldown and ban
// timing can be tested with a fixed clock.
package clock

import "time"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// New returns a Clock backed by time.Now
func New() Clock {
	return systemClock{}
}
