package projectile

import "time"

// Clock abstracts wall-clock reads so fire-rate gating can be tested with a
// controlled time source.
type Clock interface {
	// Now returns the current time.
	//
	// Returns:
	//   - time.Time: the current time
	Now() time.Time
}

// systemClock reads the real wall clock.
type systemClock struct{}

var _ Clock = systemClock{}

func (systemClock) Now() time.Time {
	return time.Now()
}
