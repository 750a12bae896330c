package engine

import "time"

// TimeProvider supplies wall-clock readings to the frame clock and input latch
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock measures elapsed seconds between frames
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	started  bool
}

// NewFrameClock creates a frame clock over provider
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{provider: provider}
}

// Tick returns seconds since the previous call
// The first call returns fallback, the nominal frame time, since no interval exists yet
func (c *FrameClock) Tick(fallback time.Duration) float64 {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return fallback.Seconds()
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt <= 0 {
		// Identical readings still need a positive step
		return fallback.Seconds()
	}
	return dt
}

// Reset forgets the previous reading, e.g. after a pause or restart
func (c *FrameClock) Reset() {
	c.started = false
}
