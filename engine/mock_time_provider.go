package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven clock for frame and input latch tests
type MockTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockTimeProvider creates a clock stopped at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceFrames moves the clock by n frames at tickRate frames per second
func (m *MockTimeProvider) AdvanceFrames(n, tickRate int) {
	if n <= 0 || tickRate <= 0 {
		return
	}
	m.Advance(time.Duration(n) * time.Second / time.Duration(tickRate))
}
