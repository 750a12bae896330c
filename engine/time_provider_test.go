package engine

import (
	"math"
	"testing"
	"time"
)

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(1500 * time.Millisecond)
	expected := startTime.Add(1500 * time.Millisecond)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}

	mock.AdvanceFrames(30, 60)
	expected = expected.Add(500 * time.Millisecond)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected half a second after 30 frames, got %v", now.Sub(startTime))
	}

	mock.AdvanceFrames(5, 0)
	if now := mock.Now(); !now.Equal(expected) {
		t.Error("Expected zero tick rate to leave the clock alone")
	}
}

func TestFrameClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)
	frame := time.Second / 60

	if dt := clock.Tick(frame); math.Abs(dt-frame.Seconds()) > 1e-12 {
		t.Errorf("Expected first tick to return nominal %v, got %v", frame.Seconds(), dt)
	}

	mock.Advance(50 * time.Millisecond)
	if dt := clock.Tick(frame); math.Abs(dt-0.05) > 1e-12 {
		t.Errorf("Expected 0.05 s, got %v", dt)
	}

	// No time passed: still a positive step
	if dt := clock.Tick(frame); dt <= 0 {
		t.Errorf("Expected positive dt for identical readings, got %v", dt)
	}

	// A long stall is reported as is
	mock.Advance(2 * time.Second)
	if dt := clock.Tick(frame); math.Abs(dt-2) > 1e-12 {
		t.Errorf("Expected stall of 2 s to pass through, got %v", dt)
	}

	clock.Reset()
	mock.Advance(time.Hour)
	if dt := clock.Tick(frame); math.Abs(dt-frame.Seconds()) > 1e-12 {
		t.Errorf("Expected nominal dt after reset, got %v", dt)
	}
}
