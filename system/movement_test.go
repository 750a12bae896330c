package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

func TestMovementStraightAndDiagonalSpeed(t *testing.T) {
	tests := []struct {
		name string
		in   engine.Input
	}{
		{"right", engine.Input{Right: true}},
		{"up", engine.Input{Up: true}},
		{"down left", engine.Input{Down: true, Left: true}},
		{"up right", engine.Input{Up: true, Right: true}},
	}

	want := parameter.PlayerSpeed * frame * parameter.TickRate
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayerAt(450, 300)
			w := newTestWorld(p)
			NewMovementSystem().Update(w, newTick(frame, tt.in))

			moved := vmath.V2FDist(p.Pos, vmath.Vec2F{X: 450, Y: 300})
			if math.Abs(moved-want) > 1e-9 {
				t.Errorf("Expected displacement %v, got %v", want, moved)
			}
		})
	}
}

func TestMovementOppositeKeysCancel(t *testing.T) {
	p := newPlayerAt(450, 300)
	w := newTestWorld(p)
	NewMovementSystem().Update(w, newTick(frame, engine.Input{Left: true, Right: true, Up: true, Down: true}))

	if p.Pos.X != 450 || p.Pos.Y != 300 {
		t.Errorf("Expected no movement, got %v", p.Pos)
	}
}

func TestMovementScalesWithDelta(t *testing.T) {
	p := newPlayerAt(100, 300)
	w := newTestWorld(p)
	NewMovementSystem().Update(w, newTick(0.5, engine.Input{Right: true}))

	// 4 units per reference tick, 30 reference ticks
	if math.Abs(p.Pos.X-220) > 1e-9 {
		t.Errorf("Expected x=220, got %v", p.Pos.X)
	}
}

func TestMovementClampsToInsetRectangle(t *testing.T) {
	rng := vmath.NewFastRand(7)
	minX, minY := parameter.EdgeMargin, parameter.EdgeMargin
	maxX, maxY := parameter.ScreenWidth-parameter.EdgeMargin, parameter.ScreenHeight-parameter.EdgeMargin

	for i := 0; i < 500; i++ {
		x := vmath.FloatRange(rng, -2000, 3000)
		y := vmath.FloatRange(rng, -2000, 3000)
		p := newPlayerAt(x, y)
		w := newTestWorld(p)

		NewMovementSystem().Update(w, newTick(frame))

		if p.Pos.X < minX || p.Pos.X > maxX || p.Pos.Y < minY || p.Pos.Y > maxY {
			t.Fatalf("Start (%v,%v) ended outside bounds at %v", x, y, p.Pos)
		}
	}
}

func TestMovementSkipsDownedPlayer(t *testing.T) {
	p := newPlayerAt(-50, 300)
	p.Alive = false
	p.Shield.Active = true
	p.Shield.Timer = 1
	w := newTestWorld(p)

	NewMovementSystem().Update(w, newTick(frame, engine.Input{Right: true}))

	if p.Pos.X != -50 {
		t.Errorf("Expected downed player to stay put, got %v", p.Pos)
	}
	if p.Shield.Timer != 1 {
		t.Errorf("Expected downed player's timer frozen, got %v", p.Shield.Timer)
	}
}

func TestShieldExpiresAfterDuration(t *testing.T) {
	p := newPlayerAt(450, 300)
	p.Shield.Activate(parameter.ShieldDuration)
	w := newTestWorld(p)
	mv := NewMovementSystem()

	elapsed := 0.0
	expired := 0
	for elapsed < parameter.ShieldDuration+0.1 {
		tick := newTick(frame)
		mv.Update(w, tick)
		elapsed += frame
		expired += engine.CountEvents(tick.Events(), engine.EventShieldExpired)

		if p.Shield.Active && p.Shield.Timer <= 0 {
			t.Fatalf("Shield active with timer %v at %v s", p.Shield.Timer, elapsed)
		}
	}

	if p.Shield.Active {
		t.Error("Expected shield inactive after its duration")
	}
	if expired != 1 {
		t.Errorf("Expected exactly one expiry event, got %d", expired)
	}
}
