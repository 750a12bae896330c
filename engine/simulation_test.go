package engine

import (
	"errors"
	"math"
	"testing"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	emit     *Event
}

func (r *recordingSystem) Priority() int { return r.priority }

func (r *recordingSystem) Update(world *World, tick *Tick) {
	*r.log = append(*r.log, r.name)
	if r.emit != nil {
		tick.Emit(*r.emit)
	}
}

type scoringSystem struct{}

func (scoringSystem) Priority() int { return 0 }

func (scoringSystem) Update(world *World, tick *Tick) {
	if tick.Input(0).Rescue {
		world.Score += 100
		world.Rescued++
	}
}

func TestSimulationRunsSystemsByPriority(t *testing.T) {
	var order []string
	sim := NewSimulation(NewDefaultWorld(), nil)
	sim.AddSystem(&recordingSystem{name: "collision", priority: 50, log: &order})
	sim.AddSystem(&recordingSystem{name: "action", priority: 10, log: &order})
	sim.AddSystem(&recordingSystem{name: "spawn", priority: 40, log: &order})
	sim.AddSystem(&recordingSystem{name: "spawn-late", priority: 40, log: &order})

	if _, err := sim.Step(1.0/60, nil); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	expected := []string{"action", "spawn", "spawn-late", "collision"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], order[i])
		}
	}
}

func TestSimulationRejectsInvalidDelta(t *testing.T) {
	var order []string
	sim := NewSimulation(NewDefaultWorld(), nil)
	sim.AddSystem(&recordingSystem{name: "any", priority: 1, log: &order})

	for _, dt := range []float64{0, -0.016, math.NaN(), math.Inf(1)} {
		if _, err := sim.Step(dt, nil); !errors.Is(err, ErrInvalidDelta) {
			t.Errorf("dt=%v: expected ErrInvalidDelta, got %v", dt, err)
		}
	}
	if len(order) != 0 {
		t.Errorf("Expected no system to run, got %v", order)
	}
	if sim.TickCount() != 0 {
		t.Errorf("Expected tick count 0, got %d", sim.TickCount())
	}
}

func TestSimulationResultDeltas(t *testing.T) {
	sim := NewSimulation(NewDefaultWorld(), nil)
	sim.AddSystem(scoringSystem{})

	res, err := sim.Step(0.016, []Input{{Rescue: true}})
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if res.ScoreDelta != 100 || res.RescuedDelta != 1 {
		t.Errorf("Expected deltas 100/1, got %d/%d", res.ScoreDelta, res.RescuedDelta)
	}

	res, _ = sim.Step(0.016, nil)
	if res.ScoreDelta != 0 || res.Score != 100 || res.Rescued != 1 {
		t.Errorf("Expected totals 100/1 with zero delta, got %+v", res)
	}
	if res.Tick != 2 {
		t.Errorf("Expected tick 2, got %d", res.Tick)
	}
}

func TestSimulationCollectsEvents(t *testing.T) {
	var order []string
	sim := NewSimulation(NewDefaultWorld(), nil)
	sim.AddSystem(&recordingSystem{name: "a", priority: 1, log: &order, emit: &Event{Type: EventPlayerHit, Player: 0, Target: 2}})
	sim.AddSystem(&recordingSystem{name: "b", priority: 2, log: &order, emit: &Event{Type: EventGameOver, Player: -1, Target: -1}})

	res, _ := sim.Step(0.016, nil)
	if len(res.Events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(res.Events))
	}
	if res.Events[0].Type != EventPlayerHit || res.Events[1].Type != EventGameOver {
		t.Errorf("Expected events in emit order, got %v", res.Events)
	}

	res, _ = sim.Step(0.016, nil)
	if CountEvents(res.Events, EventPlayerHit) != 1 {
		t.Errorf("Expected events to reset per tick, got %v", res.Events)
	}
}

func TestTickInputOutOfRange(t *testing.T) {
	tick := &Tick{Inputs: []Input{{Up: true}}}
	if !tick.Input(0).Up {
		t.Error("Expected input for player 0")
	}
	if !tick.Input(1).IsZero() || !tick.Input(-1).IsZero() {
		t.Error("Expected zero input for missing players")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventAllyRescued.String() != "ally_rescued" {
		t.Errorf("Expected ally_rescued, got %s", EventAllyRescued.String())
	}
	if EventType(999).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", EventType(999).String())
	}
}
