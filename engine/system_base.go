package engine

import "github.com/lixenwraith/sacrifices/parameter"

// System is a rule set run once per tick
type System interface {
	Update(world *World, tick *Tick)
	Priority() int // Lower values run first
}

// Tick carries one step's delta time and inputs, and collects emitted events
type Tick struct {
	Number uint64
	DT     float64 // Seconds since the previous tick, > 0
	Inputs []Input

	events []Event
}

// Input returns the input for player i, zero when absent
func (t *Tick) Input(i int) Input {
	if i < 0 || i >= len(t.Inputs) {
		return Input{}
	}
	return t.Inputs[i]
}

// Emit records an event for the step result
func (t *Tick) Emit(e Event) {
	t.events = append(t.events, e)
}

// Events returns events emitted so far this tick
func (t *Tick) Events() []Event {
	return t.events
}

// RefStep converts dt into reference ticks so per-tick speeds hold at any frame rate
func (t *Tick) RefStep() float64 {
	return t.DT * parameter.TickRate
}
