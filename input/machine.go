package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sacrifices/engine"
)

// Machine turns terminal key events into per-tick player inputs
// Terminals report presses and auto-repeat but never releases, so a
// direction counts as held for a short window after its last event
type Machine struct {
	keys    *KeyTable
	clock   engine.TimeProvider
	hold    time.Duration
	players []playerState
}

// NewMachine creates a machine for the given number of players
func NewMachine(keys *KeyTable, players int, clock engine.TimeProvider, hold time.Duration) *Machine {
	return &Machine{
		keys:    keys,
		clock:   clock,
		hold:    hold,
		players: make([]playerState, players),
	}
}

// Reset drops every held direction and pending press
func (m *Machine) Reset() {
	for i := range m.players {
		m.players[i].clear()
	}
}

// Process parses a terminal event and latches any player control
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	}

	b, ok := m.keys.Lookup(KeyOf(ev))
	if !ok || b.Player >= len(m.players) {
		if ev.Key() == tcell.KeyEnter {
			return Intent{Type: IntentRestart}
		}
		return Intent{}
	}

	ps := &m.players[b.Player]
	switch {
	case b.Control.IsDirection():
		ps.seen[b.Control] = m.clock.Now()
		// A new direction releases its opposite immediately
		ps.seen[b.Control.opposite()] = time.Time{}
	case b.Control == ControlRescue:
		ps.rescue = true
	case b.Control == ControlShield:
		ps.shield = true
	}
	return Intent{Type: IntentControl, Player: b.Player, Control: b.Control}
}

// Inputs returns this tick's input per player and consumes pending presses
func (m *Machine) Inputs() []engine.Input {
	now := m.clock.Now()
	inputs := make([]engine.Input, len(m.players))

	for i := range m.players {
		ps := &m.players[i]
		held := func(c Control) bool {
			t := ps.seen[c]
			return !t.IsZero() && now.Sub(t) < m.hold
		}
		inputs[i] = engine.Input{
			Up:     held(ControlUp),
			Down:   held(ControlDown),
			Left:   held(ControlLeft),
			Right:  held(ControlRight),
			Rescue: ps.rescue,
			Shield: ps.shield,
		}
		ps.rescue, ps.shield = false, false
	}
	return inputs
}
