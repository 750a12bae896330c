package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sacrifices/config"
	"github.com/lixenwraith/sacrifices/engine"
)

const testHold = 180 * time.Millisecond

func newTestMachine(t *testing.T, players int) (*Machine, *engine.MockTimeProvider) {
	t.Helper()
	kt, err := LoadKeyTable(config.DefaultKeys(), players)
	if err != nil {
		t.Fatalf("LoadKeyTable failed: %v", err)
	}
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	return NewMachine(kt, players, clock, testHold), clock
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDirectionHeldWithinWindow(t *testing.T) {
	m, clock := newTestMachine(t, 1)

	intent := m.Process(runeEvent('d'))
	if intent.Type != IntentControl || intent.Control != ControlRight || intent.Player != 0 {
		t.Fatalf("Expected P1 right, got %+v", intent)
	}

	clock.Advance(100 * time.Millisecond)
	if in := m.Inputs()[0]; !in.Right {
		t.Error("Expected right held inside window")
	}

	// Held state survives repeated reads
	if in := m.Inputs()[0]; !in.Right {
		t.Error("Expected right still held on second read")
	}

	clock.Advance(100 * time.Millisecond)
	if in := m.Inputs()[0]; in.Right {
		t.Error("Expected right released after window")
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	m, clock := newTestMachine(t, 1)

	m.Process(runeEvent('w'))
	for i := 0; i < 5; i++ {
		clock.Advance(100 * time.Millisecond)
		m.Process(runeEvent('w'))
	}
	clock.Advance(100 * time.Millisecond)
	if !m.Inputs()[0].Up {
		t.Error("Expected auto-repeat to keep up held")
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	m, _ := newTestMachine(t, 1)

	m.Process(runeEvent('a'))
	m.Process(runeEvent('d'))
	in := m.Inputs()[0]
	if in.Left || !in.Right {
		t.Errorf("Expected only right held, got %+v", in)
	}
}

func TestPressesFireOnce(t *testing.T) {
	m, _ := newTestMachine(t, 1)

	m.Process(runeEvent('q'))
	m.Process(runeEvent('e'))

	in := m.Inputs()[0]
	if !in.Shield || !in.Rescue {
		t.Fatalf("Expected shield and rescue pressed, got %+v", in)
	}
	if in = m.Inputs()[0]; in.Shield || in.Rescue {
		t.Errorf("Expected presses consumed, got %+v", in)
	}
}

func TestUppercaseFoldsToBinding(t *testing.T) {
	m, _ := newTestMachine(t, 1)

	if intent := m.Process(runeEvent('Q')); intent.Control != ControlShield {
		t.Errorf("Expected shield for Q, got %+v", intent)
	}
}

func TestTwoPlayerRouting(t *testing.T) {
	m, _ := newTestMachine(t, 2)

	m.Process(keyEvent(tcell.KeyLeft))
	m.Process(runeEvent('/'))
	m.Process(keyEvent(tcell.KeyEnter))
	m.Process(runeEvent('s'))

	inputs := m.Inputs()
	if len(inputs) != 2 {
		t.Fatalf("Expected 2 inputs, got %d", len(inputs))
	}
	if !inputs[0].Down || inputs[0].Left || inputs[0].Shield {
		t.Errorf("Expected P1 down only, got %+v", inputs[0])
	}
	if !inputs[1].Left || !inputs[1].Shield || !inputs[1].Rescue {
		t.Errorf("Expected P2 left+shield+rescue, got %+v", inputs[1])
	}
}

func TestSystemKeys(t *testing.T) {
	m, _ := newTestMachine(t, 1)

	if m.Process(keyEvent(tcell.KeyEscape)).Type != IntentQuit {
		t.Error("Expected quit on Esc")
	}
	if m.Process(keyEvent(tcell.KeyCtrlC)).Type != IntentQuit {
		t.Error("Expected quit on Ctrl+C")
	}
	if m.Process(keyEvent(tcell.KeyEnter)).Type != IntentRestart {
		t.Error("Expected restart on unbound Enter")
	}
	if m.Process(runeEvent('z')).Type != IntentNone {
		t.Error("Expected no intent for unbound key")
	}
	if m.Process(tcell.NewEventResize(80, 24)).Type != IntentResize {
		t.Error("Expected resize intent")
	}
}

func TestResetClearsLatch(t *testing.T) {
	m, _ := newTestMachine(t, 1)

	m.Process(runeEvent('w'))
	m.Process(runeEvent('e'))
	m.Reset()
	if in := m.Inputs()[0]; !in.IsZero() {
		t.Errorf("Expected empty input after reset, got %+v", in)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want KeyID
	}{
		{"w", KeyID{Key: tcell.KeyRune, Rune: 'w'}},
		{"W", KeyID{Key: tcell.KeyRune, Rune: 'w'}},
		{"/", KeyID{Key: tcell.KeyRune, Rune: '/'}},
		{"space", KeyID{Key: tcell.KeyRune, Rune: ' '}},
		{"Enter", KeyID{Key: tcell.KeyEnter}},
		{"up", KeyID{Key: tcell.KeyUp}},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}

	if _, err := ParseKey("shift"); err == nil {
		t.Error("Expected error for unknown key name")
	}
}

func TestLoadKeyTableRejectsDuplicates(t *testing.T) {
	keys := config.DefaultKeys()
	keys[1].Up = "W"
	if _, err := LoadKeyTable(keys, 2); err == nil {
		t.Error("Expected duplicate binding error")
	}
	if _, err := LoadKeyTable(keys[:1], 2); err == nil {
		t.Error("Expected error for missing binding set")
	}
}
