package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sacrifices/config"
)

// Named keys accepted in bindings besides single characters
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// Rune aliases for keys awkward to write as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// ParseKey converts a binding name to a key identity
func ParseKey(name string) (KeyID, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if k, ok := specialKeyNames[lower]; ok {
		return KeyID{Key: k}, nil
	}
	if r, ok := runeAliases[lower]; ok {
		return KeyID{Key: tcell.KeyRune, Rune: r}, nil
	}

	runes := []rune(name)
	if len(runes) == 1 {
		return runeKey(runes[0]), nil
	}
	return KeyID{}, fmt.Errorf("invalid key: %q (expected single character or key name)", name)
}

// LoadKeyTable builds the table for the first players binding sets
func LoadKeyTable(bindings []config.KeyBindings, players int) (*KeyTable, error) {
	if players > len(bindings) {
		return nil, fmt.Errorf("keymap: %d players but %d binding sets", players, len(bindings))
	}

	kt := NewKeyTable()
	for p := 0; p < players; p++ {
		for c, name := range bindings[p].Names() {
			id, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("keymap: player %d %s: %w", p+1, Control(c), err)
			}
			if prev, dup := kt.Lookup(id); dup {
				return nil, fmt.Errorf("keymap: %q already bound to player %d %s", name, prev.Player+1, prev.Control)
			}
			kt.Bind(id, Binding{Player: p, Control: Control(c)})
		}
	}
	return kt, nil
}
