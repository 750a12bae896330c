package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyID identifies a key independent of modifiers
// Rune is set only for tcell.KeyRune
type KeyID struct {
	Key  tcell.Key
	Rune rune
}

// Binding routes a key to a player control
type Binding struct {
	Player  int
	Control Control
}

// KeyTable maps keys to player controls
type KeyTable struct {
	bindings map[KeyID]Binding
}

// NewKeyTable creates an empty key table
func NewKeyTable() *KeyTable {
	return &KeyTable{bindings: make(map[KeyID]Binding)}
}

// Bind assigns id to b, replacing any previous binding
func (kt *KeyTable) Bind(id KeyID, b Binding) {
	kt.bindings[id] = b
}

// Lookup returns the binding for id
func (kt *KeyTable) Lookup(id KeyID) (Binding, bool) {
	b, ok := kt.bindings[id]
	return b, ok
}

// Len returns the number of bound keys
func (kt *KeyTable) Len() int {
	return len(kt.bindings)
}

// KeyOf extracts the identity of a key event
// Letters fold to lower case so Shift or Caps Lock does not unbind them
func KeyOf(ev *tcell.EventKey) KeyID {
	if ev.Key() == tcell.KeyRune {
		return runeKey(ev.Rune())
	}
	return KeyID{Key: ev.Key()}
}

func runeKey(r rune) KeyID {
	return KeyID{Key: tcell.KeyRune, Rune: unicode.ToLower(r)}
}
