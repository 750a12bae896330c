package component

import "github.com/lixenwraith/sacrifices/vmath"

// Ally waits in place to be rescued; it cannot be harmed
type Ally struct {
	Pos               vmath.Vec2F
	Radius            float64
	SacrificeRequired bool
	Rescued           bool
}
