package component

import "github.com/lixenwraith/sacrifices/vmath"

// HealPickup restores a heart to the first player who needs it
type HealPickup struct {
	Pos    vmath.Vec2F
	Radius float64
	Active bool
}
