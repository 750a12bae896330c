package component

import "github.com/lixenwraith/sacrifices/vmath"

// Enemy pursues the nearest living player
// Enemies are never destroyed, only repelled
type Enemy struct {
	Pos    vmath.Vec2F
	Radius float64
	Speed  float64 // Units per reference tick
	Alive  bool
}
