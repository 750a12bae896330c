package system

import (
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// MovementSystem moves players from held directions and counts shields down
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// Update moves every living player; downed players keep position and timers
func (s *MovementSystem) Update(world *engine.World, tick *engine.Tick) {
	step := parameter.PlayerSpeed * tick.RefStep()
	minX, minY := parameter.EdgeMargin, parameter.EdgeMargin
	maxX, maxY := world.Width-parameter.EdgeMargin, world.Height-parameter.EdgeMargin

	for i, p := range world.Players {
		if !p.Alive {
			continue
		}

		// Diagonals are normalized so they are not faster than straight moves
		dir := vmath.V2FNormalize(tick.Input(i).Direction())
		p.Pos = vmath.V2FAdd(p.Pos, vmath.V2FScale(dir, step))
		p.Pos = vmath.V2FClamp(p.Pos, minX, minY, maxX, maxY)

		if p.Shield.Decay(tick.DT) {
			tick.Emit(engine.Event{Type: engine.EventShieldExpired, Player: i, Target: -1})
		}
	}
}
