package system

import (
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// PursuitSystem steers every enemy at the nearest living player
// The target is recomputed each tick so a downed player is dropped immediately
type PursuitSystem struct{}

// NewPursuitSystem creates a new pursuit system
func NewPursuitSystem() *PursuitSystem {
	return &PursuitSystem{}
}

// Priority returns the system's priority
func (s *PursuitSystem) Priority() int {
	return parameter.PriorityPursuit
}

func (s *PursuitSystem) Update(world *engine.World, tick *engine.Tick) {
	ref := tick.RefStep()
	for _, e := range world.Enemies {
		target, dist, ok := world.NearestLivingPlayer(e.Pos)
		if !ok {
			// Nobody left to chase; enemies hold position
			return
		}
		if dist <= parameter.EnemyArriveDistance {
			continue
		}
		dir := vmath.V2FScale(vmath.V2FSub(target.Pos, e.Pos), 1/dist)
		e.Pos = vmath.V2FAdd(e.Pos, vmath.V2FScale(dir, e.Speed*ref))
	}
}
