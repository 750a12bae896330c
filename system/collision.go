package system

import (
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// CollisionResolver applies contact rules once every entity has moved
// Rules run in a fixed order, each over every pair in spawn order:
//  1. enemy hits player (blocked by shield)
//  2. shield repels enemies touching a pending ally
//  3. player collects heal pickup when below max hearts
//  4. game over once nobody is alive
//
// Shield state is read here, never changed
type CollisionResolver struct {
	log logger.Logger
}

// NewCollisionResolver creates a new collision resolver
func NewCollisionResolver(log logger.Logger) *CollisionResolver {
	return &CollisionResolver{log: orNop(log)}
}

// Priority returns the system's priority
func (s *CollisionResolver) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionResolver) Update(world *engine.World, tick *engine.Tick) {
	s.resolveDamage(world, tick)
	s.resolveProtection(world, tick)
	s.resolvePickups(world, tick)
	s.resolveGameOver(world, tick)
}

// resolveDamage: every overlapping enemy costs a heart, so hits stack within a tick
func (s *CollisionResolver) resolveDamage(world *engine.World, tick *engine.Tick) {
	for j, e := range world.Enemies {
		for i, p := range world.Players {
			if !p.Alive || !vmath.CirclesOverlap(e.Pos, e.Radius, p.Pos, p.Radius) {
				continue
			}
			if p.Shield.Active {
				tick.Emit(engine.Event{Type: engine.EventHitBlocked, Player: i, Target: j})
				continue
			}
			downed := p.TakeHit()
			tick.Emit(engine.Event{Type: engine.EventPlayerHit, Player: i, Target: j})
			if downed {
				tick.Emit(engine.Event{Type: engine.EventPlayerDown, Player: i, Target: j})
				s.log.Info("player down", logger.F("player", p.Name), logger.F("tick", tick.Number))
			}
		}
	}
}

// resolveProtection pushes an enemy off each pending ally it touches,
// away from the first shield covering that ally; unprotected contact is harmless
func (s *CollisionResolver) resolveProtection(world *engine.World, tick *engine.Tick) {
	ref := tick.RefStep()
	for j, e := range world.Enemies {
		for _, ally := range world.Allies {
			if ally.Rescued || !vmath.CirclesOverlap(e.Pos, e.Radius, ally.Pos, ally.Radius) {
				continue
			}
			i, ok := world.ShieldCovering(ally.Pos)
			if !ok {
				continue
			}
			away := vmath.V2FSub(e.Pos, world.Players[i].Pos)
			if vmath.V2FMagSq(away) == 0 {
				continue
			}
			e.Pos = vmath.V2FAdd(e.Pos, vmath.V2FScale(vmath.V2FNormalize(away), e.Speed*ref))
			tick.Emit(engine.Event{Type: engine.EventEnemyRepelled, Player: i, Target: j})
		}
	}
}

// resolvePickups heals living players below max; a full player leaves the pickup in place
func (s *CollisionResolver) resolvePickups(world *engine.World, tick *engine.Tick) {
	for i, p := range world.Players {
		if !p.Alive {
			continue
		}
		for k, h := range world.Pickups {
			if !h.Active || !vmath.CirclesOverlap(p.Pos, p.Radius, h.Pos, h.Radius) {
				continue
			}
			if p.GainHeart(parameter.PickupHealAmount) == 0 {
				continue
			}
			h.Active = false
			tick.Emit(engine.Event{Type: engine.EventHeartCollected, Player: i, Target: k})
		}
	}
}

func (s *CollisionResolver) resolveGameOver(world *engine.World, tick *engine.Tick) {
	if world.AnyAlive() {
		return
	}
	if world.MarkGameOver() {
		tick.Emit(engine.Event{Type: engine.EventGameOver, Player: -1, Target: -1})
	}
}
