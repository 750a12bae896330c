package system

import (
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// ActionSystem resolves per-player press actions: shield, then rescue
type ActionSystem struct {
	log logger.Logger
}

// NewActionSystem creates a new action system
func NewActionSystem(log logger.Logger) *ActionSystem {
	return &ActionSystem{log: orNop(log)}
}

// Priority returns the system's priority
func (s *ActionSystem) Priority() int {
	return parameter.PriorityAction
}

// Update applies this tick's presses for every living player in player order
func (s *ActionSystem) Update(world *engine.World, tick *engine.Tick) {
	for i, p := range world.Players {
		if !p.Alive {
			continue
		}
		in := tick.Input(i)
		if in.Shield {
			s.activateShield(world, tick, i)
		}
		if in.Rescue {
			s.rescue(world, tick, i)
		}
	}
}

// activateShield charges a heart and (re)starts the countdown
func (s *ActionSystem) activateShield(world *engine.World, tick *engine.Tick, i int) {
	p := world.Players[i]
	if !p.SpendHeart(parameter.ShieldHeartCost) {
		tick.Emit(engine.Event{Type: engine.EventShieldRejected, Player: i, Target: -1})
		return
	}
	p.Shield.Activate(parameter.ShieldDuration)
	tick.Emit(engine.Event{Type: engine.EventShieldActivated, Player: i, Target: -1})
}

// rescue processes every pending ally in range, each paid independently
func (s *ActionSystem) rescue(world *engine.World, tick *engine.Tick, i int) {
	p := world.Players[i]
	for j, ally := range world.Allies {
		if ally.Rescued || vmath.V2FDist(p.Pos, ally.Pos) >= parameter.RescueRange {
			continue
		}

		score := parameter.RescueScore
		if ally.SacrificeRequired {
			if !p.SpendHeart(parameter.SacrificeRescueHearts) {
				tick.Emit(engine.Event{Type: engine.EventRescueDenied, Player: i, Target: j, Sacrifice: true})
				s.log.Info("rescue denied", logger.F("player", p.Name), logger.F("ally", j))
				continue
			}
			score = parameter.SacrificeRescueScore
		}

		ally.Rescued = true
		world.Score += score
		world.Rescued++
		tick.Emit(engine.Event{
			Type:      engine.EventAllyRescued,
			Player:    i,
			Target:    j,
			Score:     score,
			Sacrifice: ally.SacrificeRequired,
		})
		s.log.Debug("ally rescued",
			logger.F("player", p.Name),
			logger.F("ally", j),
			logger.F("sacrifice", ally.SacrificeRequired),
			logger.F("hearts", p.Hearts),
		)
	}
}
