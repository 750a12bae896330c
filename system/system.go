// Package system holds the per-tick rule sets of the simulation.
package system

import (
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/vmath"
)

// RegisterDefault adds the full rule set to sim
func RegisterDefault(sim *engine.Simulation, rng vmath.Rand, log logger.Logger) *SpawnDirector {
	spawner := NewSpawnDirector(rng, log)
	sim.AddSystem(NewActionSystem(log))
	sim.AddSystem(NewMovementSystem())
	sim.AddSystem(NewPursuitSystem())
	sim.AddSystem(spawner)
	sim.AddSystem(NewCollisionResolver(log))
	return spawner
}

func orNop(log logger.Logger) logger.Logger {
	if log == nil {
		return logger.NewNop()
	}
	return log
}
