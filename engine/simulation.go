package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/sacrifices/logger"
)

// ErrInvalidDelta is returned by Step for a non-positive, NaN or infinite dt
var ErrInvalidDelta = errors.New("engine: dt must be positive")

// Result summarises a completed step for the driver
type Result struct {
	Tick         uint64
	Score        int
	Rescued      int
	GameOver     bool
	ScoreDelta   int
	RescuedDelta int
	Events       []Event
}

// Simulation runs systems over a world one tick at a time
// Not safe for concurrent use; the world may be read between steps
type Simulation struct {
	world   *World
	systems []System
	log     logger.Logger
	tick    uint64
}

// NewSimulation creates a simulation over world with no systems
func NewSimulation(world *World, log logger.Logger) *Simulation {
	if log == nil {
		log = logger.NewNop()
	}
	return &Simulation{
		world: world,
		log:   log,
	}
}

// AddSystem adds a system and keeps systems ordered by priority
// Equal priorities keep insertion order
func (s *Simulation) AddSystem(system System) {
	s.systems = append(s.systems, system)

	// Stable insertion: equal priorities keep registration order
	for i := len(s.systems) - 1; i > 0; i-- {
		if s.systems[i-1].Priority() <= s.systems[i].Priority() {
			break
		}
		s.systems[i-1], s.systems[i] = s.systems[i], s.systems[i-1]
	}
}

// Systems returns the registered systems in run order
func (s *Simulation) Systems() []System {
	return s.systems
}

// World returns the simulated world for read-only use between steps
func (s *Simulation) World() *World {
	return s.world
}

// TickCount returns the number of completed steps
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

// Step advances the world by dt seconds using inputs[i] for player i
func (s *Simulation) Step(dt float64, inputs []Input) (Result, error) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return Result{}, fmt.Errorf("%w: got %v", ErrInvalidDelta, dt)
	}

	s.tick++
	tick := &Tick{
		Number: s.tick,
		DT:     dt,
		Inputs: inputs,
	}

	scoreBefore, rescuedBefore := s.world.Score, s.world.Rescued

	for _, system := range s.systems {
		system.Update(s.world, tick)
	}

	events := tick.Events()
	if CountEvents(events, EventGameOver) > 0 {
		s.log.Info("game over",
			logger.F("tick", s.tick),
			logger.F("score", s.world.Score),
			logger.F("rescued", s.world.Rescued),
		)
	}

	return Result{
		Tick:         s.tick,
		Score:        s.world.Score,
		Rescued:      s.world.Rescued,
		GameOver:     s.world.GameOver,
		ScoreDelta:   s.world.Score - scoreBefore,
		RescuedDelta: s.world.Rescued - rescuedBefore,
		Events:       events,
	}, nil
}
