// Package game assembles a playable session: world, players and the default rule set.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/sacrifices/component"
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/system"
	"github.com/lixenwraith/sacrifices/vmath"
)

// ErrPlayerCount is returned for a mode other than one or two players
var ErrPlayerCount = errors.New("game: player count must be 1 or 2")

// Session is one run from start until game over
type Session struct {
	ID      string
	Players int
	Started time.Time

	sim     *engine.Simulation
	spawner *system.SpawnDirector
	log     logger.Logger
}

// NewWorld builds the starting world for a mode
// One player starts at the centre; two players share the mid line at thirds
func NewWorld(players int) (*engine.World, error) {
	w := engine.NewDefaultWorld()
	midY := w.Height / 2

	switch players {
	case 1:
		w.AddPlayer(component.NewPlayer("P1", component.ColorPlayerOne, w.Width/2, midY))
	case 2:
		w.AddPlayer(component.NewPlayer("P1", component.ColorPlayerOne, w.Width/3, midY))
		w.AddPlayer(component.NewPlayer("P2", component.ColorPlayerTwo, 2*w.Width/3, midY))
	default:
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, players)
	}
	return w, nil
}

// New starts a session with a fresh ID; rng drives every spawn
func New(players int, rng vmath.Rand, log logger.Logger) (*Session, error) {
	world, err := NewWorld(players)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}

	id := uuid.NewString()
	log = log.With(logger.F("session", id))

	sim := engine.NewSimulation(world, log)
	spawner := system.RegisterDefault(sim, rng, log)

	log.Info("session started", logger.F("players", players))

	return &Session{
		ID:      id,
		Players: players,
		Started: time.Now(),
		sim:     sim,
		spawner: spawner,
		log:     log,
	}, nil
}

// Step advances the session by dt seconds
func (s *Session) Step(dt float64, inputs []engine.Input) (engine.Result, error) {
	return s.sim.Step(dt, inputs)
}

// World returns the session world for drawing between steps
func (s *Session) World() *engine.World {
	return s.sim.World()
}

// Ticks returns the number of completed steps
func (s *Session) Ticks() uint64 {
	return s.sim.TickCount()
}

// Spawner exposes the spawn accumulators for diagnostics
func (s *Session) Spawner() *system.SpawnDirector {
	return s.spawner
}

// Over reports whether every player is down
func (s *Session) Over() bool {
	return s.sim.World().GameOver
}

// Logger returns the session-tagged logger
func (s *Session) Logger() logger.Logger {
	return s.log
}
