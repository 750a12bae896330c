package system

import (
	"github.com/lixenwraith/sacrifices/component"
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// Edge is a screen side an enemy can enter from
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// SpawnDirector owns the per-kind spawn accumulators
type SpawnDirector struct {
	rng vmath.Rand
	log logger.Logger

	enemyTimer  float64
	allyTimer   float64
	pickupTimer float64
}

// NewSpawnDirector creates a spawn director drawing from rng
func NewSpawnDirector(rng vmath.Rand, log logger.Logger) *SpawnDirector {
	return &SpawnDirector{rng: rng, log: orNop(log)}
}

// Priority returns the system's priority
func (s *SpawnDirector) Priority() int {
	return parameter.PrioritySpawn
}

// Timers returns the enemy, ally and pickup accumulators in seconds
func (s *SpawnDirector) Timers() (enemy, ally, pickup float64) {
	return s.enemyTimer, s.allyTimer, s.pickupTimer
}

// Update advances all accumulators; an overflow spawns one entity and resets to zero
// Time beyond the interval is dropped, so a stall never produces a burst
func (s *SpawnDirector) Update(world *engine.World, tick *engine.Tick) {
	s.enemyTimer += tick.DT
	s.allyTimer += tick.DT
	s.pickupTimer += tick.DT

	if s.enemyTimer > parameter.EnemySpawnInterval {
		s.enemyTimer = 0
		world.AddEnemy(s.SpawnEnemy(world))
		s.spawned(tick, engine.EventEnemySpawned, len(world.Enemies)-1)
	}
	if s.allyTimer > parameter.AllySpawnInterval {
		s.allyTimer = 0
		world.AddAlly(s.SpawnAlly(world))
		s.spawned(tick, engine.EventAllySpawned, len(world.Allies)-1)
	}
	if s.pickupTimer > parameter.PickupSpawnInterval {
		s.pickupTimer = 0
		world.AddPickup(s.SpawnPickup(world))
		s.spawned(tick, engine.EventPickupSpawned, len(world.Pickups)-1)
	}
}

func (s *SpawnDirector) spawned(tick *engine.Tick, t engine.EventType, index int) {
	tick.Emit(engine.Event{Type: t, Player: -1, Target: index})
	s.log.Debug("spawn", logger.F("kind", t), logger.F("index", index), logger.F("tick", tick.Number))
}

// SpawnEnemy builds an enemy just outside a random edge
func (s *SpawnDirector) SpawnEnemy(world *engine.World) *component.Enemy {
	edge := Edge(s.rng.Intn(4))
	return &component.Enemy{
		Pos:    EdgePosition(edge, world.Width, world.Height, s.rng),
		Radius: float64(vmath.IntRange(s.rng, parameter.EnemyRadiusMin, parameter.EnemyRadiusMax)),
		Speed:  parameter.EnemySpeedBase + s.rng.Float64()*parameter.EnemySpeedSpread,
		Alive:  true,
	}
}

// EdgePosition places a point EnemySpawnOffset beyond edge, uniform along it
func EdgePosition(edge Edge, width, height float64, rng vmath.Rand) vmath.Vec2F {
	off := parameter.EnemySpawnOffset
	switch edge {
	case EdgeTop:
		return vmath.Vec2F{X: uniformInclusive(rng, width), Y: -off}
	case EdgeBottom:
		return vmath.Vec2F{X: uniformInclusive(rng, width), Y: height + off}
	case EdgeLeft:
		return vmath.Vec2F{X: -off, Y: uniformInclusive(rng, height)}
	default:
		return vmath.Vec2F{X: width + off, Y: uniformInclusive(rng, height)}
	}
}

// SpawnAlly builds an ally inside the ally margin
func (s *SpawnDirector) SpawnAlly(world *engine.World) *component.Ally {
	return &component.Ally{
		Pos:               insetPosition(s.rng, world, parameter.AllySpawnMargin),
		Radius:            parameter.AllyRadius,
		SacrificeRequired: s.rng.Float64() < parameter.AllySacrificeChance,
	}
}

// SpawnPickup builds an active heal pickup inside the pickup margin
func (s *SpawnDirector) SpawnPickup(world *engine.World) *component.HealPickup {
	return &component.HealPickup{
		Pos:    insetPosition(s.rng, world, parameter.PickupSpawnMargin),
		Radius: parameter.PickupRadius,
		Active: true,
	}
}

// uniformInclusive draws an integer coordinate in [0, extent]
func uniformInclusive(rng vmath.Rand, extent float64) float64 {
	return float64(vmath.IntRange(rng, 0, int(extent)))
}

// insetPosition draws integer coordinates margin units inside the play area
func insetPosition(rng vmath.Rand, world *engine.World, margin int) vmath.Vec2F {
	return vmath.Vec2F{
		X: float64(vmath.IntRange(rng, margin, int(world.Width)-margin)),
		Y: float64(vmath.IntRange(rng, margin, int(world.Height)-margin)),
	}
}
