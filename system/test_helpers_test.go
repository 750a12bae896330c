package system

import (
	"github.com/lixenwraith/sacrifices/component"
	"github.com/lixenwraith/sacrifices/engine"
)

const frame = 1.0 / 60

// scriptedRand replays fixed draws; exhausted queues return zero
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func newTestWorld(players ...*component.Player) *engine.World {
	w := engine.NewDefaultWorld()
	for _, p := range players {
		w.AddPlayer(p)
	}
	return w
}

func newPlayerAt(x, y float64) *component.Player {
	return component.NewPlayer("P1", component.ColorPlayerOne, x, y)
}

func newTick(dt float64, inputs ...engine.Input) *engine.Tick {
	return &engine.Tick{Number: 1, DT: dt, Inputs: inputs}
}

func enemyAt(x, y, radius, speed float64) *component.Enemy {
	e := &component.Enemy{Radius: radius, Speed: speed, Alive: true}
	e.Pos.X, e.Pos.Y = x, y
	return e
}

func allyAt(x, y float64, sacrifice bool) *component.Ally {
	a := &component.Ally{Radius: 12, SacrificeRequired: sacrifice}
	a.Pos.X, a.Pos.Y = x, y
	return a
}

func pickupAt(x, y float64) *component.HealPickup {
	h := &component.HealPickup{Radius: 10, Active: true}
	h.Pos.X, h.Pos.Y = x, y
	return h
}
