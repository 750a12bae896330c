package engine

import (
	"github.com/lixenwraith/sacrifices/component"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// World owns every entity of a session plus the running tallies
// Slices keep spawn order, which is the iteration order of every rule
// Renderers read it between steps only
type World struct {
	Width, Height float64

	Players []*component.Player
	Enemies []*component.Enemy
	Allies  []*component.Ally
	Pickups []*component.HealPickup

	Score    int
	Rescued  int
	GameOver bool
}

// NewWorld creates an empty world with the given play area
func NewWorld(width, height float64) *World {
	return &World{
		Width:  width,
		Height: height,
	}
}

// NewDefaultWorld creates an empty world with the standard play area
func NewDefaultWorld() *World {
	return NewWorld(parameter.ScreenWidth, parameter.ScreenHeight)
}

func (w *World) AddPlayer(p *component.Player)     { w.Players = append(w.Players, p) }
func (w *World) AddEnemy(e *component.Enemy)       { w.Enemies = append(w.Enemies, e) }
func (w *World) AddAlly(a *component.Ally)         { w.Allies = append(w.Allies, a) }
func (w *World) AddPickup(h *component.HealPickup) { w.Pickups = append(w.Pickups, h) }

// AnyAlive reports whether at least one player is still alive
func (w *World) AnyAlive() bool {
	for _, p := range w.Players {
		if p.Alive {
			return true
		}
	}
	return false
}

// NearestLivingPlayer returns the closest living player to pos
// Ties keep the earlier player; ok is false when nobody is alive
func (w *World) NearestLivingPlayer(pos vmath.Vec2F) (p *component.Player, dist float64, ok bool) {
	for _, candidate := range w.Players {
		if !candidate.Alive {
			continue
		}
		d := vmath.V2FDist(pos, candidate.Pos)
		if !ok || d < dist {
			p, dist, ok = candidate, d, true
		}
	}
	return p, dist, ok
}

// ShieldCovering returns the index of the first player whose active shield covers pos
func (w *World) ShieldCovering(pos vmath.Vec2F) (int, bool) {
	for i, p := range w.Players {
		if p.Shield.Active && vmath.V2FDist(p.Pos, pos) <= p.ProtectRange() {
			return i, true
		}
	}
	return -1, false
}

// MarkGameOver latches the game over flag, true only on the transition
func (w *World) MarkGameOver() bool {
	if w.GameOver {
		return false
	}
	w.GameOver = true
	return true
}

// ActivePickups counts pickups still waiting to be collected
func (w *World) ActivePickups() int {
	n := 0
	for _, h := range w.Pickups {
		if h.Active {
			n++
		}
	}
	return n
}

// PendingAllies counts allies not yet rescued
func (w *World) PendingAllies() int {
	n := 0
	for _, a := range w.Allies {
		if !a.Rescued {
			n++
		}
	}
	return n
}
