package soak

import (
	"fmt"

	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/parameter"
)

// Tally is the running score state checked between steps
type Tally struct {
	Score   int
	Rescued int
	Over    bool
}

// CheckInvariants reports every rule the world breaks after a step against prev
func CheckInvariants(w *engine.World, prev Tally) []string {
	var out []string

	for i, p := range w.Players {
		if p.Hearts < 0 || p.Hearts > parameter.MaxHearts {
			out = append(out, fmt.Sprintf("player %d hearts %d out of range", i, p.Hearts))
		}
		if p.Shield.Active != (p.Shield.Timer > 0) {
			out = append(out, fmt.Sprintf("player %d shield active=%v timer=%v", i, p.Shield.Active, p.Shield.Timer))
		}
		if p.Alive && (p.Pos.X < parameter.EdgeMargin || p.Pos.X > w.Width-parameter.EdgeMargin ||
			p.Pos.Y < parameter.EdgeMargin || p.Pos.Y > w.Height-parameter.EdgeMargin) {
			out = append(out, fmt.Sprintf("player %d outside play area at (%.1f, %.1f)", i, p.Pos.X, p.Pos.Y))
		}
	}

	if w.Score < prev.Score {
		out = append(out, fmt.Sprintf("score decreased %d -> %d", prev.Score, w.Score))
	}
	if w.Rescued < prev.Rescued {
		out = append(out, fmt.Sprintf("rescued decreased %d -> %d", prev.Rescued, w.Rescued))
	}
	if prev.Over && !w.GameOver {
		out = append(out, "game over reverted")
	}
	if w.GameOver == w.AnyAlive() {
		out = append(out, fmt.Sprintf("game over %v with living players %v", w.GameOver, w.AnyAlive()))
	}

	rescued := 0
	for _, a := range w.Allies {
		if a.Rescued {
			rescued++
		}
	}
	if rescued != w.Rescued {
		out = append(out, fmt.Sprintf("rescued tally %d but %d allies rescued", w.Rescued, rescued))
	}

	return out
}
