package component

import (
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// RGB is a display colour tag, interpreted by the renderer
type RGB struct {
	R, G, B uint8
}

var (
	ColorPlayerOne = RGB{30, 144, 255}
	ColorPlayerTwo = RGB{50, 205, 50}
)

// Player is a controllable avatar
// Downed players stay in the world as inactive markers
type Player struct {
	Pos    vmath.Vec2F
	Radius float64
	Hearts int
	Name   string
	Color  RGB
	Shield ShieldComponent
	Alive  bool
}

// NewPlayer creates a living player with starting hearts
func NewPlayer(name string, color RGB, x, y float64) *Player {
	return &Player{
		Pos:    vmath.Vec2F{X: x, Y: y},
		Radius: parameter.PlayerRadius,
		Hearts: parameter.PlayerStartHeart,
		Name:   name,
		Color:  color,
		Alive:  true,
	}
}

// SpendHeart pays n hearts, false if the player cannot afford it
func (p *Player) SpendHeart(n int) bool {
	if n <= 0 || p.Hearts < n {
		return false
	}
	p.Hearts -= n
	return true
}

// GainHeart adds n hearts capped at MaxHearts, returns the amount actually added
func (p *Player) GainHeart(n int) int {
	if n <= 0 || p.Hearts >= parameter.MaxHearts {
		return 0
	}
	before := p.Hearts
	p.Hearts += n
	if p.Hearts > parameter.MaxHearts {
		p.Hearts = parameter.MaxHearts
	}
	return p.Hearts - before
}

// TakeHit removes one heart and reports whether the hit downed the player
func (p *Player) TakeHit() bool {
	if p.Hearts > 0 {
		p.Hearts--
	}
	if p.Hearts == 0 && p.Alive {
		p.Alive = false
		return true
	}
	return false
}

// ProtectRange is the distance within which an active shield covers allies
func (p *Player) ProtectRange() float64 {
	return p.Radius * parameter.ShieldProtectFactor
}
