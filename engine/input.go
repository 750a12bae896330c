package engine

import "github.com/lixenwraith/sacrifices/vmath"

// Input is one player's resolved controls for a single tick
// Rescue and Shield are press events, directions are held state
type Input struct {
	Up, Down, Left, Right bool
	Rescue                bool
	Shield                bool
}

// Direction sums the held directions; opposite keys cancel to zero
func (in Input) Direction() vmath.Vec2F {
	var d vmath.Vec2F
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	return d
}

// IsZero reports an input with nothing pressed
func (in Input) IsZero() bool {
	return in == Input{}
}
