package input

import "time"

// playerState is the latch for one player between ticks
// Directions stay held until their window lapses; presses fire once
type playerState struct {
	seen   [4]time.Time // Last event time per direction
	rescue bool
	shield bool
}

func (s *playerState) clear() {
	*s = playerState{}
}
