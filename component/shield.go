package component

// ShieldComponent is a timed damage barrier around a player
// Active implies Timer > 0; the countdown is owned by the movement system
type ShieldComponent struct {
	Active bool
	Timer  float64 // Seconds remaining
}

// Activate starts or restarts the countdown
func (s *ShieldComponent) Activate(duration float64) {
	if duration <= 0 {
		return
	}
	s.Active = true
	s.Timer = duration
}

// Decay advances the countdown by dt, returns true on the tick the shield drops
func (s *ShieldComponent) Decay(dt float64) bool {
	if !s.Active {
		return false
	}
	s.Timer -= dt
	if s.Timer <= 0 {
		s.Active = false
		s.Timer = 0
		return true
	}
	return false
}
