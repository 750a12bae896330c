package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit       SoundType = iota // Unshielded enemy contact
	SoundBlock                      // Shield absorbed a hit
	SoundRescue                     // Free rescue
	SoundSacrifice                  // Rescue paid with a heart
	SoundHeal                       // Heart pickup
	SoundShield                     // Shield raised
	SoundDenied                     // Action refused for lack of hearts
	SoundGameOver                   // Everyone down
	soundTypeCount
)

var soundNames = [...]string{
	SoundHit:       "hit",
	SoundBlock:     "block",
	SoundRescue:    "rescue",
	SoundSacrifice: "sacrifice",
	SoundHeal:      "heal",
	SoundShield:    "shield",
	SoundDenied:    "denied",
	SoundGameOver:  "game_over",
}

func (s SoundType) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// ErrAudioDisabled is returned by Initialize when audio is switched off
var ErrAudioDisabled = errors.New("audio disabled")
