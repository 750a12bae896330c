package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume when config leaves it unset
	AudioDefaultVolume = 0.6
)

// Hit Sound
const (
	HitSoundDuration = 180 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 120 * time.Millisecond
	HitSoundFreq     = 110.0
)

// Block Sound
const (
	BlockSoundDuration = 90 * time.Millisecond
	BlockSoundAttack   = 2 * time.Millisecond
	BlockSoundRelease  = 60 * time.Millisecond
	BlockSoundFreq     = 660.0
)

// Rescue Sound (two-note chime, sacrifice rescue plays it a fourth lower)
const (
	RescueSoundNote1Duration = 70 * time.Millisecond
	RescueSoundNote2Duration = 180 * time.Millisecond
	RescueSoundAttack        = 3 * time.Millisecond
	RescueSoundNote1Release  = 40 * time.Millisecond
	RescueSoundNote2Release  = 150 * time.Millisecond
	RescueSoundNote1Freq     = 987.77
	RescueSoundNote2Freq     = 1318.51
	SacrificeSoundRatio      = 0.75
)

// Heal Sound
const (
	HealSoundDuration        = 400 * time.Millisecond
	HealSoundAttack          = 5 * time.Millisecond
	HealSoundFundamentalFreq = 880.0
	HealSoundFundamentalRel  = 350 * time.Millisecond
	HealSoundOvertoneRel     = 200 * time.Millisecond
)

// Shield Sound
const (
	ShieldSoundDuration = 250 * time.Millisecond
	ShieldSoundAttack   = 60 * time.Millisecond
	ShieldSoundRelease  = 150 * time.Millisecond
)

// Game Over Sound
const (
	GameOverSoundNoteDuration = 220 * time.Millisecond
	GameOverSoundRelease      = 180 * time.Millisecond
)

// Denied Sound (shield or sacrifice rescue without a heart)
const (
	DeniedSoundDuration = 150 * time.Millisecond
	DeniedSoundAttack   = 5 * time.Millisecond
	DeniedSoundRelease  = 80 * time.Millisecond
	DeniedSoundFreq     = 100.0
)

// CueCooldown is the minimum gap between two plays of the same cue;
// contact rules report every tick while entities overlap
const CueCooldown = 150 * time.Millisecond
