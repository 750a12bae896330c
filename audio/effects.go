package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// Waveform selects the oscillator shape of a tone
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSeed keeps the shield swell identical between runs
const noiseSeed = 0x5eed

// toneShape describes one enveloped note
type toneShape struct {
	freq    float64
	wave    Waveform
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// toneStreamer renders a toneShape sample by sample and drains after its length
type toneStreamer struct {
	shape toneShape
	rate  beep.SampleRate
	noise *vmath.FastRand
	phase float64

	pos     int
	total   int
	attack  int
	release int
}

func newTone(shape toneShape, rate beep.SampleRate) *toneStreamer {
	return &toneStreamer{
		shape:   shape,
		rate:    rate,
		noise:   vmath.NewFastRand(noiseSeed),
		total:   rate.N(shape.length),
		attack:  rate.N(shape.attack),
		release: rate.N(shape.release),
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for n < len(samples) && t.pos < t.total {
		v := t.sample() * t.gain()
		samples[n][0], samples[n][1] = v, v

		t.phase += t.shape.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error { return nil }

// sample evaluates the waveform at the current phase in [-1, 1]
func (t *toneStreamer) sample() float64 {
	switch t.shape.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*t.phase - 1
	case WaveNoise:
		return t.noise.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * t.phase)
}

// gain ramps up over the attack, holds, then ramps to zero over the last release samples
func (t *toneStreamer) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1
}

// newVolume wraps s at a linear volume; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave Waveform, length, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return newTone(toneShape{freq: freq, wave: wave, length: length, attack: attack, release: release}, rate)
}

func effectVolume(cfg *AudioConfig, t SoundType) float64 {
	return cfg.EffectVolumes[t] * cfg.MasterVolume
}

// CreateHitSound generates a low saw thud
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.HitSoundFreq, WaveSaw, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	return newVolume(s, effectVolume(cfg, SoundHit))
}

// CreateBlockSound generates a short square clink
func CreateBlockSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.BlockSoundFreq, WaveSquare, parameter.BlockSoundDuration, parameter.BlockSoundAttack, parameter.BlockSoundRelease, rate)
	return newVolume(s, effectVolume(cfg, SoundBlock)*0.5)
}

// createChime generates the rising two-note rescue chime scaled by ratio
func createChime(cfg *AudioConfig, ratio float64, t SoundType) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(parameter.RescueSoundNote1Freq*ratio, WaveSquare, parameter.RescueSoundNote1Duration,
		parameter.RescueSoundAttack, parameter.RescueSoundNote1Release, rate)
	n2 := tone(parameter.RescueSoundNote2Freq*ratio, WaveSquare, parameter.RescueSoundNote2Duration,
		parameter.RescueSoundAttack, parameter.RescueSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), effectVolume(cfg, t)*0.4)
}

// CreateRescueSound generates the rescue chime
func CreateRescueSound(cfg *AudioConfig) beep.Streamer {
	return createChime(cfg, 1.0, SoundRescue)
}

// CreateSacrificeSound plays the rescue chime a fourth lower
func CreateSacrificeSound(cfg *AudioConfig) beep.Streamer {
	return createChime(cfg, parameter.SacrificeSoundRatio, SoundSacrifice)
}

// CreateHealSound generates a bell with an octave overtone
func CreateHealSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := tone(parameter.HealSoundFundamentalFreq, WaveSine, parameter.HealSoundDuration,
		parameter.HealSoundAttack, parameter.HealSoundFundamentalRel, rate)
	over := tone(parameter.HealSoundFundamentalFreq*2, WaveSine, parameter.HealSoundDuration,
		parameter.HealSoundAttack, parameter.HealSoundOvertoneRel, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundHeal))
}

// CreateShieldSound generates a soft noise swell
func CreateShieldSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(0, WaveNoise, parameter.ShieldSoundDuration, parameter.ShieldSoundAttack, parameter.ShieldSoundRelease, rate)
	return newVolume(s, effectVolume(cfg, SoundShield)*0.3)
}

// CreateDeniedSound generates a harsh low buzz
func CreateDeniedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.DeniedSoundFreq, WaveSaw, parameter.DeniedSoundDuration, parameter.DeniedSoundAttack, parameter.DeniedSoundRelease, rate)
	return newVolume(s, effectVolume(cfg, SoundDenied)*0.5)
}

// CreateGameOverSound generates a falling three-note phrase (A4, F4, C4)
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{440.0, 349.23, 261.63}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = tone(f, WaveSine, parameter.GameOverSoundNoteDuration, parameter.RescueSoundAttack, parameter.GameOverSoundRelease, rate)
	}
	return newVolume(beep.Seq(seq...), effectVolume(cfg, SoundGameOver))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundBlock:
		return CreateBlockSound(cfg)
	case SoundRescue:
		return CreateRescueSound(cfg)
	case SoundSacrifice:
		return CreateSacrificeSound(cfg)
	case SoundHeal:
		return CreateHealSound(cfg)
	case SoundShield:
		return CreateShieldSound(cfg)
	case SoundDenied:
		return CreateDeniedSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
