package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/parameter"
)

// SoundManager turns simulation events into sound cues on a shared mixer
// Without Initialize it runs silent, so the game never depends on a sound device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	clock       engine.TimeProvider
	mixer       *beep.Mixer
	lastPlayed  [soundTypeCount]time.Time
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig, clock engine.TimeProvider) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		clock: clock,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue unless the same cue played within the cooldown
// Returns whether the cue was accepted
func (sm *SoundManager) Play(t SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if t < 0 || t >= soundTypeCount {
		return false
	}

	now := sm.clock.Now()
	if last := sm.lastPlayed[t]; !last.IsZero() && now.Sub(last) < parameter.CueCooldown {
		return false
	}
	sm.lastPlayed[t] = now

	if !sm.initialized {
		return true
	}

	streamer := GetSoundEffect(t, sm.cfg)
	if streamer == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// HandleEvents plays the cues for one step's events
// Returns the cues accepted, in event order
func (sm *SoundManager) HandleEvents(events []engine.Event) []SoundType {
	var played []SoundType
	for _, t := range CuesFor(events) {
		if sm.Play(t) {
			played = append(played, t)
		}
	}
	return played
}

// CuesFor maps events to cues, each cue at most once
func CuesFor(events []engine.Event) []SoundType {
	var cues []SoundType
	var seen [soundTypeCount]bool
	for _, ev := range events {
		t, ok := cueFor(ev)
		if !ok || seen[t] {
			continue
		}
		seen[t] = true
		cues = append(cues, t)
	}
	return cues
}

func cueFor(ev engine.Event) (SoundType, bool) {
	switch ev.Type {
	case engine.EventPlayerHit:
		return SoundHit, true
	case engine.EventHitBlocked:
		return SoundBlock, true
	case engine.EventAllyRescued:
		if ev.Sacrifice {
			return SoundSacrifice, true
		}
		return SoundRescue, true
	case engine.EventHeartCollected:
		return SoundHeal, true
	case engine.EventShieldActivated:
		return SoundShield, true
	case engine.EventShieldRejected, engine.EventRescueDenied:
		return SoundDenied, true
	case engine.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}
