package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

const rampTime = 5 * time.Millisecond

// SoundManager plays named cues through a shared mixer.
// It satisfies breakout.SoundPlayer.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	cues        map[string]config.SoundCue
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a manager for the given cues. Nothing is played
// until Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig, cues map[string]config.SoundCue) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		cues:  cues,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Sound builds the streamer for a named cue.
func (sm *SoundManager) Sound(name string) (beep.Streamer, bool) {
	cue, ok := sm.cues[name]
	if !ok {
		return nil, false
	}
	osc := NewOscillator(cue.Frequency, cue.Duration, ParseWave(cue.Wave), sm.rate)
	shaped := NewFade(osc, cue.Duration, rampTime, sm.rate)
	return newVolume(shaped, sm.cfg.Volume), true
}

// PlaySound queues a cue without blocking. Unknown names and an
// uninitialized speaker are ignored.
func (sm *SoundManager) PlaySound(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, ok := sm.Sound(name)
	if !ok {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
