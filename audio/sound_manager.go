package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/galaga/constants"
	"github.com/lixenwraith/galaga/core"
)

// SoundManager plays synthesized effects through the beep speaker
// Every method is safe to call before Initialize or after Cleanup; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cache       *soundCache
	lastPlayed  [core.SoundTypeCount]time.Time
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager for cfg
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	rate := beep.SampleRate(cfg.SampleRate)
	return &SoundManager{
		cfg:   cfg,
		rate:  rate,
		mixer: &beep.Mixer{},
		cache: newSoundCache(rate),
	}
}

// Initialize opens the speaker and starts the mixer
// Returns ErrDisabled when audio is switched off in configuration
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.rate, err)
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("Audio initialized at %d Hz", sm.rate)
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

// Enqueue schedules one effect on the mixer
func (sm *SoundManager) Enqueue(st core.SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted {
		return nil
	}

	now := time.Now()
	if st >= 0 && st < core.SoundTypeCount {
		if now.Sub(sm.lastPlayed[st]) < constants.MinSoundGap {
			return nil
		}
		sm.lastPlayed[st] = now
	}

	buf := sm.cache.get(st)
	if buf == nil {
		return fmt.Errorf("unknown sound type %v", st)
	}

	streamer := newVolume(buf.Streamer(0, buf.Len()), sm.cfg.Volume(st))

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Play schedules one effect and reports whether it was accepted
func (sm *SoundManager) Play(st core.SoundType) bool {
	return sm.Enqueue(st) == nil
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
