package engine

import (
	"github.com/lixenwraith/galaga/config"
	"github.com/lixenwraith/galaga/core"
)

// NewTestGameContext creates a deterministic, silent context for tests
func NewTestGameContext(highScore int) *GameContext {
	cfg := config.Default()
	cfg.Seed = 12345
	cfg.Audio.Enabled = false
	return NewGameContext(cfg, highScore)
}

// SoundRecorder is an AudioPlayer that records every request
type SoundRecorder struct {
	Played []core.SoundType
}

// Play records s and reports success
func (r *SoundRecorder) Play(s core.SoundType) bool {
	r.Played = append(r.Played, s)
	return true
}

// Count returns how many times s was requested
func (r *SoundRecorder) Count(s core.SoundType) int {
	n := 0
	for _, p := range r.Played {
		if p == s {
			n++
		}
	}
	return n
}
