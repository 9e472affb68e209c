package audio

import (
	"errors"

	"github.com/lixenwraith/galaga/config"
	"github.com/lixenwraith/galaga/core"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrDisabled       = errors.New("audio disabled by configuration")
)

// AudioConfig holds sound settings keyed by sound type
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// NewAudioConfig maps the file/env configuration onto sound types
// Effects missing from cfg play at full effect volume
func NewAudioConfig(cfg config.AudioConfig) *AudioConfig {
	ac := &AudioConfig{
		Enabled:       cfg.Enabled,
		MasterVolume:  cfg.MasterVolume,
		SampleRate:    cfg.SampleRate,
		EffectVolumes: make(map[core.SoundType]float64, core.SoundTypeCount),
	}

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		v, ok := cfg.EffectVolumes[st.String()]
		if !ok {
			v = 1.0
		}
		ac.EffectVolumes[st] = v
	}
	return ac
}

// Volume returns the final gain for a sound type
func (c *AudioConfig) Volume(st core.SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}
