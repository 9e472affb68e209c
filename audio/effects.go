package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/galaga/constants"
	"github.com/lixenwraith/galaga/core"
	"github.com/lixenwraith/galaga/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency glides linearly from start to end
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	noise     *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		noise:     vmath.NewFastRand(uint64(startFreq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}

	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped fixed-pitch tone
func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// Sound effect generators, all at unity gain

// CreateShootSound generates a rising two-step blip for the player's shot
func CreateShootSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ShootSoundNoteDuration
	return beep.Seq(
		note(1318.51, d, constants.ShootSoundAttack, constants.ShootSoundRelease, WaveSquare, rate),
		note(1760.0, d, constants.ShootSoundAttack, constants.ShootSoundRelease, WaveSquare, rate),
	)
}

// CreateEnemyShootSound generates a short falling zap
func CreateEnemyShootSound(rate beep.SampleRate) beep.Streamer {
	d := constants.EnemyShootSoundDuration
	sweep := NewSweep(660, 220, d, WaveSaw, rate)
	return NewEnvelope(sweep, d, constants.EnemyShootSoundAttack, constants.EnemyShootSoundRelease, rate)
}

// CreateExplosionSound generates a noise burst with a low rumble underneath
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ExplosionSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)
	rumble := NewEnvelope(NewSweep(120, 40, d, WaveSine, rate), d, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)

	return beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
}

// CreatePlayerHitSound generates a low buzz for a lost life
func CreatePlayerHitSound(rate beep.SampleRate) beep.Streamer {
	d := constants.PlayerHitSoundDuration
	buzz := note(110, d, constants.PlayerHitSoundAttack, constants.PlayerHitSoundRelease, WaveSquare, rate)
	crackle := note(0, d, constants.PlayerHitSoundAttack, constants.PlayerHitSoundRelease, WaveNoise, rate)

	return beep.Mix(
		newVolume(buzz, 0.7),
		newVolume(crackle, 0.3),
	)
}

// CreateGameOverSound generates a descending three-note phrase (C5 G4 C4)
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	d := constants.GameOverSoundNoteDuration
	a, r := constants.GameOverSoundAttack, constants.GameOverSoundRelease
	return beep.Seq(
		note(523.25, d, a, r, WaveSquare, rate),
		note(392.00, d, a, r, WaveSquare, rate),
		note(261.63, 2*d, a, 2*r, WaveSquare, rate),
	)
}

// CreateStartSound generates an ascending sine fanfare
// Returns nil if the tone generator rejects the rate
func CreateStartSound(rate beep.SampleRate) beep.Streamer {
	d := constants.StartSoundNoteDuration
	notes := make([]beep.Streamer, 0, 3)
	for _, freq := range []float64{659.25, 783.99, 1046.50} {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil
		}
		shaped := NewEnvelope(beep.Take(rate.N(d), tone), d, constants.StartSoundAttack, constants.StartSoundRelease, rate)
		notes = append(notes, shaped)
	}
	return beep.Seq(notes...)
}

// GetSoundEffect returns a fresh unity-gain streamer for the given sound type
func GetSoundEffect(soundType core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case core.SoundShoot:
		return CreateShootSound(rate)
	case core.SoundEnemyShoot:
		return CreateEnemyShootSound(rate)
	case core.SoundExplosion:
		return CreateExplosionSound(rate)
	case core.SoundPlayerHit:
		return CreatePlayerHitSound(rate)
	case core.SoundGameOver:
		return CreateGameOverSound(rate)
	case core.SoundStart:
		return CreateStartSound(rate)
	default:
		return nil
	}
}
