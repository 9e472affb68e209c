package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/galaga/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer did not terminate")
	return nil
}

// TestOscillatorWaves verifies every wave stays within [-1, 1]
func TestOscillatorWaves(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
		freq float64
	}{
		{"sine", WaveSine, 440},
		{"square", WaveSquare, 220},
		{"saw", WaveSaw, 110},
		{"noise", WaveNoise, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(tc.freq, 50*time.Millisecond, tc.wave, testRate)

			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples, got n=%d ok=%v", n, ok)
			}

			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d channels differ", i)
				}
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got: %v", osc.Err())
			}
		})
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	for i, s := range drain(t, osc) {
		if s[0] != -1 && s[0] != 1 {
			t.Fatalf("Square sample %d should be -1 or 1, got %f", i, s[0])
		}
	}
}

func TestOscillatorNoiseVaries(t *testing.T) {
	samples := drain(t, NewOscillator(0, 10*time.Millisecond, WaveNoise, testRate))
	for i := 1; i < len(samples); i++ {
		if samples[i][0] != samples[0][0] {
			return
		}
	}
	t.Error("Expected noise samples to vary, but all were the same")
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	duration := 10 * time.Millisecond
	expected := testRate.N(duration)

	osc := NewOscillator(440, duration, WaveSine, testRate)

	samples := make([][2]float64, expected*2)
	n, _ := osc.Stream(samples)
	if n != expected {
		t.Errorf("Expected %d samples, got %d", expected, n)
	}

	n2, ok2 := osc.Stream(samples)
	if ok2 || n2 != 0 {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n2, ok2)
	}
}

// TestSweepGlides verifies a rising sweep crosses zero more often at its end
func TestSweepGlides(t *testing.T) {
	samples := drain(t, NewSweep(100, 2000, 200*time.Millisecond, WaveSine, testRate))
	half := len(samples) / 2

	crossings := func(s [][2]float64) int {
		c := 0
		for i := 1; i < len(s); i++ {
			if (s[i-1][0] < 0) != (s[i][0] < 0) {
				c++
			}
		}
		return c
	}

	first, second := crossings(samples[:half]), crossings(samples[half:])
	if second <= first {
		t.Errorf("Expected more zero crossings in the second half, got %d then %d", first, second)
	}
}

// TestEnvelopeShape verifies attack starts silent and release fades out
func TestEnvelopeShape(t *testing.T) {
	duration := 100 * time.Millisecond
	osc := NewOscillator(0, duration, WaveNoise, testRate)
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, testRate)

	samples := drain(t, env)
	if len(samples) != testRate.N(duration) {
		t.Fatalf("Expected %d samples, got %d", testRate.N(duration), len(samples))
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 1.0/float64(testRate.N(20*time.Millisecond))+1e-9 {
		t.Errorf("Expected near-silent last sample, got %f", last)
	}
}

func TestEnvelopeTruncatesLongerSource(t *testing.T) {
	osc := NewOscillator(440, time.Second, WaveSine, testRate)
	env := NewEnvelope(osc, 10*time.Millisecond, time.Millisecond, time.Millisecond, testRate)

	if got := len(drain(t, env)); got != testRate.N(10*time.Millisecond) {
		t.Errorf("Expected envelope to cut the source at %d samples, got %d", testRate.N(10*time.Millisecond), got)
	}
}

func TestEnvelopeOverlongPhases(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, testRate)
	env := NewEnvelope(osc, 10*time.Millisecond, 8*time.Millisecond, 8*time.Millisecond, testRate)

	for i, s := range drain(t, env) {
		if math.IsNaN(s[0]) || math.Abs(s[0]) > 1 {
			t.Fatalf("Sample %d invalid: %f", i, s[0])
		}
	}
}

// TestSoundEffects verifies every sound renders a finite, bounded, terminating stream
func TestSoundEffects(t *testing.T) {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, testRate)
			if s == nil {
				t.Fatal("Expected a streamer")
			}

			samples := drain(t, s)
			if len(samples) == 0 {
				t.Fatal("Expected audible samples")
			}
			if len(samples) > testRate.N(time.Second) {
				t.Errorf("Effect too long: %d samples", len(samples))
			}
			for i, smp := range samples {
				if math.IsNaN(smp[0]) || math.IsInf(smp[0], 0) || math.Abs(smp[0]) > 1.0001 {
					t.Fatalf("Sample %d invalid: %f", i, smp[0])
				}
			}
		})
	}

	if GetSoundEffect(core.SoundTypeCount, testRate) != nil {
		t.Error("Expected nil for unknown sound type")
	}
}

func TestNewVolumeSilent(t *testing.T) {
	src := NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate)
	for _, s := range drain(t, newVolume(src, 0)) {
		if s[0] != 0 {
			t.Fatalf("Expected silence at zero volume, got %f", s[0])
		}
	}

	src = NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate)
	for _, s := range drain(t, newVolume(src, 0.5)) {
		if math.Abs(math.Abs(s[0])-0.5) > 1e-9 {
			t.Fatalf("Expected half amplitude, got %f", s[0])
		}
	}
}
