// Package audio synthesises the runner's sound cues with gopxl/beep.
// Audio is optional: when the speaker cannot be opened every call is a no-op.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dino/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// SoundManager plays one-shot cues for game events.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager with audio off.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. A failure leaves audio off.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences everything and turns audio off.
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

// Play starts the cue for e, if it has one.
func (sm *SoundManager) Play(e core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	cue := Cue(e)
	if cue == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
}

// Cue builds a fresh streamer for e. Events without a sound return nil.
func Cue(e core.Event) beep.Streamer {
	switch e {
	case core.EventJumped:
		return tone(sweep(440, 880), 90*time.Millisecond)
	case core.EventMilestone:
		return beep.Seq(
			tone(steady(784), 80*time.Millisecond),
			tone(steady(1047), 140*time.Millisecond),
		)
	case core.EventCrashed:
		return tone(buzz(110), 300*time.Millisecond)
	default:
		return nil
	}
}

// tone takes exactly d worth of samples from an enveloped oscillator.
func tone(wave Waveform, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	return beep.Take(n, NewToneGenerator(sampleRate, wave, n))
}

// Waveform returns the raw sample at time t (seconds) for a tone whose
// progress through its length is p in [0, 1].
type Waveform func(t, p float64) float64

func steady(freq float64) Waveform {
	return func(t, _ float64) float64 {
		return math.Sin(2 * math.Pi * freq * t)
	}
}

// sweep glides linearly from one frequency to another.
func sweep(from, to float64) Waveform {
	return func(t, p float64) float64 {
		freq := from + (to-from)*p/2
		return math.Sin(2 * math.Pi * freq * t)
	}
}

// buzz adds odd harmonics for a harsh low tone.
func buzz(freq float64) Waveform {
	return func(t, _ float64) float64 {
		return 0.6*math.Sin(2*math.Pi*freq*t) +
			0.3*math.Sin(2*math.Pi*freq*3*t) +
			0.1*math.Sin(2*math.Pi*freq*5*t)
	}
}

// ToneGenerator streams a waveform shaped by a linear attack and release.
type ToneGenerator struct {
	sr      beep.SampleRate
	wave    Waveform
	length  int
	attack  int
	release int
	pos     int
}

// NewToneGenerator creates a generator for a tone of length samples.
func NewToneGenerator(sr beep.SampleRate, wave Waveform, length int) *ToneGenerator {
	edge := sr.N(5 * time.Millisecond)
	if edge*2 > length {
		edge = length / 2
	}
	return &ToneGenerator{
		sr:      sr,
		wave:    wave,
		length:  length,
		attack:  edge,
		release: edge,
	}
}

// Envelope returns the gain at sample i.
func (g *ToneGenerator) Envelope(i int) float64 {
	switch {
	case i < 0 || i >= g.length:
		return 0
	case i < g.attack:
		return float64(i) / float64(g.attack)
	case i >= g.length-g.release:
		return float64(g.length-1-i) / float64(g.release)
	default:
		return 1
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		p := float64(g.pos) / float64(g.length)
		sample := volume * g.Envelope(g.pos) * g.wave(t, p)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
