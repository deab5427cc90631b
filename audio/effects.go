package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 or below is silent
// math.Log2(0) is -Inf, so silence is explicit
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateClickSound generates a short tick for a value step
func CreateClickSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, 1200)
	if err != nil {
		// Frequency above Nyquist for a tiny sample rate; fall back to the plain oscillator
		tone = NewOscillator(float64(rate)/4, ClickDuration, WaveSine, rate)
	}
	tick := beep.Take(rate.N(ClickDuration), tone)
	shaped := NewEnvelope(tick, ClickDuration, ClickAttack, ClickRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundClick]*cfg.MasterVolume)
}

// CreateRejectSound generates a low saw buzz for reverted input
func CreateRejectSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, RejectDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, RejectDuration, RejectAttack, RejectRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundReject]*cfg.MasterVolume)
}

// CreateBoundarySound generates a short bell for hitting 0 or 255
func CreateBoundarySound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(660.0, BoundaryDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, BoundaryDuration, BoundaryAttack, BoundaryFundamentalRelease, rate)

	over := NewOscillator(1320.0, BoundaryDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, BoundaryDuration, BoundaryAttack, BoundaryOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundBoundary]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for a sound type, nil if unknown
func GetSoundEffect(st SoundType, cfg *Config) beep.Streamer {
	switch st {
	case SoundClick:
		return CreateClickSound(cfg)
	case SoundReject:
		return CreateRejectSound(cfg)
	case SoundBoundary:
		return CreateBoundarySound(cfg)
	default:
		return nil
	}
}
