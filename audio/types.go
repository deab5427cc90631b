package audio

import "time"

// SoundType represents the feedback sounds
type SoundType int

const (
	SoundClick    SoundType = iota // Value stepped
	SoundReject                    // Typed input reverted
	SoundBoundary                  // Reached or pushed against 0/255
	soundTypeCount
)

// String returns the config key for the sound
func (s SoundType) String() string {
	switch s {
	case SoundClick:
		return "click"
	case SoundReject:
		return "reject"
	case SoundBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Sound shaping
const (
	ClickDuration = 25 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 15 * time.Millisecond

	RejectDuration = 150 * time.Millisecond
	RejectAttack   = 10 * time.Millisecond
	RejectRelease  = 60 * time.Millisecond

	BoundaryDuration           = 300 * time.Millisecond
	BoundaryAttack             = 5 * time.Millisecond
	BoundaryFundamentalRelease = 250 * time.Millisecond
	BoundaryOvertoneRelease    = 150 * time.Millisecond
)

// Config holds audio settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns the built-in audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundClick:    0.4,
			SoundReject:   0.8,
			SoundBoundary: 0.6,
		},
	}
}
