// Package audio plays short feedback sounds through the beep speaker.
// Audio is optional: every Play call is a no-op until Initialize succeeds.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager owns the speaker and a mixer all feedback sounds are added to
type SoundManager struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a manager; cfg may be nil for defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		config:  cfg,
		mixer:   &beep.Mixer{},
		enabled: cfg.Enabled,
	}
}

// Initialize opens the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker
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

// SetEnabled mutes or unmutes feedback
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	sm.enabled = on
	sm.mu.Unlock()
}

// ToggleEnabled flips mute state, returns true if sound is now on
func (sm *SoundManager) ToggleEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = !sm.enabled
	return sm.enabled
}

// Enabled reports whether feedback is unmuted
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Played returns how many times st was actually queued
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}

// PlayClick plays the step tick
func (sm *SoundManager) PlayClick() { sm.play(SoundClick) }

// PlayReject plays the rejection buzz
func (sm *SoundManager) PlayReject() { sm.play(SoundReject) }

// PlayBoundary plays the boundary bell
func (sm *SoundManager) PlayBoundary() { sm.play(SoundBoundary) }

func (sm *SoundManager) play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	s := GetSoundEffect(st, sm.config)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[st]++
}
