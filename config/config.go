// Package config loads application settings from a TOML file and the environment.
//
// Precedence, lowest first: built-in defaults, config file, environment,
// command-line flags (applied by the caller).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/coloradjuster/audio"
	"github.com/lixenwraith/coloradjuster/model"
)

// Environment variable names
const (
	EnvAudioEnabled = "COLORADJUSTER_AUDIO_ENABLED"
	EnvMasterVolume = "COLORADJUSTER_MASTER_VOLUME"
	EnvIconDir      = "COLORADJUSTER_ICON_DIR"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "coloradjuster.toml"

// Config is the full application configuration
type Config struct {
	Color ColorConfig `toml:"color"`
	Icons IconConfig  `toml:"icons"`
	Audio AudioConfig `toml:"audio"`
}

// ColorConfig is the initial colour
type ColorConfig struct {
	Red   int `toml:"red"`
	Green int `toml:"green"`
	Blue  int `toml:"blue"`
}

// IconConfig locates the button icon assets
type IconConfig struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

// AudioConfig controls feedback sounds
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume int                `toml:"master_volume"` // 0-100
	SampleRate   int                `toml:"sample_rate"`
	Effects      map[string]float64 `toml:"effects"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Icons: IconConfig{Dir: "./images"},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 50,
			SampleRate:   44100,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// A missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := Decode(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML into cfg, unknown keys are rejected
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parse config at %d:%d: %w", row, col, err)
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables, malformed values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	if v := getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(n, 0), 100)
		}
	}
	if v := getenv(EnvIconDir); v != "" {
		c.Icons.Dir = v
	}
}

// Validate checks ranges that cannot be clamped silently
func (c *Config) Validate() error {
	for i, v := range [3]int{c.Color.Red, c.Color.Green, c.Color.Blue} {
		if !model.InRange(v) {
			return fmt.Errorf("config: color.%s=%d: %w",
				strings.ToLower(model.Channels[i].String()), v, model.ErrOutOfRange)
		}
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return fmt.Errorf("config: audio.master_volume=%d outside 0-100", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio.sample_rate=%d must be positive", c.Audio.SampleRate)
	}
	for name := range c.Audio.Effects {
		if _, ok := soundByName(name); !ok {
			return fmt.Errorf("config: unknown audio effect %q", name)
		}
	}
	return nil
}

// AudioSettings converts to the audio package's configuration
func (c *Config) AudioSettings() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.MasterVolume) / 100.0
	ac.SampleRate = c.Audio.SampleRate
	for name, vol := range c.Audio.Effects {
		if st, ok := soundByName(name); ok {
			ac.EffectVolumes[st] = vol
		}
	}
	return ac
}

func soundByName(name string) (audio.SoundType, bool) {
	for _, st := range []audio.SoundType{audio.SoundClick, audio.SoundReject, audio.SoundBoundary} {
		if st.String() == name {
			return st, true
		}
	}
	return 0, false
}
