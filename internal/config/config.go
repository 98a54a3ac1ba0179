// Package config loads runtime configuration for the invaders binary.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Config is the full runtime configuration.
type Config struct {
	Loop  LoopConfig  `yaml:"loop" toml:"loop"`
	Audio AudioConfig `yaml:"audio" toml:"audio"`
	Log   LogConfig   `yaml:"log" toml:"log"`
	SSH   SSHConfig   `yaml:"ssh" toml:"ssh"`
}

// LoopConfig controls the game loop cadence.
type LoopConfig struct {
	FPS  int   `yaml:"fps" toml:"fps"`
	Seed int64 `yaml:"seed" toml:"seed"` // 0 seeds from the clock
}

// AudioConfig controls cue playback.
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled" toml:"enabled"`
	SoundDir string  `yaml:"sound_dir" toml:"sound_dir"`
	Volume   float64 `yaml:"volume" toml:"volume"`
}

// LogConfig controls the logger. An empty File disables logging for local
// play, since the terminal is owned by the renderer.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// SSHConfig controls the `serve` command.
type SSHConfig struct {
	Address     string `yaml:"address" toml:"address"`
	HostKey     string `yaml:"host_key" toml:"host_key"`
	IdleTimeout string `yaml:"idle_timeout" toml:"idle_timeout"`
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Loop.FPS <= 0 {
		return fmt.Errorf("loop.fps must be positive, got %d", c.Loop.FPS)
	}
	if c.Audio.Volume < 0 {
		return fmt.Errorf("audio.volume must not be negative, got %g", c.Audio.Volume)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.SSH.Address == "" {
		return errors.New("ssh.address must not be empty")
	}
	if _, err := c.IdleTimeout(); err != nil {
		return err
	}
	return nil
}

// Runtime converts the loop section into the simulation's config.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{TickRate: c.Loop.FPS, Seed: c.Loop.Seed}
}

// LogLevel returns the parsed level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// IdleTimeout parses ssh.idle_timeout. Empty means no timeout.
func (c Config) IdleTimeout() (time.Duration, error) {
	if c.SSH.IdleTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.SSH.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("ssh.idle_timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("ssh.idle_timeout must not be negative, got %s", d)
	}
	return d, nil
}
