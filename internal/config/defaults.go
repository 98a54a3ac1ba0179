package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Loop: LoopConfig{
			FPS:  60,
			Seed: 0,
		},
		Audio: AudioConfig{
			Enabled:  true,
			SoundDir: "sounds",
			Volume:   1.0,
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			HostKey:     ".ssh/invaders_ed25519",
			IdleTimeout: "30m",
		},
	}
}
