package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Backend:    "tui",
		Seed:       0xC0FFEE,
		Difficulty: DifficultyNormal,
		Loop: Loop{
			TickRate:         60,
			FrameRate:        60,
			MaxFrame:         0.25,
			LingerOnGameOver: true,
		},
		Pixel: Pixel{
			Scale: 12,
			Title: "Space Invaders",
		},
		Log: Log{
			Level: "info",
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
