// Package config provides YAML-based configuration loading and difficulty
// presets for the invaders runtime.
package config

import (
	"errors"
	"fmt"
)

// Config is the full runtime configuration.
type Config struct {
	Backend    string           `yaml:"backend"`
	Seed       uint32           `yaml:"seed"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Loop       Loop             `yaml:"loop"`
	Pixel      Pixel            `yaml:"pixel"`
	Log        Log              `yaml:"log"`

	// Source names where the configuration was loaded from.
	Source string `yaml:"-"`
}

// Loop defines fixed-timestep loop parameters.
type Loop struct {
	TickRate         int     `yaml:"tick_rate"`
	FrameRate        int     `yaml:"frame_rate"`
	MaxFrame         float64 `yaml:"max_frame"` // seconds
	LingerOnGameOver bool    `yaml:"linger_on_game_over"`
}

// Pixel defines the window backend parameters.
type Pixel struct {
	Scale int    `yaml:"scale"`
	Title string `yaml:"title"`
}

// Log defines logger output.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for values the runtime cannot use.
func (c Config) Validate() error {
	var errs []error

	if c.Backend == "" {
		errs = append(errs, errors.New("backend must not be empty"))
	}
	if _, ok := LookupPreset(c.Difficulty); !ok {
		errs = append(errs, fmt.Errorf("unknown difficulty %q", c.Difficulty))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if c.Loop.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.frame_rate must be positive, got %d", c.Loop.FrameRate))
	}
	if c.Loop.MaxFrame < 0 {
		errs = append(errs, fmt.Errorf("loop.max_frame must not be negative, got %v", c.Loop.MaxFrame))
	}
	if c.Pixel.Scale <= 0 {
		errs = append(errs, fmt.Errorf("pixel.scale must be positive, got %d", c.Pixel.Scale))
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
