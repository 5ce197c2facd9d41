package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// overrides holds the command-line values that replace config file values.
type overrides struct {
	seed       *uint32
	logLevel   string
	logFile    string
	backend    string
	difficulty string
	frameRate  int
}

// globalOverrides collects the persistent flags the user set explicitly.
func globalOverrides(cmd *cobra.Command) overrides {
	var o overrides
	if cmd.Flags().Changed("seed") {
		seed := flagSeed
		o.seed = &seed
	}
	o.logLevel = flagLogLevel
	o.logFile = flagLogFile
	return o
}

// apply writes the overrides into cfg and revalidates it.
func (o overrides) apply(cfg config.Config) (config.Config, error) {
	if o.seed != nil {
		cfg.Seed = *o.seed
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.difficulty != "" {
		cfg.Difficulty = config.DifficultyPreset(o.difficulty)
	}
	if o.frameRate != 0 {
		cfg.Loop.FrameRate = o.frameRate
	}
	return cfg, cfg.Validate()
}

// mustConfig loads the configuration and applies flag overrides, exiting on
// error.
func mustConfig(o overrides) config.Config {
	cfg, err := config.Load(flagConfig)
	if err == nil {
		cfg, err = o.apply(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newGame creates a game seeded and tuned by the configuration.
func newGame(cfg config.Config) *invaders.Game {
	opts := []invaders.Option{invaders.WithSeed(cfg.Seed)}
	if preset, ok := config.LookupPreset(cfg.Difficulty); ok {
		opts = append(opts,
			invaders.WithLives(preset.Lives),
			invaders.WithStartLevel(preset.StartLevel),
		)
	}
	return invaders.New(opts...)
}
