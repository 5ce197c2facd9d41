// invaders is a terminal and window Space Invaders built on a deterministic
// fixed-timestep simulation.
//
// Usage:
//
//	invaders play             - Play with the configured backend
//	invaders backends         - List available render backends
//	invaders sim              - Run the simulation headlessly
//	invaders config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.invaders, ./configs)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-invaders/internal/platform/cell"
	_ "github.com/vovakirdan/tui-invaders/internal/platform/pixel"
	_ "github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint32
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal or a window",
	Long: `Space Invaders on an 80x24 playfield with interchangeable backends:
a Bubble Tea terminal UI, a tcell terminal and an Ebitengine window.

Available commands:
  play      - Play the game
  backends  - Show all render backends
  sim       - Run a headless simulation and print its snapshot
  config    - Print the effective configuration

Examples:
  invaders play
  invaders play --backend cell --difficulty hard
  invaders play --backend pixel --seed 42
  invaders sim --ticks 3600 --script "0:shoot,30:left*4"
  invaders config --config ./my-invaders.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "RNG seed (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
