package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/loop"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var (
	flagBackend    string
	flagDifficulty string
	flagFPS        int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game with the configured backend.

Controls:
  Left/Right, h/l, a/d  - Move
  Space/Up              - Shoot
  P                     - Pause
  Q/Esc/Ctrl+C          - Quit

Terminal size:
  tui    - at least 80x25 (playfield plus a key help line)
  cell   - at least 80x24
  pixel  - opens an 80x24 cell window scaled by pixel.scale

Difficulty options:
  easy   - 5 lives, start at level 1
  normal - 3 lives, start at level 1
  hard   - 2 lives, start at level 3

Examples:
  invaders play
  invaders play --backend cell
  invaders play --backend pixel --difficulty easy
  invaders play --fps 30 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Render backend (see 'invaders backends')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Render frame rate (0 = use config)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	o := globalOverrides(cmd)
	o.backend = flagBackend
	o.difficulty = flagDifficulty
	o.frameRate = flagFPS
	cfg := mustConfig(o)

	if !registry.Exists(cfg.Backend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", cfg.Backend)
		fmt.Fprintln(os.Stderr, "Run 'invaders backends' to see available backends.")
		os.Exit(1)
	}

	logger, closer := mustLogger(cfg.Log, terminalBackends[cfg.Backend])
	logger.Info("starting",
		"backend", cfg.Backend,
		"seed", cfg.Seed,
		"difficulty", cfg.Difficulty,
		"config", cfg.Source,
	)

	backend, err := registry.Create(cfg.Backend, registry.Options{Logger: logger, Pixel: cfg.Pixel})
	if err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error creating backend: %v\n", err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		backend.Cleanup()
		logger.Error("backend init failed", "backend", cfg.Backend, "err", err)
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := newGame(cfg)
	runner := loop.New(game, backend, cfg.Loop, loop.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	result, runErr := runner.Run(ctx)
	stop()
	backend.Cleanup()
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	printSummary(cfg, result)
}

func printSummary(cfg config.Config, r loop.Result) {
	fmt.Printf("Game ended (%s)\n", r.Reason)
	fmt.Println()
	fmt.Printf("  %-8s  %d\n", "Score", r.Score)
	fmt.Printf("  %-8s  %d\n", "Level", r.Level)
	fmt.Printf("  %-8s  %d\n", "Lives", r.Lives)
	fmt.Printf("  %-8s  %d\n", "Ticks", r.Ticks)
	fmt.Printf("  %-8s  %d\n", "Seed", cfg.Seed)
}
