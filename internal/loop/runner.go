// Package loop runs the fixed-timestep simulation loop: it samples a clock
// once per frame, clamps the elapsed time, drains it in whole simulation
// steps and renders once per frame through a backend.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// DefaultMaxFrame is the frame-time clamp used when none is configured.
const DefaultMaxFrame = 0.25

// Reason tells why a run ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonQuit
	ReasonGameOver
	ReasonCanceled
	ReasonClosed
)

// String returns a readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonGameOver:
		return "game over"
	case ReasonCanceled:
		return "canceled"
	case ReasonClosed:
		return "closed"
	default:
		return "none"
	}
}

// Result summarizes a finished run.
type Result struct {
	Score  int
	Level  int
	Lives  int
	Ticks  uint64 // fixed steps drained
	Frames uint64
	Reason Reason
}

// Runner owns the game and drives it through a backend.
// It is not safe for concurrent use; only the goroutine calling Frame or
// Run may touch the game.
type Runner struct {
	game    *invaders.Game
	backend registry.Backend
	clock   Clock
	logger  *log.Logger
	cfg     config.Loop

	dt       float64
	maxFrame float64
	acc      float64
	last     time.Time
	started  bool

	ticks  uint64
	frames uint64
	reason Reason
}

// Option customizes a Runner.
type Option func(*Runner)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(r *Runner) {
		r.clock = c
	}
}

// WithLogger sets the logger for run events.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a runner for game rendered through backend.
// Non-positive rates fall back to 60, a non-positive MaxFrame to DefaultMaxFrame.
func New(game *invaders.Game, backend registry.Backend, cfg config.Loop, opts ...Option) *Runner {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 60
	}

	r := &Runner{
		game:     game,
		backend:  backend,
		clock:    SystemClock{},
		logger:   log.New(io.Discard),
		cfg:      cfg,
		dt:       1 / float64(cfg.TickRate),
		maxFrame: cfg.MaxFrame,
	}
	if r.maxFrame <= 0 {
		r.maxFrame = DefaultMaxFrame
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DT returns the fixed simulation step in seconds.
func (r *Runner) DT() float64 {
	return r.dt
}

// Frame runs one frame: poll one command, apply it, drain the elapsed time
// in fixed steps, render once. It returns false when the run is over.
func (r *Runner) Frame() bool {
	if r.reason != ReasonNone {
		return false
	}

	now := r.clock.Now()
	if !r.started {
		r.last = now
		r.started = true
	}

	cmd := r.backend.PollEvent()
	if cmd == core.CommandQuit {
		r.finish(ReasonQuit)
		return false
	}
	if cmd != core.CommandNone {
		r.logger.Debug("command", "cmd", cmd)
		r.game.Handle(cmd)
	}

	elapsed := now.Sub(r.last).Seconds()
	r.last = now
	r.acc += core.ClampF(elapsed, 0, r.maxFrame)

	for r.acc >= r.dt {
		r.acc -= r.dt
		r.ticks++
		r.logEvents(r.game.Update(r.dt))
	}

	r.backend.Render(r.game)
	r.frames++

	if r.game.GameOver() && !r.cfg.LingerOnGameOver {
		r.finish(ReasonGameOver)
		return false
	}
	return true
}

// Run calls Frame until the run ends or ctx is done. Backends implementing
// registry.Driver own the loop; others are paced by a ticker at FrameRate.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if d, ok := r.backend.(registry.Driver); ok {
		err := d.Drive(func() bool {
			if ctx.Err() != nil {
				r.finish(ReasonCanceled)
				return false
			}
			return r.Frame()
		})
		r.finish(ReasonClosed)
		return r.Result(), err
	}

	ticker := time.NewTicker(time.Second / time.Duration(r.cfg.FrameRate))
	defer ticker.Stop()

	for r.Frame() {
		select {
		case <-ctx.Done():
			r.finish(ReasonCanceled)
			return r.Result(), nil
		case <-ticker.C:
		}
	}
	return r.Result(), nil
}

// Result returns the run summary so far.
func (r *Runner) Result() Result {
	return Result{
		Score:  r.game.Score(),
		Level:  r.game.Level(),
		Lives:  r.game.Lives(),
		Ticks:  r.ticks,
		Frames: r.frames,
		Reason: r.reason,
	}
}

// finish records the first reason the run ended.
func (r *Runner) finish(reason Reason) {
	if r.reason != ReasonNone {
		return
	}
	r.reason = reason
	r.logger.Info("run finished",
		"reason", reason,
		"score", r.game.Score(),
		"level", r.game.Level(),
		"ticks", r.ticks,
	)
}

func (r *Runner) logEvents(ev invaders.Events) {
	if ev == 0 {
		return
	}
	if ev.Has(invaders.EventEnemyKilled) {
		r.logger.Debug("enemy killed", "score", r.game.Score(), "alive", r.game.AliveEnemies())
	}
	if ev.Has(invaders.EventEnemyFired) {
		r.logger.Debug("enemy fired", "tick", r.game.Tick())
	}
	if ev.Has(invaders.EventPlayerHit) {
		r.logger.Info("player hit", "lives", r.game.Lives())
	}
	if ev.Has(invaders.EventLevelCleared) {
		r.logger.Info("level cleared", "level", r.game.Level(), "score", r.game.Score())
	}
	if ev.Has(invaders.EventGameOver) {
		r.logger.Info("game over",
			"invaded", ev.Has(invaders.EventInvaded),
			"score", r.game.Score(),
			"level", r.game.Level(),
		)
	}
}
