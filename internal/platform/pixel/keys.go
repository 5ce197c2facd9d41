package pixel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Movement repeat cadence in ebiten ticks.
const (
	repeatDelay    = 12
	repeatInterval = 4
)

// KeyState reports keyboard state for the current ebiten tick.
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	// Duration returns how many ticks k has been held, 0 if released.
	Duration(k ebiten.Key) int
}

type binding struct {
	keys   []ebiten.Key
	cmd    core.Command
	repeat bool
}

// bindings are checked in order; the first active one wins.
var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, cmd: core.CommandQuit},
	{keys: []ebiten.Key{ebiten.KeyP}, cmd: core.CommandPause},
	{keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyK}, cmd: core.CommandShoot},
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyH, ebiten.KeyA}, cmd: core.CommandMoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyL, ebiten.KeyD}, cmd: core.CommandMoveRight, repeat: true},
}

// inputState reads the live keyboard through inpututil.
type inputState struct{}

func (inputState) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (inputState) Duration(k ebiten.Key) int {
	return inpututil.KeyPressDuration(k)
}

// repeating reports whether a key held for d ticks fires this tick.
func repeating(d int) bool {
	return d > repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// pollKeys returns the command for this tick, core.CommandNone if idle.
func pollKeys(ks KeyState) core.Command {
	for _, b := range bindings {
		for _, k := range b.keys {
			if ks.JustPressed(k) {
				return b.cmd
			}
			if b.repeat && repeating(ks.Duration(k)) {
				return b.cmd
			}
		}
	}
	return core.CommandNone
}
