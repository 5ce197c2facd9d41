// Package pixel provides the Ebitengine window backend. Ebitengine owns the
// main loop, so the backend implements registry.Driver and calls the frame
// function from ebiten's Update.
package pixel

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "Space Invaders"

// ErrInvalidScale is returned by Init for a non-positive cell scale.
var ErrInvalidScale = errors.New("invalid scale")

func init() {
	registry.Register("pixel", "Ebitengine window", func(opts registry.Options) registry.Backend {
		return New(opts.Logger, opts.Pixel)
	})
}

// Backend renders into an Ebitengine window.
type Backend struct {
	logger *log.Logger
	scale  int
	title  string
	getenv func(string) string
	goos   string
	keys   KeyState

	ready bool
	view  invaders.View
	frame func() bool
}

// Option customizes a Backend.
type Option func(*Backend)

// WithEnv replaces the environment lookup and OS name used for the display
// check.
func WithEnv(getenv func(string) string, goos string) Option {
	return func(b *Backend) {
		b.getenv = getenv
		b.goos = goos
	}
}

// WithKeyState replaces the live keyboard.
func WithKeyState(ks KeyState) Option {
	return func(b *Backend) {
		b.keys = ks
	}
}

// New creates an uninitialized pixel backend.
func New(logger *log.Logger, cfg config.Pixel, opts ...Option) *Backend {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	b := &Backend{
		logger: logger,
		scale:  cfg.Scale,
		title:  cfg.Title,
		getenv: os.Getenv,
		goos:   runtime.GOOS,
		keys:   inputState{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// displayAvailable reports whether a window can be opened. Only X11/Wayland
// systems are checked; other platforms always have a display.
func displayAvailable(getenv func(string) string, goos string) bool {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

// Size returns the window size in pixels.
func (b *Backend) Size() (int, int) {
	return invaders.Width * b.scale, invaders.Height * b.scale
}

// Init validates the configuration and sets up the window.
func (b *Backend) Init() error {
	if b.scale <= 0 {
		return fmt.Errorf("pixel: %w %d", ErrInvalidScale, b.scale)
	}
	if !displayAvailable(b.getenv, b.goos) {
		return fmt.Errorf("pixel: %w: DISPLAY and WAYLAND_DISPLAY are unset", registry.ErrNoDisplay)
	}

	w, h := b.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(b.title)
	b.ready = true

	b.logger.Debug("pixel backend ready", "width", w, "height", h, "scale", b.scale)
	return nil
}

// Drive runs the Ebitengine loop, calling frame once per ebiten tick until
// it returns false or the window is closed.
func (b *Backend) Drive(frame func() bool) error {
	if !b.ready {
		return errors.New("pixel: Drive called before Init")
	}
	b.frame = frame
	if err := ebiten.RunGame(&window{b: b}); err != nil {
		return fmt.Errorf("pixel: %w", err)
	}
	return nil
}

// Render stores the view for the next Draw.
func (b *Backend) Render(v invaders.View) {
	b.view = v
}

// PollEvent returns the command for the current ebiten tick.
func (b *Backend) PollEvent() core.Command {
	if !b.ready {
		return core.CommandNone
	}
	return pollKeys(b.keys)
}

// Cleanup is a no-op; the window closes when RunGame returns.
func (b *Backend) Cleanup() {
	b.ready = false
}

// window adapts the backend to ebiten.Game.
type window struct {
	b *Backend
}

func (w *window) Update() error {
	if w.b.frame == nil || !w.b.frame() {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	v := w.b.view
	if v == nil {
		return
	}
	for _, r := range layoutRects(v, w.b.scale) {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}

	face := basicfont.Face7x13
	text.Draw(screen, invaders.HUDText(v), face, 2, w.b.scale-2, hudTextColor)
	if banner := invaders.Banner(v); banner != "" {
		sw, sh := w.b.Size()
		x := sw/2 - len(banner)*face.Advance/2
		text.Draw(screen, banner, face, x, sh/2, bannerColor)
	}
}

func (w *window) Layout(_, _ int) (int, int) {
	return w.b.Size()
}

var (
	_ registry.Backend = (*Backend)(nil)
	_ registry.Driver  = (*Backend)(nil)
	_ ebiten.Game      = (*window)(nil)
)
