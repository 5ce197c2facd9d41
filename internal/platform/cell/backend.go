// Package cell provides the tcell terminal backend. A goroutine pumps
// tcell events into a buffered channel; the loop drains it without blocking.
package cell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

const eventBuffer = 100

func init() {
	registry.Register("cell", "tcell terminal", func(opts registry.Options) registry.Backend {
		return New(opts.Logger)
	})
}

// ScreenFactory creates and initializes the tcell screen used by Init.
type ScreenFactory func() (tcell.Screen, error)

func newTerminalScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	return s, nil
}

// palette maps core.Color to tcell styles.
var palette = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 200, 120)),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorBlue:        tcell.StyleDefault.Foreground(tcell.ColorBlue),
	core.ColorMagenta:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightRed:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 120, 120)),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)),
}

// Style returns the tcell style for a color.
func Style(c core.Color) tcell.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Backend renders through a tcell screen.
type Backend struct {
	logger    *log.Logger
	newScreen ScreenFactory

	screen tcell.Screen
	buf    *core.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// Option customizes a Backend.
type Option func(*Backend)

// WithScreenFactory replaces the terminal screen, e.g. with a simulation screen.
func WithScreenFactory(f ScreenFactory) Option {
	return func(b *Backend) {
		b.newScreen = f
	}
}

// New creates an uninitialized tcell backend.
func New(logger *log.Logger, opts ...Option) *Backend {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Backend{
		logger:    logger,
		newScreen: newTerminalScreen,
		buf:       core.NewScreen(invaders.Width, invaders.Height),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init creates the screen, checks its size and starts the event pump.
func (b *Backend) Init() error {
	s, err := b.newScreen()
	if err != nil {
		return fmt.Errorf("cell: %w", err)
	}

	w, h := s.Size()
	if w < invaders.Width || h < invaders.Height {
		s.Fini()
		return fmt.Errorf("cell: %w: need %dx%d, have %dx%d",
			registry.ErrTerminalTooSmall, invaders.Width, invaders.Height, w, h)
	}

	s.HideCursor()
	s.SetStyle(tcell.StyleDefault)
	s.Clear()

	b.screen = s
	b.events = make(chan tcell.Event, eventBuffer)
	b.quit = make(chan struct{})
	go b.pump(s, b.events, b.quit)

	b.logger.Debug("cell backend started", "width", w, "height", h)
	return nil
}

// pump forwards screen events until the screen is finalized.
func (b *Backend) pump(s tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// Render blits the view onto the screen.
func (b *Backend) Render(v invaders.View) {
	if b.screen == nil {
		return
	}
	invaders.Render(b.buf, v)

	for y := range b.buf.Height() {
		for x := range b.buf.Width() {
			c := b.buf.GetCell(x, y)
			b.screen.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
	b.screen.Show()
}

// PollEvent returns the first pending command, skipping events that do
// not map to one.
func (b *Backend) PollEvent() core.Command {
	if b.screen == nil {
		return core.CommandNone
	}
	for {
		select {
		case ev := <-b.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd := MapKey(ev); cmd != core.CommandNone {
					return cmd
				}
			case *tcell.EventResize:
				b.screen.Sync()
			}
		default:
			return core.CommandNone
		}
	}
}

// Cleanup stops the pump and restores the terminal.
func (b *Backend) Cleanup() {
	if b.screen == nil {
		return
	}
	close(b.quit)
	b.screen.Fini()
	b.screen = nil
}

// MapKey translates a tcell key event to a command.
func MapKey(ev *tcell.EventKey) core.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.CommandQuit
	case tcell.KeyLeft:
		return core.CommandMoveLeft
	case tcell.KeyRight:
		return core.CommandMoveRight
	case tcell.KeyUp:
		return core.CommandShoot
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return core.CommandQuit
		case 'h', 'a':
			return core.CommandMoveLeft
		case 'l', 'd':
			return core.CommandMoveRight
		case ' ', 'k':
			return core.CommandShoot
		case 'p', 'P':
			return core.CommandPause
		}
	}
	return core.CommandNone
}
