// Package tui provides the Bubble Tea terminal backend. The Bubble Tea
// program runs on its own goroutine; the loop pushes rendered frames into it
// and drains key commands from a buffered channel.
package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Minimum terminal size: the playfield plus one help line.
const (
	MinWidth  = invaders.Width
	MinHeight = invaders.Height + 1
)

const (
	commandBuffer = 64
	quitTimeout   = 2 * time.Second
)

func init() {
	registry.Register("tui", "Bubble Tea terminal", func(opts registry.Options) registry.Backend {
		return New(opts.Logger)
	})
}

// SizeFunc reports the terminal size.
type SizeFunc func() (width, height int, err error)

// Backend renders through a Bubble Tea program.
type Backend struct {
	logger *log.Logger
	keys   KeyMap
	input  io.Reader
	output io.Writer
	size   SizeFunc
	alt    bool

	screen   *core.Screen
	program  *tea.Program
	commands chan core.Command
	done     chan struct{}
	runErr   error
}

// Option customizes a Backend.
type Option func(*Backend)

// WithIO replaces the terminal streams and disables the alternate screen.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(b *Backend) {
		b.input = in
		b.output = out
		b.alt = false
	}
}

// WithSizeFunc replaces the terminal size probe.
func WithSizeFunc(f SizeFunc) Option {
	return func(b *Backend) {
		b.size = f
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(b *Backend) {
		b.keys = k
	}
}

// New creates an uninitialized Bubble Tea backend.
func New(logger *log.Logger, opts ...Option) *Backend {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Backend{
		logger: logger,
		keys:   DefaultKeyMap(),
		input:  os.Stdin,
		output: os.Stdout,
		size:   stdoutSize,
		alt:    true,
		screen: core.NewScreen(invaders.Width, invaders.Height),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func stdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd())) //#nosec G115 -- fd fits in int
}

// Init checks the terminal size and starts the Bubble Tea program.
func (b *Backend) Init() error {
	w, h, err := b.size()
	if err != nil {
		return fmt.Errorf("tui: cannot read terminal size: %w", err)
	}
	if w < MinWidth || h < MinHeight {
		return fmt.Errorf("tui: %w: need %dx%d, have %dx%d",
			registry.ErrTerminalTooSmall, MinWidth, MinHeight, w, h)
	}

	b.commands = make(chan core.Command, commandBuffer)
	b.done = make(chan struct{})

	opts := []tea.ProgramOption{
		tea.WithInput(b.input),
		tea.WithOutput(b.output),
	}
	if b.alt {
		opts = append(opts, tea.WithAltScreen())
	}
	b.program = tea.NewProgram(NewModel(b.keys, b.commands), opts...)

	go func() {
		defer close(b.done)
		if _, err := b.program.Run(); err != nil {
			b.runErr = err
		}
	}()

	b.logger.Debug("tui backend started", "width", w, "height", h)
	return nil
}

// Render draws the view and hands the frame to the program.
func (b *Backend) Render(v invaders.View) {
	if b.program == nil {
		return
	}
	invaders.Render(b.screen, v)
	b.program.Send(frameMsg(RenderScreen(b.screen)))
}

// PollEvent returns the next queued command, or core.CommandQuit once the
// program has exited.
func (b *Backend) PollEvent() core.Command {
	if b.program == nil {
		return core.CommandNone
	}
	select {
	case cmd := <-b.commands:
		return cmd
	default:
	}
	select {
	case <-b.done:
		return core.CommandQuit
	default:
		return core.CommandNone
	}
}

// Cleanup stops the program and restores the terminal.
func (b *Backend) Cleanup() {
	if b.program == nil {
		return
	}
	b.program.Quit()

	select {
	case <-b.done:
	case <-time.After(quitTimeout):
		b.program.Kill()
		<-b.done
	}
	if b.runErr != nil {
		b.logger.Warn("tui program exited with error", "err", b.runErr)
	}
	b.program = nil
}
