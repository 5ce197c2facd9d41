// Package registry provides a global registry for render backends.
// Backends register themselves in init() functions, allowing the command
// layer to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Errors reported by backends from Init. Callers treat all of them as fatal.
var (
	ErrTerminalTooSmall = errors.New("terminal too small")
	ErrNoDisplay        = errors.New("no graphics display available")
	ErrUnknownBackend   = errors.New("unknown backend")
)

// Backend is the contract every render/input adapter implements.
// The simulation never calls into a backend; the loop does.
type Backend interface {
	// Init acquires the display. A non-nil error means the backend is
	// unusable and the loop must not start.
	Init() error

	// Render draws the current read-only game state.
	Render(v invaders.View)

	// PollEvent returns the next pending command without blocking.
	// It returns core.CommandNone when nothing is pending.
	PollEvent() core.Command

	// Cleanup releases the display. Safe to call after a failed Init.
	Cleanup()
}

// Driver is implemented by backends that must own the main loop
// (for example a windowing toolkit). Drive calls frame once per display
// refresh until it returns false.
type Driver interface {
	Drive(frame func() bool) error
}

// Options carries assembly-time settings to backend factories.
type Options struct {
	Logger *log.Logger
	Pixel  config.Pixel
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory creates a new, uninitialized backend.
type Factory func(opts Options) Backend

type entry struct {
	title   string
	factory Factory
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}
	backends[id] = entry{title: title, factory: f}
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for id, e := range backends {
		result = append(result, BackendInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID. The backend is not initialized.
func Create(id string, opts Options) (Backend, error) {
	mu.RLock()
	e, ok := backends[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownBackend, id)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return e.factory(opts), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[id]
	return ok
}
