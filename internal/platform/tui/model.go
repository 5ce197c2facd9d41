package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// frameMsg carries a pre-rendered playfield from the loop goroutine.
type frameMsg string

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for the game screen. It owns no game state:
// the loop renders frames and reads commands through the Backend.
type Model struct {
	keys     KeyMap
	help     help.Model
	frame    string
	commands chan<- core.Command
	quitting bool
}

// NewModel creates a model that forwards commands to the given channel.
func NewModel(keys KeyMap, commands chan<- core.Command) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		keys:     keys,
		help:     h,
		commands: commands,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = string(msg)
		return m, nil
	}

	return m, nil
}

// handleKey maps a key to a command and queues it for the loop.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.Command(msg)
	if cmd == core.CommandNone {
		return m, nil
	}

	m.push(cmd)
	if cmd == core.CommandQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// push queues a command without blocking. Commands are dropped when the
// loop falls behind.
func (m Model) push(cmd core.Command) {
	select {
	case m.commands <- cmd:
	default:
	}
}

// View renders the last frame plus the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame + "\n" + helpStyle.Render(m.help.View(m.keys))
}
