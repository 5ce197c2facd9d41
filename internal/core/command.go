package core

import (
	"fmt"
	"strings"
)

// Command is an abstract input intent produced by a backend and consumed by
// the command layer. Backends map their own key events onto this vocabulary.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandMoveLeft
	CommandMoveRight
	CommandShoot
)

// String returns the canonical lower-case name of the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandQuit:
		return "quit"
	case CommandPause:
		return "pause"
	case CommandMoveLeft:
		return "left"
	case CommandMoveRight:
		return "right"
	case CommandShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// ParseCommand converts a name (as returned by String, case-insensitive) into
// a Command. "move_left"/"move_right" are accepted as aliases.
func ParseCommand(name string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return CommandNone, nil
	case "quit":
		return CommandQuit, nil
	case "pause":
		return CommandPause, nil
	case "left", "move_left":
		return CommandMoveLeft, nil
	case "right", "move_right":
		return CommandMoveRight, nil
	case "shoot":
		return CommandShoot, nil
	default:
		return CommandNone, fmt.Errorf("core: unknown command %q", name)
	}
}
