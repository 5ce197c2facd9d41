package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// terminalBackends draw on the terminal, so logs must not go to stderr
// while they run.
var terminalBackends = map[string]bool{
	"tui":  true,
	"cell": true,
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the process logger. With a log file configured, output
// goes there; otherwise to stderr, or nowhere when the terminal is in use.
func newLogger(cfg config.Log, stderr io.Writer, terminal bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	var (
		w      io.Writer = stderr
		closer io.Closer = nopCloser{}
	)
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", cfg.File, err)
		}
		w, closer = f, f
	case terminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, closer, nil
}

// mustLogger is newLogger for command handlers; it exits on error.
func mustLogger(cfg config.Log, terminal bool) (*log.Logger, io.Closer) {
	logger, closer, err := newLogger(cfg, os.Stderr, terminal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}
