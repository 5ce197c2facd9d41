package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func TestOverridesApply(t *testing.T) {
	seed := uint32(42)
	o := overrides{
		seed:       &seed,
		logLevel:   "debug",
		backend:    "cell",
		difficulty: "hard",
		frameRate:  30,
	}

	cfg, err := o.apply(config.Default())
	if err != nil {
		t.Fatalf("apply() error = %v", err)
	}
	if cfg.Seed != 42 || cfg.Log.Level != "debug" || cfg.Backend != "cell" {
		t.Errorf("apply() = %+v", cfg)
	}
	if cfg.Difficulty != config.DifficultyHard || cfg.Loop.FrameRate != 30 {
		t.Errorf("apply() = %+v", cfg)
	}
}

func TestOverridesKeepConfig(t *testing.T) {
	def := config.Default()
	cfg, err := overrides{}.apply(def)
	if err != nil {
		t.Fatalf("apply() error = %v", err)
	}
	if cfg.Seed != def.Seed || cfg.Backend != def.Backend || cfg.Loop != def.Loop {
		t.Errorf("empty overrides changed config: %+v", cfg)
	}
}

func TestOverridesValidate(t *testing.T) {
	if _, err := (overrides{difficulty: "nightmare"}).apply(config.Default()); err == nil {
		t.Error("apply() = nil for unknown difficulty, expected error")
	}
	if _, err := (overrides{logLevel: "loud"}).apply(config.Default()); err == nil {
		t.Error("apply() = nil for unknown log level, expected error")
	}
}

func TestGameOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty = config.DifficultyHard

	g := newGame(cfg)
	if g.Lives() != 2 || g.Level() != 3 {
		t.Errorf("lives/level = %d/%d, expected 2/3", g.Lives(), g.Level())
	}
}

func TestNewLoggerStderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := newLogger(config.Log{Level: "info"}, &buf, false)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("shown", "score", 10)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "invaders") {
		t.Errorf("output = %q, expected prefixed info message", out)
	}
}

func TestNewLoggerTerminalDiscards(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := newLogger(config.Log{Level: "debug"}, &buf, true)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer closer.Close()

	logger.Error("lost")
	if buf.Len() != 0 {
		t.Errorf("terminal logger wrote %q to stderr", buf.String())
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.log")
	var buf bytes.Buffer

	logger, closer, err := newLogger(config.Log{Level: "info", File: path}, &buf, true)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
	if buf.Len() != 0 {
		t.Error("file logger also wrote to stderr")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("log file mode = %o, expected 600", perm)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, _, err := newLogger(config.Log{Level: "loud"}, &bytes.Buffer{}, false); err == nil {
		t.Error("newLogger() = nil for unknown level, expected error")
	}
}

func TestBackendsRegistered(t *testing.T) {
	for _, id := range []string{"cell", "pixel", "tui"} {
		if !registry.Exists(id) {
			t.Errorf("backend %q not registered", id)
		}
	}
	for id := range terminalBackends {
		if !registry.Exists(id) {
			t.Errorf("terminal backend %q not registered", id)
		}
	}
}

func TestPlayHelpListsTerminalSizes(t *testing.T) {
	for _, want := range []string{"tui    - at least 80x25", "cell   - at least 80x24"} {
		if !strings.Contains(playCmd.Long, want) {
			t.Errorf("play help missing %q", want)
		}
	}
}
