package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) error = %v", err)
	}

	def := Default()
	def.Source = ""
	if cfg != def {
		t.Errorf("embedded config = %+v, expected %+v", cfg, def)
	}
}

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
	if Default().Seed != 0xC0FFEE {
		t.Errorf("Default().Seed = %#x, expected 0xC0FFEE", Default().Seed)
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("seed: 7\nloop:\n  tick_rate: 120\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", cfg.Seed)
	}
	if cfg.Loop.TickRate != 120 {
		t.Errorf("Loop.TickRate = %d, expected 120", cfg.Loop.TickRate)
	}
	if cfg.Loop.FrameRate != 60 {
		t.Errorf("Loop.FrameRate = %d, expected default 60", cfg.Loop.FrameRate)
	}
	if cfg.Backend != "tui" {
		t.Errorf("Backend = %q, expected default tui", cfg.Backend)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if cfg.Pixel.Scale != 12 {
		t.Errorf("Pixel.Scale = %d, expected 12", cfg.Pixel.Scale)
	}
}

func TestParseUnknownField(t *testing.T) {
	if _, err := Parse([]byte("bogus: 1\n")); err == nil {
		t.Error("Parse() with unknown key should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty backend", func(c *Config) { c.Backend = "" }, "backend"},
		{"bad difficulty", func(c *Config) { c.Difficulty = "insane" }, "difficulty"},
		{"zero tick rate", func(c *Config) { c.Loop.TickRate = 0 }, "tick_rate"},
		{"negative frame rate", func(c *Config) { c.Loop.FrameRate = -1 }, "frame_rate"},
		{"negative max frame", func(c *Config) { c.Loop.MaxFrame = -0.1 }, "max_frame"},
		{"zero scale", func(c *Config) { c.Pixel.Scale = 0 }, "scale"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	custom := writeFile(t, dir, "custom.yaml", "seed: 1\n")
	user := writeFile(t, dir, "user.yaml", "seed: 2\n")
	local := writeFile(t, dir, "local.yaml", "seed: 3\n")
	missing := filepath.Join(dir, "missing.yaml")

	tests := []struct {
		name                string
		custom, user, local string
		seed                uint32
		source              string
	}{
		{"custom wins", custom, user, local, 1, custom},
		{"user next", "", user, local, 2, user},
		{"local next", "", missing, local, 3, local},
		{"embedded last", "", missing, missing, 0xC0FFEE, "embedded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load(tt.custom, tt.user, tt.local)
			if err != nil {
				t.Fatalf("load() error = %v", err)
			}
			if cfg.Seed != tt.seed {
				t.Errorf("Seed = %d, expected %d", cfg.Seed, tt.seed)
			}
			if cfg.Source != tt.source {
				t.Errorf("Source = %q, expected %q", cfg.Source, tt.source)
			}
		})
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := load(filepath.Join(dir, "nope.yaml"), "", ""); err == nil {
		t.Error("load() with missing custom file should fail")
	}

	broken := writeFile(t, dir, "broken.yaml", "loop: [1, 2\n")
	if _, err := load(broken, "", ""); err == nil {
		t.Error("load() with malformed custom file should fail")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "loop:\n  tick_rate: 0\n")
	if _, err := load(invalid, "", ""); err == nil {
		t.Error("load() with invalid values should fail")
	}
}

func TestLoadSkipsBrokenUserFile(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "seed: [\n")
	local := writeFile(t, dir, "local.yaml", "seed: 9\n")

	cfg, err := load("", user, local)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.Seed != 9 {
		t.Errorf("Seed = %d, expected 9 from local file", cfg.Seed)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Backend = "cell"
	cfg.Difficulty = DifficultyHard

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "builtin") {
		t.Error("Marshal() should not emit Source")
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if back.Backend != "cell" || back.Difficulty != DifficultyHard {
		t.Errorf("round trip = %+v", back)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		level  int
	}{
		{DifficultyEasy, 5, 1},
		{DifficultyNormal, 3, 1},
		{DifficultyHard, 2, 3},
	}

	for _, tt := range tests {
		p, ok := LookupPreset(tt.preset)
		if !ok {
			t.Errorf("LookupPreset(%q) not found", tt.preset)
			continue
		}
		if p.Lives != tt.lives || p.StartLevel != tt.level {
			t.Errorf("LookupPreset(%q) = %+v, expected lives=%d level=%d", tt.preset, p, tt.lives, tt.level)
		}
	}

	if _, ok := LookupPreset("fixed"); ok {
		t.Error("LookupPreset(\"fixed\") should not exist")
	}

	names := PresetNames()
	if strings.Join(names, ",") != "easy,hard,normal" {
		t.Errorf("PresetNames() = %v", names)
	}
}
