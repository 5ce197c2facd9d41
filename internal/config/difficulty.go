package config

import "sort"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Preset holds the game parameters a difficulty selects.
type Preset struct {
	Lives      int
	StartLevel int
}

var presets = map[DifficultyPreset]Preset{
	DifficultyEasy:   {Lives: 5, StartLevel: 1},
	DifficultyNormal: {Lives: 3, StartLevel: 1},
	DifficultyHard:   {Lives: 2, StartLevel: 3},
}

// LookupPreset returns the parameters for a preset.
func LookupPreset(p DifficultyPreset) (Preset, bool) {
	preset, ok := presets[p]
	return preset, ok
}

// PresetNames returns all preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for p := range presets {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}
