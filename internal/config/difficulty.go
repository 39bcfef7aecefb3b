package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned for a difficulty name that has no preset.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
// The empty string selects no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownPreset, name)
	}
}

// ApplyPreset adjusts the time limit and obstacle count for a preset.
// Normal and the empty preset leave the loaded configuration untouched.
func ApplyPreset(cfg *HuntConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timer.LimitSeconds = 90
		cfg.Obstacles.Count = 3
	case DifficultyHard:
		cfg.Timer.LimitSeconds = 45
		cfg.Obstacles.Count = 8
	}
}
