// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// HuntConfig contains all configuration for a Triangle Hunt game.
type HuntConfig struct {
	Player       PlayerConfig    `yaml:"player"`
	Collectibles ObjectConfig    `yaml:"collectibles"`
	Obstacles    ObjectConfig    `yaml:"obstacles"`
	Timer        TimerConfig     `yaml:"timer"`
	Placement    PlacementConfig `yaml:"placement"`
	Input        InputConfig     `yaml:"input"`
}

// PlayerConfig defines the player's size and per-tick movement.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Step   float64 `yaml:"step"` // Distance moved per held key per tick
}

// ObjectConfig defines how many objects of a kind are placed and how big they are.
type ObjectConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
}

// TimerConfig defines the countdown.
type TimerConfig struct {
	LimitSeconds float64 `yaml:"limit_seconds"`
}

// PlacementConfig bounds the rejection sampling used to place objects.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Per object; 0 = unbounded
}

// InputConfig tunes key handling for hosts without key-up events.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// HoldWindow returns the terminal key hold window as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMS) * time.Millisecond
}

// Validate checks that every parameter is usable by the simulation.
func (c HuntConfig) Validate() error {
	switch {
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player.radius must be positive, got %v", ErrInvalidConfig, c.Player.Radius)
	case c.Player.Step <= 0:
		return fmt.Errorf("%w: player.step must be positive, got %v", ErrInvalidConfig, c.Player.Step)
	case c.Collectibles.Radius <= 0:
		return fmt.Errorf("%w: collectibles.radius must be positive, got %v", ErrInvalidConfig, c.Collectibles.Radius)
	case c.Collectibles.Count < 0:
		return fmt.Errorf("%w: collectibles.count must not be negative, got %d", ErrInvalidConfig, c.Collectibles.Count)
	case c.Obstacles.Radius <= 0:
		return fmt.Errorf("%w: obstacles.radius must be positive, got %v", ErrInvalidConfig, c.Obstacles.Radius)
	case c.Obstacles.Count < 0:
		return fmt.Errorf("%w: obstacles.count must not be negative, got %d", ErrInvalidConfig, c.Obstacles.Count)
	case c.Timer.LimitSeconds <= 0:
		return fmt.Errorf("%w: timer.limit_seconds must be positive, got %v", ErrInvalidConfig, c.Timer.LimitSeconds)
	case c.Placement.MaxAttempts < 0:
		return fmt.Errorf("%w: placement.max_attempts must not be negative, got %d", ErrInvalidConfig, c.Placement.MaxAttempts)
	case c.Input.HoldWindowMS < 0:
		return fmt.Errorf("%w: input.hold_window_ms must not be negative, got %d", ErrInvalidConfig, c.Input.HoldWindowMS)
	}
	return nil
}
