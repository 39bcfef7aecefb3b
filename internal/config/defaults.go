package config

import (
	_ "embed"
)

//go:embed defaults/trihunt.yaml
var defaultHuntYAML []byte

// DefaultHuntConfig returns the default Triangle Hunt configuration.
func DefaultHuntConfig() HuntConfig {
	return HuntConfig{
		Player: PlayerConfig{
			Radius: 0.1,
			Step:   0.01,
		},
		Collectibles: ObjectConfig{
			Count:  10,
			Radius: 0.05,
		},
		Obstacles: ObjectConfig{
			Count:  5,
			Radius: 0.1,
		},
		Timer: TimerConfig{
			LimitSeconds: 60,
		},
		Placement: PlacementConfig{
			MaxAttempts: 10000,
		},
		Input: InputConfig{
			HoldWindowMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultHuntYAML))
	copy(out, defaultHuntYAML)
	return out
}
