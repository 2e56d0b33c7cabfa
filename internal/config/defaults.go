package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			DeadZoneLow:        400,
			DeadZoneHigh:       600,
			DebounceMs:         50,
			LongPressMs:        1000,
			TiltThreshold:      3.0,
			TiltReadIntervalMs: 100,
		},
		Timing: TimingConfig{
			MenuCooldownMs: 250,
			MoveCooldownMs: 200,
			StarBlinkMs:    300,
			PlayerBlinkMs:  150,
			HUDRefreshMs:   500,
		},
		Scoring: ScoringConfig{
			PointsPerStar:      10,
			BaseClearPoints:    6000,
			PerSecondDeduction: 100,
		},
		Placement: PlacementConfig{
			MinStartDistance: 3,
			MinExitDistance:  2,
			MaxAttempts:      100,
		},
		Display: DisplayConfig{
			BacklightMin:       25,
			BacklightMax:       255,
			MatrixIntensityMin: 0,
			MatrixIntensityMax: 15,
		},
	}
}
