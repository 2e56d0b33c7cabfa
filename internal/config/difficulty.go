package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		// Slower bonus decay and stars kept close to the path.
		cfg.Scoring.PerSecondDeduction = cfg.Scoring.PerSecondDeduction / 2
		cfg.Placement.MinStartDistance = max(1, cfg.Placement.MinStartDistance-1)
		cfg.Timing.MoveCooldownMs = cfg.Timing.MoveCooldownMs + 50
	case DifficultyHard:
		cfg.Scoring.PerSecondDeduction = cfg.Scoring.PerSecondDeduction * 2
		cfg.Placement.MinStartDistance = cfg.Placement.MinStartDistance + 2
		cfg.Placement.MinExitDistance = cfg.Placement.MinExitDistance + 1
		cfg.Timing.MoveCooldownMs = max(50, cfg.Timing.MoveCooldownMs-50)
	}
}
