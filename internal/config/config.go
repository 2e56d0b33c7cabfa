// Package config provides YAML-based tuning for the maze engine: input
// thresholds, timing, scoring, star placement and display ranges.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains every tunable of the engine.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Timing    TimingConfig    `yaml:"timing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Placement PlacementConfig `yaml:"placement"`
	Display   DisplayConfig   `yaml:"display"`
}

// InputConfig defines joystick, button and tilt thresholds.
type InputConfig struct {
	DeadZoneLow        uint16  `yaml:"dead_zone_low"`
	DeadZoneHigh       uint16  `yaml:"dead_zone_high"`
	DebounceMs         int     `yaml:"debounce_ms"`
	LongPressMs        int     `yaml:"long_press_ms"`
	TiltThreshold      float64 `yaml:"tilt_threshold"`
	TiltReadIntervalMs int     `yaml:"tilt_read_interval_ms"`
}

// TimingConfig defines cooldowns and blink periods.
type TimingConfig struct {
	MenuCooldownMs int `yaml:"menu_cooldown_ms"`
	MoveCooldownMs int `yaml:"move_cooldown_ms"`
	StarBlinkMs    int `yaml:"star_blink_ms"`
	PlayerBlinkMs  int `yaml:"player_blink_ms"`
	HUDRefreshMs   int `yaml:"hud_refresh_ms"`
}

// ScoringConfig defines star rewards and the level-clear time bonus.
type ScoringConfig struct {
	PointsPerStar      int `yaml:"points_per_star"`
	BaseClearPoints    int `yaml:"base_clear_points"`
	PerSecondDeduction int `yaml:"per_second_deduction"`
}

// PlacementConfig defines the star rejection-sampling constraints.
type PlacementConfig struct {
	MinStartDistance int `yaml:"min_start_distance"`
	MinExitDistance  int `yaml:"min_exit_distance"`
	MaxAttempts      int `yaml:"max_attempts"`
}

// DisplayConfig holds the hardware levels the 1-10 brightness scale maps
// onto.
type DisplayConfig struct {
	BacklightMin       int `yaml:"backlight_min"`
	BacklightMax       int `yaml:"backlight_max"`
	MatrixIntensityMin int `yaml:"matrix_intensity_min"`
	MatrixIntensityMax int `yaml:"matrix_intensity_max"`
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Debounce returns the button debounce window.
func (c InputConfig) Debounce() time.Duration { return ms(c.DebounceMs) }

// LongPress returns the hold duration of the back-to-menu gesture.
func (c InputConfig) LongPress() time.Duration { return ms(c.LongPressMs) }

// TiltReadInterval returns how often the accelerometer is sampled.
func (c InputConfig) TiltReadInterval() time.Duration { return ms(c.TiltReadIntervalMs) }

// MenuCooldown returns the minimum interval between menu steps.
func (c TimingConfig) MenuCooldown() time.Duration { return ms(c.MenuCooldownMs) }

// MoveCooldown returns the minimum interval between player moves.
func (c TimingConfig) MoveCooldown() time.Duration { return ms(c.MoveCooldownMs) }

// StarBlink returns the star (and met-quota exit) blink period.
func (c TimingConfig) StarBlink() time.Duration { return ms(c.StarBlinkMs) }

// PlayerBlink returns the player marker blink period.
func (c TimingConfig) PlayerBlink() time.Duration { return ms(c.PlayerBlinkMs) }

// HUDRefresh returns the minimum interval between in-game text redraws.
func (c TimingConfig) HUDRefresh() time.Duration { return ms(c.HUDRefreshMs) }

// Validate reports configurations the engine cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Input.DeadZoneLow >= c.Input.DeadZoneHigh {
		errs = append(errs, fmt.Errorf("input: dead_zone_low (%d) must be below dead_zone_high (%d)",
			c.Input.DeadZoneLow, c.Input.DeadZoneHigh))
	}
	if c.Input.LongPressMs <= c.Input.DebounceMs {
		errs = append(errs, errors.New("input: long_press_ms must exceed debounce_ms"))
	}
	if c.Timing.StarBlinkMs <= 0 || c.Timing.PlayerBlinkMs <= 0 {
		errs = append(errs, errors.New("timing: blink periods must be positive"))
	}
	if c.Scoring.PerSecondDeduction < 0 || c.Scoring.BaseClearPoints < 0 {
		errs = append(errs, errors.New("scoring: clear points and deduction must not be negative"))
	}
	if c.Placement.MaxAttempts <= 0 {
		errs = append(errs, errors.New("placement: max_attempts must be positive"))
	}
	if c.Display.BacklightMin > c.Display.BacklightMax || c.Display.BacklightMax > 255 {
		errs = append(errs, errors.New("display: backlight range must be ordered within 0-255"))
	}
	if c.Display.MatrixIntensityMin > c.Display.MatrixIntensityMax || c.Display.MatrixIntensityMax > 15 {
		errs = append(errs, errors.New("display: matrix intensity range must be ordered within 0-15"))
	}

	return errors.Join(errs...)
}
