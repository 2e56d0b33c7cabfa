package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults diverge from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}
}

func TestValidateRejectsInvertedDeadZone(t *testing.T) {
	cfg := Default()
	cfg.Input.DeadZoneLow = 700
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject dead_zone_low above dead_zone_high")
	}
}

func TestValidateRejectsShortLongPress(t *testing.T) {
	cfg := Default()
	cfg.Input.LongPressMs = cfg.Input.DebounceMs
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a long press no longer than the debounce window")
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("scoring:\n  points_per_star: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.PointsPerStar != 25 {
		t.Errorf("PointsPerStar = %d, expected 25", cfg.Scoring.PointsPerStar)
	}
	if cfg.Scoring.BaseClearPoints != Default().Scoring.BaseClearPoints {
		t.Errorf("keys absent from the file should keep their defaults, got %d", cfg.Scoring.BaseClearPoints)
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadCustomInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("input:\n  dead_zone_low: 900\n  dead_zone_high: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an invalid custom config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name     string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", DifficultyNormal, true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Scoring.PerSecondDeduction >= base.Scoring.PerSecondDeduction {
		t.Error("easy should slow the bonus decay")
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Scoring.PerSecondDeduction <= base.Scoring.PerSecondDeduction {
		t.Error("hard should speed up the bonus decay")
	}
	if hard.Placement.MinStartDistance <= base.Placement.MinStartDistance {
		t.Error("hard should push stars away from the start")
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal should leave the config unchanged")
	}

	for _, cfg := range []Config{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced an invalid config: %v", err)
		}
	}
}
