package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-master/internal/config"
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/platform/sound"
	"github.com/vovakirdan/maze-master/internal/platform/tui"
	"github.com/vovakirdan/maze-master/internal/score"
	"github.com/vovakirdan/maze-master/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
	flagMemory     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the emulated console.

Controls:
  Arrows/WASD  - Joystick
  Space/Enter  - Button
  Esc          - Hold the button (back to the main menu)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Gentler bonus countdown, stars closer to the start
  normal - Default tuning
  hard   - Faster bonus countdown, stars further away

Examples:
  maze play
  maze play --difficulty easy
  maze play --config ./my-maze.yaml
  maze play --memory --no-sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Do not open the audio device")
	playCmd.Flags().BoolVar(&flagMemory, "memory", false, "Keep scores and settings in memory only")
}

// loadConfig reads the config and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// openSave returns the byte store for scores and settings, and the SQLite
// store when one could be opened.
func openSave(logger *log.Logger) (core.ByteStore, *storage.Store) {
	if flagMemory {
		return storage.NewMemory(), nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save database: %v\n", err)
		logger.Warn("could not open save database, scores will not persist", "error", err)
		// Continue without persistence - game still works
		return storage.NewMemory(), nil
	}
	return store, store
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	save, store := openSave(logger)
	if store != nil {
		defer store.Close()
	}

	keeper := score.NewKeeper(save, logger)
	if store != nil {
		keeper.SetHistory(store)
	}
	if rep := keeper.Load(); rep.ScoresReset || rep.SettingsRepaired {
		logger.Warn("save data repaired", "scores_reset", rep.ScoresReset, "settings_repaired", rep.SettingsRepaired)
	}

	var buzzer core.Buzzer
	if !flagNoSound {
		buzzer = sound.Open(logger)
	}

	logger.Info("starting", "difficulty", flagDifficulty, "fps", flagFPS, "seed", flagSeed)
	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Scores: keeper,
		Buzzer: buzzer,
		Logger: logger,
	})
}
