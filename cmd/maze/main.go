// maze is a terminal rendition of the Maze Master handheld: a two-line text
// display and an 8x8 LED matrix driven by a joystick and one button.
//
// Usage:
//
//	maze play             - Play on the emulated console
//	maze scores           - Show the persisted high-score table
//	maze levels           - List the built-in levels
//
// Global flags:
//
//	--fps <rate>    - Set poll rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible star placement
//	--db <path>     - Set database path (default: ~/.maze/maze.db)
//	--log <path>    - Write a log file (default: no logging)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze Master - collect the stars and find the exit",
	Long: `Maze Master is a small maze game for a handheld console with a
16x2 text display and an 8x8 LED matrix. This build emulates the console
in your terminal.

Available commands:
  play     - Play the game
  scores   - View or reset the high scores
  levels   - Show the built-in levels

Examples:
  maze play
  maze play --difficulty hard
  maze scores --history 20
  maze levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Poll rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze/maze.db", "Path to the save database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to a log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log state transitions")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger opens the log file. The terminal belongs to the UI, so without
// --log everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if dir := filepath.Dir(flagLogPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
