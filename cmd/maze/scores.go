package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-master/internal/platform/tui"
	"github.com/vovakirdan/maze-master/internal/score"
	"github.com/vovakirdan/maze-master/internal/storage"
)

var (
	flagHistory int
	flagReset   bool
	flagBrowse  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high scores",
	Long: `Display the persisted high-score table.

Examples:
  maze scores
  maze scores --history 20
  maze scores --browse
  maze scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagHistory, "history", 0, "Also list the N most recent runs")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the high-score table")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores and run history interactively")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening save database: %w", err)
	}
	defer store.Close()

	keeper := score.NewKeeper(store, logger)
	if rep := keeper.Load(); rep.ScoresReset {
		fmt.Println("Stored high scores were corrupt and have been reset.")
		fmt.Println()
	}

	if flagReset {
		keeper.ResetScores()
		fmt.Println("High scores reset.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(keeper.Table(), store, width, height)
	}

	fmt.Println("High Scores - Maze Master")
	fmt.Println()
	fmt.Printf("  %-4s  %-4s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-4s  %s\n", "----", "----", "-----")
	table := keeper.Table()
	for i, e := range table {
		fmt.Printf("  %-4d  %-4s  %d\n", i+1, e.NameString(), e.Score)
	}

	if flagHistory <= 0 {
		return nil
	}

	runs, err := store.RecentRuns(flagHistory)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	fmt.Println()
	fmt.Println("Recent Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'maze play' to record the first one!")
		return nil
	}
	fmt.Printf("  %-16s  %-4s  %-6s  %-5s  %s\n", "Date", "Name", "Score", "Level", "Result")
	for _, r := range runs {
		name := r.Name
		if name == "" {
			name = "-"
		}
		result := "quit"
		if r.Victory {
			result = "won"
		}
		fmt.Printf("  %-16s  %-4s  %-6d  %-5d  %s\n",
			r.PlayedAt.Local().Format("2006-01-02 15:04"), name, r.Score, r.Level, result)
	}
	return nil
}
