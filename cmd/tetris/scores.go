package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Browse the best Tetris scores.

Opens an interactive table when run in a terminal. Use --plain to print
the table instead.

Examples:
  tetris scores
  tetris scores --plain --limit 5
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
}

func runScores(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(tetris.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	w, h, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagPlain || termErr != nil {
		return printScores(store)
	}
	return tui.RunScoreboard(store, tetris.GameID, "Tetris", w, h)
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(tetris.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Tetris")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Lines, dateStr)
	}

	stats, err := store.GetGameStats(tetris.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Games: %d   Lines: %d\n", stats.HighScore, stats.GamesCount, stats.TotalLines)
	}
	return nil
}
