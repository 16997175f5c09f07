package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top runs ranked by lines cleared, followed by totals.

Examples:
  tetris scores
  tetris scores --limit 25
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearRuns(tetris.GameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintln(out, "All runs deleted.")
		return nil
	}

	runs, err := store.TopRuns(tetris.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Tetris")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-5s  %-12s  %-6s  %s\n", "Rank", "Lines", "Level", "Player", "Mode", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-5s  %-12s  %-6s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, r := range runs {
		player, mode := r.Player, r.Difficulty
		if player == "" {
			player = "-"
		}
		if mode == "" {
			mode = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-5d  %-5d  %-12s  %-6s  %s\n",
			i+1, r.Lines, r.Level, player, mode, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(tetris.GameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d lines  Top level: %d  Average: %.1f  Total: %d\n",
		stats.Runs, stats.BestLines, stats.BestLevel, stats.AvgLines, stats.TotalLines)
	return nil
}
