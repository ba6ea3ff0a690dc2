package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `With a level number, display the best winning attempts on that level
across all players. Without one, display the statistics and recent
attempts of the current player.

Examples:
  garden scores 1
  garden scores 12 --limit 20
  garden scores --player alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of attempts to show")
}

func runScores(_ *cobra.Command, args []string) error {
	e, err := loadEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.requireStore(); err != nil {
		return err
	}

	if len(args) == 0 {
		return showPlayerScores(e)
	}

	level, err := strconv.Atoi(args[0])
	if err != nil || level < 1 || level > e.Levels.Count() {
		return fmt.Errorf("invalid level %q (want 1-%d)", args[0], e.Levels.Count())
	}

	scores, err := e.Store.TopScores(level, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - Level %d\n\n", level)
	if len(scores) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'garden play %d' to set the first high score!\n", level)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Stars", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, a := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %s\n", i+1, a.Player, a.Score, a.Stars, a.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func showPlayerScores(e *env) error {
	stats, err := e.Store.PlayerStats(flagPlayer)
	if err != nil {
		return err
	}

	fmt.Printf("Player %s\n\n", stats.Player)
	if stats.Attempts == 0 {
		fmt.Println("No attempts recorded yet.")
		return nil
	}
	fmt.Printf("  Attempts     %d (%d won)\n", stats.Attempts, stats.Wins)
	fmt.Printf("  High score   %d\n", stats.HighScore)
	fmt.Printf("  Average      %.0f\n", stats.AvgScore)
	fmt.Printf("  Total        %d\n", stats.TotalScore)
	fmt.Printf("  Last played  %s\n\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	recent, err := e.Store.RecentAttempts(flagPlayer, flagScoresLimit)
	if err != nil {
		return err
	}
	fmt.Println("Recent attempts:")
	for _, a := range recent {
		fmt.Printf("  level %-3d  %-9s  %-8d  %d moves left  %s\n",
			a.Level, a.Outcome, a.Score, a.MovesLeft, a.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
