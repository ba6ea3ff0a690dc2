package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/garden-match/internal/games/garden/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the campaign with your best results",
	Long: `Lists the unlocked levels of the campaign with the player's best
score and star rating on each.

Examples:
  garden levels
  garden levels --player alice`,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	profile := e.Profile()
	best := profile.BestByLevel()
	unlocked := min(profile.Progress().UnlockedLevels, e.Levels.Count())

	fmt.Printf("%s - %s campaign, %d of %d levels unlocked\n\n", profile.Player, e.Levels.Name, unlocked, e.Levels.Count())
	fmt.Printf("  %-5s  %-12s  %-6s  %-7s  %-6s  %s\n", "Level", "Tier", "Moves", "Target", "Stars", "Best")
	fmt.Printf("  %-5s  %-12s  %-6s  %-7s  %-6s  %s\n", "-----", "----", "-----", "------", "-----", "----")

	for n := 1; n <= unlocked; n++ {
		lvl := e.Levels.Lookup(n)
		stars, score := "", "-"
		if b, ok := best[n]; ok {
			stars = strings.Repeat("*", b.BestStars)
			score = fmt.Sprintf("%d (%d tries)", b.BestScore, b.Attempts)
		}
		fmt.Printf("  %-5d  %-12s  %-6d  %-7d  %-6s  %s\n", n, levels.Tier(n), lvl.Moves, lvl.TargetScore, stars, score)
	}
	return nil
}
