package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gcore "github.com/vovakirdan/garden-match/internal/games/garden/core"
)

var (
	flagRefill bool
	flagReset  bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or modify a player's progress",
	Long: `Print the player's lives, coins, boosters and campaign position.

--refill buys a full set of lives for coins.
--reset deletes the player's progress and attempt history.

Examples:
  garden progress
  garden progress --refill
  garden progress --reset --player alice`,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagRefill, "refill", false, fmt.Sprintf("Refill lives for %d coins", gcore.LifeRefillPrice))
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all progress of the player")
}

func runProgress(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if flagReset {
		if err := e.requireStore(); err != nil {
			return err
		}
		if err := e.Store.ResetProgress(flagPlayer); err != nil {
			return err
		}
		e.Logger.Info("progress reset", "player", flagPlayer)
		fmt.Printf("Progress of %s was reset.\n\n", flagPlayer)
	}

	profile := e.Profile()

	if flagRefill {
		ok, err := profile.RefillLives()
		if err != nil {
			return err
		}
		p := profile.Progress()
		switch {
		case ok:
			fmt.Printf("Lives refilled for %d coins.\n\n", gcore.LifeRefillPrice)
		case p.Lives >= p.MaxLives:
			fmt.Print("Lives are already full.\n\n")
		default:
			fmt.Printf("Not enough coins: %d needed, %d held.\n\n", gcore.LifeRefillPrice, p.Currency)
		}
	}

	printProgress(profile.Player, profile.Progress())
	return nil
}

func printProgress(player string, p gcore.Progress) {
	fmt.Printf("Player %s\n\n", player)
	fmt.Printf("  Lives        %d/%d\n", p.Lives, p.MaxLives)
	fmt.Printf("  Coins        %d\n", p.Currency)
	fmt.Printf("  Unlocked     %d\n", p.UnlockedLevels)
	fmt.Printf("  Total score  %d\n", p.TotalScore)
	for _, b := range gcore.AllBoosters {
		fmt.Printf("  %-12s %d\n", b.String(), p.Boosters.Count(b))
	}
	if p.LastDaily.IsZero() {
		fmt.Println("  Daily        never claimed")
	} else {
		fmt.Printf("  Daily        day %d, last %s\n", p.Streak, p.LastDaily.Local().Format("2006-01-02"))
	}
}
