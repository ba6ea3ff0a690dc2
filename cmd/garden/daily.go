package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Claim today's daily reward",
	Long: `Claim the daily reward. Rewards follow a seven day cycle; one reward
can be claimed per calendar day.

Examples:
  garden daily
  garden daily --player alice`,
	RunE: runDaily,
}

func runDaily(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	profile := e.Profile()
	reward, ok, err := profile.ClaimDaily(time.Now())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Today's reward was already claimed. Come back tomorrow!")
		return nil
	}

	fmt.Printf("Day %d reward: +%d coins\n", reward.Day, reward.Currency)
	if inv := reward.Boosters; inv.Bomb+inv.Hammer+inv.Shuffle+inv.Rainbow > 0 {
		fmt.Printf("Boosters: bomb %d, hammer %d, shuffle %d, rainbow %d\n", inv.Bomb, inv.Hammer, inv.Shuffle, inv.Rainbow)
	}
	e.Logger.Info("daily reward claimed", "player", profile.Player, "day", reward.Day)
	return nil
}
