package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/garden-match/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Garden Match with the interactive menu",
	Long: `Start Garden Match in interactive menu mode.

From the menu you can play your current level, pick any unlocked level,
claim the daily reward, refill lives and browse high scores. After a
level ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  garden menu
  garden menu --player alice
  garden menu --db ./garden.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := tui.RunSession(e.Profile(), runtimeConfig()); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
