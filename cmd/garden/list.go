package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/garden-match/internal/games/garden"
	"github.com/vovakirdan/garden-match/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of the campaign",
	Long: `Shows the registered games and every level of the loaded campaign.
Levels come from the built-in campaign or the level pack named by
levels_path in the config file.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	garden.Configure(garden.Options{
		Config:   e.Config,
		Levels:   e.Levels,
		Progress: e.Profile().Progress(),
		Preset:   e.Preset,
		Logger:   e.Logger,
	})

	for _, g := range registry.List() {
		fmt.Printf("%s (%s)\n", g.Title, g.ID)
	}
	fmt.Println()

	unlocked := garden.UnlockedLevels()
	fmt.Printf("Levels (%d, %d unlocked):\n\n", garden.LevelCount(), unlocked)
	for i, name := range garden.LevelNames() {
		lvl := e.Levels.Lookup(i + 1)
		mark := " "
		if i+1 > unlocked {
			mark = "x"
		}
		fmt.Printf("  %s %-24s  %dx%d  %d kinds  %2d moves  target %d\n",
			mark, name, lvl.GridSize, lvl.GridSize, lvl.GemKinds, lvl.Moves, lvl.TargetScore)
	}

	fmt.Println()
	fmt.Println("Run 'garden play <level>' to play an unlocked level.")
	return nil
}
