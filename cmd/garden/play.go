package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/garden-match/internal/games/garden"
	"github.com/vovakirdan/garden-match/internal/platform/tui"
	"github.com/vovakirdan/garden-match/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing Garden Match. Without a level number the highest
unlocked level is played.

Controls:
  Arrows/WASD/hjkl - Move cursor
  Space/Enter      - Select gem, swap with a neighbour
  Esc              - Cancel selection or booster
  B                - Bomb booster (3x3 blast)
  X                - Hammer booster (smash one gem)
  F                - Shuffle booster
  ?                - Show a hint
  N                - Next level (after a win)
  R                - Retry level (after it ends)
  P                - Pause
  Q                - Quit (an unfinished level costs no life)
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - More moves, lower targets
  normal - Levels as designed
  hard   - Fewer moves, higher targets
  fixed  - Levels as designed, no special gems

Examples:
  garden play
  garden play 4
  garden play 2 --difficulty easy
  garden play --config ./my-garden.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	e, err := loadEnv(true)
	if err != nil {
		return err
	}
	defer e.Close()

	profile := e.Profile()
	progress := profile.Progress()

	level := 0
	if len(args) == 1 {
		level, err = strconv.Atoi(args[0])
		if err != nil || level < 1 || level > e.Levels.Count() {
			return fmt.Errorf("invalid level %q (want 1-%d)", args[0], e.Levels.Count())
		}
		if level > progress.UnlockedLevels {
			return fmt.Errorf("level %d is locked, %d levels unlocked", level, progress.UnlockedLevels)
		}
	}

	if progress.Lives <= 0 {
		fmt.Println("You are out of lives. Run 'garden progress --refill' or claim your daily reward.")
	}

	garden.Configure(garden.Options{
		Config:   e.Config,
		Levels:   e.Levels,
		Progress: progress,
		Preset:   e.Preset,
		Logger:   e.Logger,
	})
	garden.SetStartLevel(level)

	game, err := registry.Create(garden.GameID)
	if err != nil {
		return err
	}

	e.Logger.Info("starting game", "player", profile.Player, "level", level, "preset", e.Preset)
	if err := tui.Run(game, profile, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
