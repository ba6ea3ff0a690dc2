package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/garden-match/internal/config"
	gcore "github.com/vovakirdan/garden-match/internal/games/garden/core"
)

var (
	flagSimLevel    int
	flagSimMaxMoves int
	flagSimQuiet    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the computer play a level",
	Long: `Play a level with a greedy autoplayer that always makes the swap
clearing the most gems, printing the board after every move. Progress is
not touched. Useful to check that a level pack is winnable.

Examples:
  garden simulate
  garden simulate --level 12 --seed 42
  garden simulate --level 50 --quiet --difficulty hard`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Level to play")
	simulateCmd.Flags().IntVar(&flagSimMaxMoves, "max-moves", 0, "Stop after this many swaps (0 = play to the end)")
	simulateCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Only print the final result")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	e, err := loadEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if flagSimLevel < 1 || flagSimLevel > e.Levels.Count() {
		return fmt.Errorf("invalid level %d (want 1-%d)", flagSimLevel, e.Levels.Count())
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine := gcore.NewEngine(e.Config.Rules(), rand.New(rand.NewSource(seed)))
	level := config.ApplyPreset(e.Levels.Lookup(flagSimLevel), e.Preset)
	s := engine.StartLevel(level, e.Config.StartingProgress())
	if s.GenStats.Escapes > 0 {
		e.Logger.Warn("board generation escaped", "level", flagSimLevel, "escapes", s.GenStats.Escapes)
	}

	e.Logger.Debug("simulating", "level", flagSimLevel, "seed", seed, "preset", e.Preset)
	if !flagSimQuiet {
		fmt.Print(gcore.RenderASCII(s))
	}

	s, err = engine.Autoplay(ctx, s, flagSimMaxMoves, func(m gcore.Move, st gcore.State) {
		if flagSimQuiet {
			return
		}
		fmt.Printf("\nswap (%d,%d)-(%d,%d) +%d\n", m.A.Row, m.A.Col, m.B.Row, m.B.Col, st.LastGain)
		fmt.Print(gcore.RenderASCII(st))
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nLevel %d seed %d: %s with %d/%d points, %d moves left",
		flagSimLevel, seed, s.Status, s.Score, s.Level.TargetScore, s.MovesLeft)
	if stars := s.Stars(); stars > 0 {
		fmt.Printf(", %d stars", stars)
	}
	fmt.Println()
	return nil
}
