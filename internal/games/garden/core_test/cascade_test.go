package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

// maxCascadePasses bounds a single cascade on realistic boards.
const maxCascadePasses = 50

// runCascade steps s until it settles and returns the number of passes.
func runCascade(t *testing.T, e *core.Engine, s core.State) (core.State, int) {
	t.Helper()
	passes := 0
	for s.InFlight {
		s = e.Step(s)
		passes++
		if passes >= maxCascadePasses {
			t.Fatalf("cascade still running after %d passes", passes)
		}
	}
	return s, passes
}

func TestCascadesTerminate(t *testing.T) {
	for _, kinds := range []int{4, 5, 6} {
		for seed := int64(1); seed <= 40; seed++ {
			t.Run(fmt.Sprintf("kinds=%d/seed=%d", kinds, seed), func(t *testing.T) {
				e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(seed)))
				level := core.LevelConfig{Level: 1, GridSize: 8, Moves: 8, TargetScore: 1000000, GemKinds: kinds}
				s := e.StartLevel(level, core.DefaultProgress())

				for s.Active() && s.MovesLeft > 0 {
					m, ok := core.BestMove(s.Board)
					if !ok {
						break
					}
					score := s.Score
					s = e.AttemptSwap(s, m.A, m.B)
					if !s.InFlight {
						t.Fatalf("valid move %+v did not start a cascade", m)
					}

					var passes int
					s, passes = runCascade(t, e, s)
					if passes < 2 {
						t.Errorf("passes = %d, a match needs a scoring pass and a settling pass", passes)
					}
					if s.Combo != 0 || s.Score <= score {
						t.Errorf("after cascade Combo=%d score %d -> %d", s.Combo, score, s.Score)
					}
				}
			})
		}
	}
}

func TestBoosterCascadesTerminate(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(seed)))
		level := core.LevelConfig{Level: 1, GridSize: 8, Moves: 8, TargetScore: 1000000, GemKinds: 5}
		p := core.DefaultProgress()
		p.Boosters = core.Inventory{Bomb: 1, Hammer: 1}
		s := e.StartLevel(level, p)

		s = e.UseBomb(s, core.P(int(seed)%8, 4))
		s, _ = runCascade(t, e, s)
		s = e.UseHammer(s, core.P(7, int(seed)%8))
		s, _ = runCascade(t, e, s)

		if s.Boosters.Bomb != 0 || s.Boosters.Hammer != 0 {
			t.Errorf("seed %d: boosters not spent: %+v", seed, s.Boosters)
		}
	}
}
