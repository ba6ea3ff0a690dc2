package core_test

import (
	"context"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

func newScriptEngine(ints ...int) *core.Engine {
	return core.NewEngine(core.DefaultRules(), &scriptRNG{ints: ints, float: 0.99})
}

func TestSingleMatchLastMoveLoses(t *testing.T) {
	// Refill draws H, D, L for row 0 columns 0-2, which forms no new run.
	e := newScriptEngine(4, 5, 0)
	s := playingState(t, oneSwapRows, 1, 300)

	s = e.AttemptSwap(s, core.P(0, 2), core.P(1, 2))
	if !s.InFlight {
		t.Fatal("committed swap should start a cascade")
	}
	if s.MovesLeft != 0 {
		t.Errorf("MovesLeft = %d, want 0", s.MovesLeft)
	}

	s, err := e.Settle(context.Background(), s)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	if s.Score != 30 {
		t.Errorf("Score = %d, want 30", s.Score)
	}
	if s.Status != core.StatusLost {
		t.Errorf("Status = %v, want lost", s.Status)
	}
	if s.InFlight || s.Combo != 0 {
		t.Errorf("InFlight=%v Combo=%d after settle", s.InFlight, s.Combo)
	}
	if s.Delta.LivesLost != 1 {
		t.Errorf("Delta.LivesLost = %d, want 1", s.Delta.LivesLost)
	}
	if got := core.RenderBoardASCII(s.Board)[:9]; got != "HDLDCLCL\n" {
		t.Errorf("row 0 after refill = %q", got)
	}
	assertSettledBoard(t, s.Board)
}

func TestWinBeatsLossOnLastMove(t *testing.T) {
	e := newScriptEngine(4, 5, 0)
	s := playingState(t, oneSwapRows, 1, 30)
	s.Level.Level = 4

	s = e.AttemptSwap(s, core.P(0, 2), core.P(1, 2))
	s, _ = e.Settle(context.Background(), s)

	if s.Status != core.StatusWon {
		t.Fatalf("Status = %v, want won", s.Status)
	}
	if s.Delta.LivesLost != 0 {
		t.Errorf("a win must not cost a life")
	}
	if s.Delta.UnlockedLevels != 5 {
		t.Errorf("Delta.UnlockedLevels = %d, want 5", s.Delta.UnlockedLevels)
	}
	if s.Delta.CurrencyEarned != 0 {
		t.Errorf("Delta.CurrencyEarned = %d, want 0 for 30 points", s.Delta.CurrencyEarned)
	}
	if s.Stars() != 1 {
		t.Errorf("Stars = %d, want 1", s.Stars())
	}
}

func TestWinRewardsOnlyAtFrontier(t *testing.T) {
	testCases := []struct {
		name         string
		unlocked     int
		wantUnlock   int
		wantCurrency int
	}{
		{"highest level", 4, 5, 5},
		{"replay", 7, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newScriptEngine(4, 5, 0)
			s := playingState(t, oneSwapRows, 3, 500)
			s.Level.Level = 4
			s.Score = 470
			s.UnlockedAtStart = tc.unlocked

			s = e.AttemptSwap(s, core.P(0, 2), core.P(1, 2))
			s, _ = e.Settle(context.Background(), s)

			if s.Status != core.StatusWon {
				t.Fatalf("Status = %v, want won", s.Status)
			}
			if s.Delta.UnlockedLevels != tc.wantUnlock {
				t.Errorf("Delta.UnlockedLevels = %d, want %d", s.Delta.UnlockedLevels, tc.wantUnlock)
			}
			if s.Delta.CurrencyEarned != tc.wantCurrency {
				t.Errorf("Delta.CurrencyEarned = %d, want %d", s.Delta.CurrencyEarned, tc.wantCurrency)
			}
			if s.Delta.ScoreEarned != 500 {
				t.Errorf("Delta.ScoreEarned = %d, want 500", s.Delta.ScoreEarned)
			}

			p := core.DefaultProgress()
			p.UnlockedLevels = tc.unlocked
			p.Currency = 100
			after := p.Apply(s.Delta)
			if after.Currency != 100+tc.wantCurrency {
				t.Errorf("currency after apply = %d", after.Currency)
			}
			if after.UnlockedLevels != max(tc.unlocked, tc.wantUnlock) {
				t.Errorf("unlocked after apply = %d", after.UnlockedLevels)
			}
		})
	}
}

func TestStartLevelRecordsFrontier(t *testing.T) {
	e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(4)))
	p := core.DefaultProgress()
	p.UnlockedLevels = 6
	s := e.StartLevel(core.LevelConfig{Level: 2, GridSize: 8, Moves: 20, TargetScore: 500, GemKinds: 5}, p)
	if s.UnlockedAtStart != 6 {
		t.Errorf("UnlockedAtStart = %d, want 6", s.UnlockedAtStart)
	}
}

func TestSwapWithoutMatchIsFree(t *testing.T) {
	e := newScriptEngine(0)
	s := playingState(t, oneSwapRows, 10, 300)
	before := s.Board.Clone()

	s.Selected = &core.Pos{Row: 3, Col: 3}
	s = e.AttemptSwap(s, core.P(3, 3), core.P(3, 4))

	if !s.Board.Equal(before) {
		t.Error("board changed after a swap without a match")
	}
	if s.MovesLeft != 10 {
		t.Errorf("MovesLeft = %d, want 10", s.MovesLeft)
	}
	if s.Selected != nil {
		t.Error("selection should be cleared")
	}
	if s.InFlight {
		t.Error("no cascade should start")
	}
}

func TestSwapRejections(t *testing.T) {
	e := newScriptEngine(0)
	base := playingState(t, oneSwapRows, 10, 300)

	t.Run("out of bounds", func(t *testing.T) {
		got := e.AttemptSwap(base, core.P(0, 7), core.P(0, 8))
		if !reflect.DeepEqual(got, base) {
			t.Error("out of bounds swap changed state")
		}
	})

	t.Run("not playing", func(t *testing.T) {
		s := base
		s.Status = core.StatusLost
		got := e.AttemptSwap(s, core.P(0, 2), core.P(1, 2))
		if !reflect.DeepEqual(got, s) {
			t.Error("swap on finished session changed state")
		}
	})

	t.Run("non adjacent moves selection", func(t *testing.T) {
		got := e.AttemptSwap(base, core.P(0, 0), core.P(2, 2))
		if got.Selected == nil || *got.Selected != core.P(2, 2) {
			t.Errorf("Selected = %v, want (2,2)", got.Selected)
		}
		if got.MovesLeft != base.MovesLeft || !got.Board.Equal(base.Board) {
			t.Error("non adjacent swap must not touch board or moves")
		}
	})
}

func TestReentrantSwapRejected(t *testing.T) {
	e := newScriptEngine(4, 5, 0)
	s := playingState(t, oneSwapRows, 5, 300)
	s = e.AttemptSwap(s, core.P(0, 2), core.P(1, 2))

	again := e.AttemptSwap(s, core.P(4, 0), core.P(4, 1))
	if !reflect.DeepEqual(again, s) {
		t.Error("swap accepted while a cascade is in flight")
	}
	if bombed := e.UseBomb(withBoosters(s, core.Inventory{Bomb: 1}), core.P(3, 3)); bombed.Score != s.Score || bombed.Boosters.Bomb != 1 {
		t.Error("bomb accepted while a cascade is in flight")
	}
}

func TestSelectFlow(t *testing.T) {
	e := newScriptEngine(4, 5, 0)
	s := playingState(t, oneSwapRows, 5, 300)

	s = e.Select(s, core.P(5, 5))
	if s.Selected == nil || *s.Selected != core.P(5, 5) {
		t.Fatalf("first click should select, got %v", s.Selected)
	}
	s = e.Select(s, core.P(5, 5))
	if s.Selected != nil {
		t.Fatal("second click on the same cell should deselect")
	}
	s = e.Select(s, core.P(0, 2))
	s = e.Select(s, core.P(6, 6))
	if s.Selected == nil || *s.Selected != core.P(6, 6) {
		t.Fatalf("distant click should move selection, got %v", s.Selected)
	}
	s = e.Select(s, core.P(0, 2))
	s = e.Select(s, core.P(1, 2))
	if !s.InFlight || s.MovesLeft != 4 {
		t.Errorf("adjacent click should commit the swap: InFlight=%v MovesLeft=%d", s.InFlight, s.MovesLeft)
	}
	if s.Selected != nil {
		t.Error("selection should clear after a swap")
	}
}

func TestCascadeMultiplierGrows(t *testing.T) {
	// The swap clears L L L in row 0. The refill drops C C C into the same
	// cells, a second run scored at x2, and the next refill H D H settles.
	rows := []string{
		"LLCD",
		"TSLS",
		"DTDT",
		"TDTD",
	}
	e := newScriptEngine(1, 1, 1, 4, 5, 4)
	s := playingState(t, rows, 3, 1000)

	s = e.AttemptSwap(s, core.P(0, 2), core.P(1, 2))
	s = e.Step(s)
	if s.Score != 30 || s.Combo != 1 {
		t.Fatalf("after pass 1: Score=%d Combo=%d, want 30/1", s.Score, s.Combo)
	}
	s = e.Step(s)
	if s.Score != 30+60 || s.Combo != 2 {
		t.Fatalf("after pass 2: Score=%d Combo=%d, want 90/2", s.Score, s.Combo)
	}
	s = e.Step(s)
	if s.InFlight || s.Combo != 0 || s.Status != core.StatusPlaying {
		t.Errorf("cascade should settle: InFlight=%v Combo=%d Status=%v", s.InFlight, s.Combo, s.Status)
	}
	if s.MovesLeft != 2 {
		t.Errorf("cascade passes must not spend moves, MovesLeft=%d", s.MovesLeft)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() core.State {
		e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(42)))
		level := core.LevelConfig{Level: 1, GridSize: 8, Moves: 10, TargetScore: 100000, GemKinds: 6, SpecialChance: 0.05}
		s := e.StartLevel(level, core.DefaultProgress())
		for s.Active() {
			m, ok := core.BestMove(s.Board)
			if !ok {
				break
			}
			s = e.AttemptSwap(s, m.A, m.B)
			s, _ = e.Settle(context.Background(), s)
		}
		return s
	}

	a, b := play(), play()
	if a.Score != b.Score {
		t.Errorf("scores differ: %d vs %d", a.Score, b.Score)
	}
	if !a.Board.Equal(b.Board) {
		t.Error("final boards differ for the same seed")
	}
	if a.Score == 0 {
		t.Error("autoplay should score something")
	}
}

func TestSettleHonoursCancel(t *testing.T) {
	e := newScriptEngine(4, 5, 0)
	s := playingState(t, oneSwapRows, 5, 300)
	s = e.AttemptSwap(s, core.P(0, 2), core.P(1, 2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := e.Settle(ctx, s)
	if err == nil {
		t.Fatal("expected context error")
	}
	if !reflect.DeepEqual(got, s) {
		t.Error("cancelled settle should not advance the cascade")
	}
}

func TestAbandonStopsCascade(t *testing.T) {
	e := newScriptEngine(4, 5, 0)
	s := playingState(t, oneSwapRows, 5, 300)
	s = e.AttemptSwap(s, core.P(0, 2), core.P(1, 2))

	s = e.Abandon(s)
	if s.Status != core.StatusAbandoned || s.InFlight {
		t.Fatalf("Status=%v InFlight=%v after Abandon", s.Status, s.InFlight)
	}
	after := e.Step(s)
	if !reflect.DeepEqual(after, s) {
		t.Error("Step after Abandon changed state")
	}
	if !s.Delta.IsZero() {
		t.Errorf("abandon should leave no delta, got %+v", s.Delta)
	}
}

func TestStartLevel(t *testing.T) {
	e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(9)))
	p := core.DefaultProgress()
	s := e.StartLevel(core.LevelConfig{Level: 3, GridSize: 8, Moves: 32, TargetScore: 500, GemKinds: 5}, p)

	if s.Status != core.StatusPlaying || s.MovesLeft != 32 || s.Score != 0 {
		t.Errorf("unexpected start state: %+v", s)
	}
	if s.Boosters != p.Boosters {
		t.Errorf("Boosters = %+v, want %+v", s.Boosters, p.Boosters)
	}
	assertSettledBoard(t, s.Board)
	if core.HasMatch(s.Board) && s.GenStats.Escapes == 0 {
		t.Error("fresh board has runs")
	}
}

func TestMoveSearch(t *testing.T) {
	var ids core.IDGen
	b := mustParse(t, oneSwapRows, &ids)

	if !core.CanSwap(b, core.P(0, 2), core.P(1, 2)) {
		t.Error("CanSwap should accept the completing swap")
	}
	if core.CanSwap(b, core.P(0, 0), core.P(0, 1)) {
		t.Error("swapping two equal gems cannot make a run")
	}
	if core.CanSwap(b, core.P(0, 2), core.P(2, 2)) {
		t.Error("CanSwap accepted non-neighbours")
	}
	if core.CanSwap(b, core.P(0, 7), core.P(0, 8)) {
		t.Error("CanSwap accepted an out-of-bounds cell")
	}

	moves := core.ValidMoves(b)
	found := false
	for _, m := range moves {
		if !core.CanSwap(b, m.A, m.B) {
			t.Errorf("ValidMoves listed %v which CanSwap rejects", m)
		}
		if m == (core.Move{A: core.P(0, 2), B: core.P(1, 2)}) {
			found = true
		}
	}
	if !found {
		t.Errorf("ValidMoves = %v, missing the (0,2)-(1,2) swap", moves)
	}

	best, ok := core.BestMove(b)
	if !ok || !core.CanSwap(b, best.A, best.B) {
		t.Errorf("BestMove = %v, %v", best, ok)
	}
	if before := core.RenderBoardASCII(b); before != strings.Join(oneSwapRows, "\n")+"\n" {
		t.Error("move search modified the board")
	}
}
