package core_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

func autoplayLevel() core.LevelConfig {
	return core.LevelConfig{Level: 1, GridSize: 8, Moves: 10, TargetScore: 1000000, GemKinds: 4}
}

func TestAutoplayRunsOutOfMoves(t *testing.T) {
	e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(3)))
	s := e.StartLevel(autoplayLevel(), core.DefaultProgress())

	swaps := 0
	s, err := e.Autoplay(context.Background(), s, 0, func(_ core.Move, st core.State) {
		swaps++
		if st.InFlight {
			t.Error("onMove saw a cascade in flight")
		}
	})
	if err != nil {
		t.Fatalf("Autoplay: %v", err)
	}

	if !s.Status.Terminal() {
		t.Fatalf("Status = %v, want a finished session", s.Status)
	}
	if s.Status == core.StatusLost && s.MovesLeft != 0 {
		t.Errorf("lost with %d moves left", s.MovesLeft)
	}
	if got := autoplayLevel().Moves - s.MovesLeft; got != swaps {
		t.Errorf("moves spent = %d, swaps reported = %d", got, swaps)
	}
}

func TestAutoplayDeterministic(t *testing.T) {
	play := func() core.State {
		e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(11)))
		s := e.StartLevel(autoplayLevel(), core.DefaultProgress())
		s, err := e.Autoplay(context.Background(), s, 0, nil)
		if err != nil {
			t.Fatalf("Autoplay: %v", err)
		}
		return s
	}

	a, b := play(), play()
	if a.Score != b.Score || a.Status != b.Status || core.RenderBoardASCII(a.Board) != core.RenderBoardASCII(b.Board) {
		t.Errorf("same seed gave different games: %d/%v vs %d/%v", a.Score, a.Status, b.Score, b.Status)
	}
}

func TestAutoplayMaxMoves(t *testing.T) {
	e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(5)))
	s := e.StartLevel(autoplayLevel(), core.DefaultProgress())

	swaps := 0
	s, err := e.Autoplay(context.Background(), s, 3, func(core.Move, core.State) { swaps++ })
	if err != nil {
		t.Fatalf("Autoplay: %v", err)
	}
	if swaps > 3 {
		t.Errorf("swaps = %d, want at most 3", swaps)
	}
	if swaps == 3 && s.MovesLeft != autoplayLevel().Moves-3 {
		t.Errorf("MovesLeft = %d, want %d", s.MovesLeft, autoplayLevel().Moves-3)
	}
}

func TestAutoplayCancelled(t *testing.T) {
	e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(5)))
	s := e.StartLevel(autoplayLevel(), core.DefaultProgress())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := e.Autoplay(ctx, s, 0, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if s.Status != core.StatusPlaying {
		t.Errorf("Status = %v, want playing", s.Status)
	}
}

func TestAutoplayAbandonsStuckBoard(t *testing.T) {
	e := newScriptEngine(0)
	// No kind appears three times, so no swap can complete a run.
	stuck := []string{
		"LCT",
		"SHD",
		"CTL",
	}
	s := playingState(t, stuck, 5, 300)
	if _, ok := core.BestMove(s.Board); ok {
		t.Fatal("test board should have no moves")
	}

	s, err := e.Autoplay(context.Background(), s, 0, nil)
	if err != nil {
		t.Fatalf("Autoplay: %v", err)
	}
	if s.Status != core.StatusAbandoned {
		t.Errorf("Status = %v, want abandoned", s.Status)
	}
}
