package core_test

import (
	"context"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

func withBoosters(s core.State, inv core.Inventory) core.State {
	s.Boosters = inv
	return s
}

func TestBombLeavesMovesUntouched(t *testing.T) {
	e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(5)))
	s := withBoosters(playingState(t, oneSwapRows, 12, 5000), core.Inventory{Bomb: 2, Hammer: 1})

	s = e.UseBomb(s, core.P(3, 3))
	if s.MovesLeft != 12 {
		t.Errorf("MovesLeft = %d, want 12", s.MovesLeft)
	}
	if s.Boosters.Bomb != 1 {
		t.Errorf("Boosters.Bomb = %d, want 1", s.Boosters.Bomb)
	}
	if s.Delta.BoostersUsed.Bomb != 1 {
		t.Errorf("Delta.BoostersUsed.Bomb = %d, want 1", s.Delta.BoostersUsed.Bomb)
	}
	if s.Score != 90 {
		t.Errorf("Score = %d, want 90 for a full 3x3 clear", s.Score)
	}
	if !s.InFlight {
		t.Error("bomb should start a cascade check")
	}
	assertSettledBoard(t, s.Board)

	s, err := e.Settle(context.Background(), s)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if s.MovesLeft != 12 || s.Status != core.StatusPlaying {
		t.Errorf("after settle MovesLeft=%d Status=%v", s.MovesLeft, s.Status)
	}
	if core.HasMatch(s.Board) {
		t.Error("settled board still has runs")
	}
}

func TestBombClampsAtCorner(t *testing.T) {
	e := newScriptEngine(4, 5, 4, 5)
	s := withBoosters(playingState(t, oneSwapRows, 5, 5000), core.Inventory{Bomb: 1})

	s = e.UseBomb(s, core.P(0, 0))
	if s.Score != 40 {
		t.Errorf("Score = %d, want 40 for a clamped 2x2 clear", s.Score)
	}
	assertSettledBoard(t, s.Board)
}

func TestHammer(t *testing.T) {
	e := newScriptEngine(4)
	s := withBoosters(playingState(t, oneSwapRows, 5, 5000), core.Inventory{Hammer: 1})
	target, _ := s.Board.GemAt(core.P(7, 7))

	s = e.UseHammer(s, core.P(7, 7))
	if s.Score != 10 {
		t.Errorf("Score = %d, want 10", s.Score)
	}
	if s.Boosters.Hammer != 0 || s.Delta.BoostersUsed.Hammer != 1 {
		t.Errorf("hammer not consumed: %+v / %+v", s.Boosters, s.Delta.BoostersUsed)
	}
	if g, _ := s.Board.GemAt(core.P(7, 7)); g.ID == target.ID {
		t.Error("hammered gem still on the board")
	}
	assertSettledBoard(t, s.Board)
}

func TestShuffle(t *testing.T) {
	e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(11)))
	s := withBoosters(playingState(t, oneSwapRows, 5, 5000), core.Inventory{Shuffle: 1})
	before := s.Board.Clone()

	s = e.UseShuffle(s)
	if s.Board.Equal(before) {
		t.Error("shuffle kept the same board")
	}
	if s.Score != 0 || s.MovesLeft != 5 || s.InFlight {
		t.Errorf("shuffle should be free and inert: Score=%d MovesLeft=%d InFlight=%v", s.Score, s.MovesLeft, s.InFlight)
	}
	if s.Boosters.Shuffle != 0 || s.Delta.BoostersUsed.Shuffle != 1 {
		t.Errorf("shuffle not consumed: %+v", s.Boosters)
	}
	assertSettledBoard(t, s.Board)
}

func TestBoosterRejections(t *testing.T) {
	e := newScriptEngine(0)
	base := playingState(t, oneSwapRows, 5, 5000)

	testCases := []struct {
		name string
		s    core.State
		use  func(core.State) core.State
	}{
		{"bomb empty inventory", base, func(s core.State) core.State { return e.UseBomb(s, core.P(1, 1)) }},
		{"hammer empty inventory", base, func(s core.State) core.State { return e.UseHammer(s, core.P(1, 1)) }},
		{"shuffle empty inventory", base, func(s core.State) core.State { return e.UseShuffle(s) }},
		{"bomb out of bounds", withBoosters(base, core.Inventory{Bomb: 1}), func(s core.State) core.State { return e.UseBomb(s, core.P(-1, 0)) }},
		{"hammer out of bounds", withBoosters(base, core.Inventory{Hammer: 1}), func(s core.State) core.State { return e.UseHammer(s, core.P(0, 8)) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.use(tc.s)
			if !reflect.DeepEqual(got, tc.s) {
				t.Error("rejected booster changed state")
			}
		})
	}
}

func TestBoosterBonusCanWin(t *testing.T) {
	e := core.NewEngine(core.DefaultRules(), rand.New(rand.NewSource(2)))
	s := withBoosters(playingState(t, oneSwapRows, 5, 90), core.Inventory{Bomb: 1})

	s = e.UseBomb(s, core.P(4, 4))
	s, _ = e.Settle(context.Background(), s)
	if s.Status != core.StatusWon {
		t.Errorf("Status = %v, want won after reaching target with a bomb", s.Status)
	}
	if s.Delta.BoostersUsed.Bomb != 1 || s.Delta.UnlockedLevels != 2 {
		t.Errorf("Delta = %+v", s.Delta)
	}
}
