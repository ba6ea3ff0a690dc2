package core_test

import (
	"testing"

	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

// scriptRNG replays a fixed sequence of Intn results and a constant float.
type scriptRNG struct {
	ints  []int
	i     int
	float float64
}

func (r *scriptRNG) Intn(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *scriptRNG) Float64() float64 {
	return r.float
}

// oneSwapRows has no runs. Swapping (0,2) with (1,2) completes exactly
// one run: L L L across row 0, columns 0-2.
var oneSwapRows = []string{
	"LLCDCLCL",
	"TSLSTSTS",
	"CDCDCDCD",
	"TSTSTSTS",
	"CDCDCDCD",
	"TSTSTSTS",
	"CDCDCDCD",
	"TSTSTSTS",
}

func mustParse(t *testing.T, rows []string, ids *core.IDGen) *core.Board {
	t.Helper()
	b, err := core.ParseBoard(rows, ids)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

// playingState builds an active session around a hand-made board.
func playingState(t *testing.T, rows []string, moves, target int) core.State {
	t.Helper()
	s := core.State{
		Level: core.LevelConfig{
			Level:       1,
			GridSize:    len(rows),
			Moves:       moves,
			TargetScore: target,
			GemKinds:    6,
		},
		MovesLeft: moves,
		Status:    core.StatusPlaying,
	}
	s.Board = mustParse(t, rows, &s.IDs)
	return s
}

// assertSettledBoard checks a board is full and every gem sits where it claims.
func assertSettledBoard(t *testing.T, b *core.Board) {
	t.Helper()
	seen := make(map[uint64]core.Pos)
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			g, ok := b.GemAt(core.P(r, c))
			if !ok {
				t.Fatalf("empty cell at (%d,%d)", r, c)
			}
			if g.Row != r || g.Col != c {
				t.Errorf("gem at (%d,%d) reports (%d,%d)", r, c, g.Row, g.Col)
			}
			if prev, dup := seen[g.ID]; dup {
				t.Errorf("gem id %d at both %v and (%d,%d)", g.ID, prev, r, c)
			}
			seen[g.ID] = core.P(r, c)
		}
	}
}
