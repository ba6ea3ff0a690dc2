package garden

import "github.com/vovakirdan/garden-match/internal/games/garden/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	MovesLeft int
	Combo     int
	Status    string
	InFlight  bool
	Cursor    core.Pos
	Mode      Mode
	Board     string // ASCII rows, see core.RenderBoardASCII
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Level:     g.level,
		Score:     g.state.Score,
		MovesLeft: g.state.MovesLeft,
		Combo:     g.state.Combo,
		Status:    g.state.Status.String(),
		InFlight:  g.state.InFlight,
		Cursor:    g.cursor,
		Mode:      g.mode,
	}
	if g.noLives {
		snap.Status = "no_lives"
	}
	if g.state.Board != nil {
		snap.Board = core.RenderBoardASCII(g.state.Board)
	}
	return snap
}
