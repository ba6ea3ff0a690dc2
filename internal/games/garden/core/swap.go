package core

// Select handles a click on a board cell.
// The first click selects, clicking the selection again clears it,
// clicking a neighbour attempts a swap and any other cell moves the
// selection there.
func (e *Engine) Select(s State, p Pos) State {
	if !s.Active() || s.InFlight || !s.Board.InBounds(p) {
		return s
	}
	if s.Selected == nil {
		s.Selected = &p
		return s
	}
	sel := *s.Selected
	switch {
	case sel == p:
		s.Selected = nil
	case sel.Adjacent(p):
		return e.AttemptSwap(s, sel, p)
	default:
		s.Selected = &p
	}
	return s
}

// AttemptSwap exchanges the gems at a and b if that creates a run.
// A swap without a run leaves the board untouched and costs nothing.
// A committed swap costs one move and starts a cascade.
func (e *Engine) AttemptSwap(s State, a, b Pos) State {
	if !s.Board.InBounds(a) || !s.Board.InBounds(b) {
		return s
	}
	if s.InFlight || !s.Active() {
		return s
	}
	if !a.Adjacent(b) {
		s.Selected = &b
		return s
	}

	next := s.Board.Clone()
	next.ResetFlags()
	next.swapPayload(a, b)
	matches := FindMatches(next)
	s.Selected = nil
	if len(matches) == 0 {
		return s
	}

	next.MarkMatched(matches)
	s.Board = next
	s.MovesLeft--
	s.Combo = 0
	s.LastGain = 0
	s.InFlight = true
	return s
}

// CanSwap reports whether swapping a and b would produce a run.
func CanSwap(b *Board, p, q Pos) bool {
	if !b.InBounds(p) || !b.InBounds(q) || !p.Adjacent(q) {
		return false
	}
	next := b.Clone()
	next.swapPayload(p, q)
	return HasMatch(next)
}

// Move is a candidate swap.
type Move struct {
	A, B Pos
}

// ValidMoves lists every swap that produces a run, scanning row-major
// and trying the right then the lower neighbour of each cell.
func ValidMoves(b *Board) []Move {
	var moves []Move
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			p := P(r, c)
			for _, q := range []Pos{P(r, c+1), P(r+1, c)} {
				if CanSwap(b, p, q) {
					moves = append(moves, Move{A: p, B: q})
				}
			}
		}
	}
	return moves
}

// BestMove picks the valid swap that clears the most cells on its first
// pass. Ties go to the earliest move in ValidMoves order.
func BestMove(b *Board) (Move, bool) {
	best, bestCount := Move{}, 0
	for _, m := range ValidMoves(b) {
		next := b.Clone()
		next.swapPayload(m.A, m.B)
		if n := len(FindMatches(next)); n > bestCount {
			best, bestCount = m, n
		}
	}
	return best, bestCount > 0
}
