package core

// boosterReady reports whether booster b may be used on s.
func boosterReady(s State, b Booster) bool {
	return s.Active() && !s.InFlight && s.Boosters.Count(b) > 0
}

// consume spends one booster and records it in the pending delta.
func consume(s State, b Booster) State {
	s.Boosters = s.Boosters.Add(b, -1)
	s.Delta.BoostersUsed = s.Delta.BoostersUsed.Add(b, 1)
	s.Selected = nil
	return s
}

// UseBomb clears the 3x3 block centred on p, clamped to the board.
// Each cleared cell is worth a flat Rules.BombCellBonus. The board is
// refilled and a cascade check is started. Moves are not spent.
func (e *Engine) UseBomb(s State, p Pos) State {
	if !boosterReady(s, BoosterBomb) || !s.Board.InBounds(p) {
		return s
	}

	next := s.Board.Clone()
	next.ResetFlags()
	cleared := 0
	for r := p.Row - 1; r <= p.Row+1; r++ {
		for c := p.Col - 1; c <= p.Col+1; c++ {
			q := P(r, c)
			if next.Get(q).Filled {
				next.Clear(q)
				cleared++
			}
		}
	}
	return e.afterClear(consume(s, BoosterBomb), next, cleared*e.Rules.BombCellBonus)
}

// UseHammer removes the gem at p for a flat Rules.HammerBonus, then
// refills and starts a cascade check. Moves are not spent.
func (e *Engine) UseHammer(s State, p Pos) State {
	if !boosterReady(s, BoosterHammer) || !s.Board.InBounds(p) {
		return s
	}

	next := s.Board.Clone()
	next.ResetFlags()
	next.Clear(p)
	return e.afterClear(consume(s, BoosterHammer), next, e.Rules.HammerBonus)
}

// UseShuffle replaces the board with a freshly generated one.
// No points are awarded and no cascade is started.
func (e *Engine) UseShuffle(s State) State {
	if !boosterReady(s, BoosterShuffle) {
		return s
	}

	s = consume(s, BoosterShuffle)
	s.Board, s.GenStats = GenerateBoard(e.genParams(&s), e.RNG, &s.IDs)
	s.LastGain = 0
	return s
}

// afterClear refills a board with holes, credits the bonus and hands the
// result to the cascade loop starting at multiplier x1.
func (e *Engine) afterClear(s State, next *Board, bonus int) State {
	Collapse(next, e.spawner(&s))
	next.MarkMatched(FindMatches(next))
	s.Board = next
	s.Score += bonus
	s.LastGain = bonus
	s.Combo = 0
	s.InFlight = true
	return s
}
