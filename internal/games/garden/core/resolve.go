package core

// Resolution is the outcome of one resolve pass.
type Resolution struct {
	Board   *Board // Board after removal, gravity and refill
	Matched []Pos  // Positions removed this pass, row-major
	Gain    int    // Points earned this pass
	Found   bool   // False when the input board had no runs
}

// ResolveOnce runs a single resolve-remove-gravity-refill pass on a copy
// of b. The score multiplier for the pass is combo+1, so the first pass
// of a cascade scores at x1.
// When no run exists the returned board is an unmodified copy.
func ResolveOnce(b *Board, combo, basePoints int, s Spawner) Resolution {
	next := b.Clone()
	next.ResetFlags()

	matches := FindMatches(next)
	if len(matches) == 0 {
		return Resolution{Board: next}
	}

	gain := len(matches) * basePoints * (combo + 1)

	for _, p := range matches {
		next.Clear(p)
	}
	Collapse(next, s)

	return Resolution{
		Board:   next,
		Matched: matches,
		Gain:    gain,
		Found:   true,
	}
}
