package core

// GenParams configures fresh board generation.
type GenParams struct {
	Size       int // Board edge length
	Kinds      int // Number of gem kinds in play (first N of KindCount)
	MaxRedraws int // Redraw attempts per cell before accepting a run
}

// DefaultGenParams returns the standard 8x8, six-kind configuration.
func DefaultGenParams() GenParams {
	return GenParams{
		Size:       8,
		Kinds:      int(KindCount),
		MaxRedraws: 10,
	}
}

// GenStats reports what happened during generation.
type GenStats struct {
	// Escapes counts cells where the redraw budget ran out and a
	// run-completing kind was accepted anyway.
	Escapes int
}

// ClampKinds restricts a kind count to [1, KindCount].
func ClampKinds(n int) int {
	if n < 1 {
		return 1
	}
	if n > int(KindCount) {
		return int(KindCount)
	}
	return n
}

// GenerateBoard fills a new board in row-major order.
// Each cell is drawn uniformly from the first Kinds kinds; a draw that
// would complete a horizontal run with the two cells to its left, or a
// vertical run with the two cells above, is redrawn up to MaxRedraws
// times. Generated gems never carry an effect.
func GenerateBoard(p GenParams, rng RNG, ids *IDGen) (*Board, GenStats) {
	kinds := ClampKinds(p.Kinds)
	b := NewBoard(p.Size)
	var stats GenStats

	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			k := Kind(rng.Intn(kinds))
			redraws := 0
			for completesRun(b, r, c, k) && redraws < p.MaxRedraws {
				k = Kind(rng.Intn(kinds))
				redraws++
			}
			if completesRun(b, r, c, k) {
				stats.Escapes++
			}
			b.Set(P(r, c), Gem{ID: ids.Next(), Kind: k})
		}
	}
	return b, stats
}

// completesRun reports whether placing k at (r, c) forms a run of three
// with already placed cells to the left or above.
func completesRun(b *Board, r, c int, k Kind) bool {
	if c >= 2 {
		l1, ok1 := b.GemAt(P(r, c-1))
		l2, ok2 := b.GemAt(P(r, c-2))
		if ok1 && ok2 && l1.Kind == k && l2.Kind == k {
			return true
		}
	}
	if r >= 2 {
		u1, ok1 := b.GemAt(P(r-1, c))
		u2, ok2 := b.GemAt(P(r-2, c))
		if ok1 && ok2 && u1.Kind == k && u2.Kind == k {
			return true
		}
	}
	return false
}
