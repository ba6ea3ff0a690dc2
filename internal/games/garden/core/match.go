package core

// MinRun is the shortest line of equal kinds that counts as a match.
const MinRun = 3

// FindMatches returns every position belonging to a horizontal or vertical
// run of MinRun or more equal kinds. Positions are deduplicated and
// returned in row-major order. Effects do not affect equality.
func FindMatches(b *Board) []Pos {
	marked := make([]bool, len(b.Cells))

	// Rows
	for r := 0; r < b.Size; r++ {
		scanLine(b, marked, func(i int) Pos { return P(r, i) })
	}
	// Columns
	for c := 0; c < b.Size; c++ {
		scanLine(b, marked, func(i int) Pos { return P(i, c) })
	}

	var out []Pos
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			p := P(r, c)
			if marked[b.index(p)] {
				out = append(out, p)
			}
		}
	}
	return out
}

// HasMatch reports whether the board contains any run.
func HasMatch(b *Board) bool {
	return len(FindMatches(b)) > 0
}

// scanLine walks one row or column and marks runs of MinRun or more.
func scanLine(b *Board, marked []bool, at func(i int) Pos) {
	start := 0
	for i := 1; i <= b.Size; i++ {
		if i < b.Size && sameKind(b, at(start), at(i)) {
			continue
		}
		if i-start >= MinRun {
			if _, ok := b.GemAt(at(start)); ok {
				for j := start; j < i; j++ {
					marked[b.index(at(j))] = true
				}
			}
		}
		start = i
	}
}

// sameKind reports whether both cells are filled with the same kind.
func sameKind(b *Board, p, q Pos) bool {
	gp, okP := b.GemAt(p)
	gq, okQ := b.GemAt(q)
	return okP && okQ && gp.Kind == gq.Kind
}
