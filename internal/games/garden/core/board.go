package core

// Board is the square play field.
// Cells are stored in row-major order: index = row*Size + col.
type Board struct {
	Size  int
	Cells []Cell
}

// NewBoard creates an empty board.
func NewBoard(size int) *Board {
	if size < 0 {
		size = 0
	}
	return &Board{
		Size:  size,
		Cells: make([]Cell, size*size),
	}
}

func (b *Board) index(p Pos) int {
	return p.Row*b.Size + p.Col
}

// InBounds returns true if the position is on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.Size && p.Col >= 0 && p.Col < b.Size
}

// Get returns the cell at p. Out of bounds yields an empty cell.
func (b *Board) Get(p Pos) Cell {
	if !b.InBounds(p) {
		return Cell{}
	}
	return b.Cells[b.index(p)]
}

// GemAt returns the gem at p and whether the cell is filled.
func (b *Board) GemAt(p Pos) (Gem, bool) {
	c := b.Get(p)
	return c.Gem, c.Filled
}

// Set places a gem at p, rewriting its coordinates to match.
func (b *Board) Set(p Pos, g Gem) {
	if !b.InBounds(p) {
		return
	}
	g.Row, g.Col = p.Row, p.Col
	b.Cells[b.index(p)] = Cell{Filled: true, Gem: g}
}

// Clear empties the cell at p.
func (b *Board) Clear(p Pos) {
	if b.InBounds(p) {
		b.Cells[b.index(p)] = Cell{}
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Size: b.Size, Cells: cells}
}

// Equal returns true if both boards hold identical cells.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Size != other.Size || len(b.Cells) != len(other.Cells) {
		return false
	}
	for i, c := range b.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Full reports whether every cell holds a gem.
func (b *Board) Full() bool {
	for _, c := range b.Cells {
		if !c.Filled {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, c := range b.Cells {
		if !c.Filled {
			n++
		}
	}
	return n
}

// MarkMatched flags the gems at the given positions as Matched.
func (b *Board) MarkMatched(ps []Pos) {
	for _, p := range ps {
		if b.InBounds(p) && b.Cells[b.index(p)].Filled {
			b.Cells[b.index(p)].Gem.Matched = true
		}
	}
}

// ResetFlags clears the transient Matched, New and Falling flags.
func (b *Board) ResetFlags() {
	for i := range b.Cells {
		b.Cells[i].Gem.Matched = false
		b.Cells[i].Gem.New = false
		b.Cells[i].Gem.Falling = false
	}
}

// Kinds returns the kind grid, with -1 marking empty cells.
// Handy for compact assertions in tests and logs.
func (b *Board) Kinds() [][]int {
	out := make([][]int, b.Size)
	for r := 0; r < b.Size; r++ {
		out[r] = make([]int, b.Size)
		for c := 0; c < b.Size; c++ {
			cell := b.Get(P(r, c))
			if cell.Filled {
				out[r][c] = int(cell.Gem.Kind)
			} else {
				out[r][c] = -1
			}
		}
	}
	return out
}

// swapPayload exchanges the gems at a and b. Coordinates stay with the cells.
func (b *Board) swapPayload(a, p Pos) {
	ga, okA := b.GemAt(a)
	gb, okB := b.GemAt(p)
	if okB {
		b.Set(a, gb)
	} else {
		b.Clear(a)
	}
	if okA {
		b.Set(p, ga)
	} else {
		b.Clear(p)
	}
}
