package core

// Spawner creates the gems that drop in from the top after a removal.
type Spawner struct {
	Kinds         int
	SpecialChance float64 // Probability that a new gem carries an effect
	RNG           RNG
	IDs           *IDGen
}

// Spawn draws one fresh gem. The kind is uniform over the first Kinds
// kinds; with probability SpecialChance it also gets a uniform effect.
func (s Spawner) Spawn() Gem {
	g := Gem{
		ID:   s.IDs.Next(),
		Kind: Kind(s.RNG.Intn(ClampKinds(s.Kinds))),
	}
	if s.SpecialChance > 0 && s.RNG.Float64() < s.SpecialChance {
		g.Effect = specialEffects[s.RNG.Intn(len(specialEffects))]
	}
	return g
}

// Compact drops gems within each column so every empty cell ends up
// above every filled one. Relative order inside a column is preserved.
// Gems that moved are flagged Falling. Returns the number of moved gems.
func Compact(b *Board) int {
	moved := 0
	for c := 0; c < b.Size; c++ {
		write := b.Size - 1
		for r := b.Size - 1; r >= 0; r-- {
			g, ok := b.GemAt(P(r, c))
			if !ok {
				continue
			}
			if r != write {
				g.Falling = true
				b.Set(P(write, c), g)
				b.Clear(P(r, c))
				moved++
			}
			write--
		}
	}
	return moved
}

// Refill fills every empty cell with a spawned gem, column by column and
// top to bottom. New gems are flagged New and Falling.
// Returns the number of gems created.
func Refill(b *Board, s Spawner) int {
	created := 0
	for c := 0; c < b.Size; c++ {
		for r := 0; r < b.Size; r++ {
			if b.Get(P(r, c)).Filled {
				continue
			}
			g := s.Spawn()
			g.New = true
			g.Falling = true
			b.Set(P(r, c), g)
			created++
		}
	}
	return created
}

// Collapse applies Compact followed by Refill.
func Collapse(b *Board, s Spawner) {
	Compact(b)
	Refill(b, s)
}
