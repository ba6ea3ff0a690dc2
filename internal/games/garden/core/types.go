// Package core provides the match-3 engine for Garden Match.
// This package is UI-agnostic and deterministic: every random draw goes
// through the RNG passed in by the caller.
package core

import "fmt"

// Kind is the matchable identity of a gem.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindCherry
	KindTulip
	KindSunflower
	KindHibiscus
	KindDaisy
	KindCount // Number of kinds, not a real kind
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindCherry:
		return "cherry"
	case KindTulip:
		return "tulip"
	case KindSunflower:
		return "sunflower"
	case KindHibiscus:
		return "hibiscus"
	case KindDaisy:
		return "daisy"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character ASCII representation.
func (k Kind) Symbol() rune {
	switch k {
	case KindLeaf:
		return 'L'
	case KindCherry:
		return 'C'
	case KindTulip:
		return 'T'
	case KindSunflower:
		return 'S'
	case KindHibiscus:
		return 'H'
	case KindDaisy:
		return 'D'
	default:
		return '?'
	}
}

// KindFromSymbol parses a symbol produced by Kind.Symbol.
func KindFromSymbol(r rune) (Kind, bool) {
	for k := Kind(0); k < KindCount; k++ {
		if k.Symbol() == r {
			return k, true
		}
	}
	return 0, false
}

// Effect is an optional special marker a gem carries.
// A gem holds exactly one Effect value, so it can never carry two.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectBomb
	EffectLightning
	EffectRainbow
)

// specialEffects lists the effects a refill may draw from.
var specialEffects = [...]Effect{EffectBomb, EffectLightning, EffectRainbow}

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectBomb:
		return "bomb"
	case EffectLightning:
		return "lightning"
	case EffectRainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// Gem is a single tile on the board.
// Row and Col always equal the cell the gem sits in.
type Gem struct {
	ID     uint64
	Kind   Kind
	Effect Effect
	Row    int
	Col    int

	// Transient presentation flags, reset at the start of every pass.
	Matched bool
	New     bool
	Falling bool
}

// IsSpecial reports whether the gem carries an effect.
func (g Gem) IsSpecial() bool {
	return g.Effect != EffectNone
}

// Cell is one board slot: empty or holding exactly one gem.
type Cell struct {
	Filled bool
	Gem    Gem // Valid only when Filled is true
}

// Pos is a board coordinate. Row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// P is shorthand for building a Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Adjacent reports whether two positions are orthogonal neighbours.
func (p Pos) Adjacent(o Pos) bool {
	dr := p.Row - o.Row
	dc := p.Col - o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// String returns "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// IDGen hands out gem identifiers unique within one session.
type IDGen struct {
	Last uint64
}

// Next returns a fresh identifier.
func (g *IDGen) Next() uint64 {
	g.Last++
	return g.Last
}

// RNG is the randomness source used by generation and refill.
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
	Float64() float64
}
