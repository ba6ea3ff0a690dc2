package core

import (
	"fmt"
	"strings"
	"unicode"
)

// RenderBoardASCII draws the board one row per line.
//
// Format:
//   - empty cell: '.'
//   - plain gem: kind symbol L/C/T/S/H/D
//   - special gem: lowercase kind symbol
func RenderBoardASCII(b *Board) string {
	var sb strings.Builder
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			g, ok := b.GemAt(P(r, c))
			switch {
			case !ok:
				sb.WriteRune('.')
			case g.IsSpecial():
				sb.WriteRune(unicode.ToLower(g.Kind.Symbol()))
			default:
				sb.WriteRune(g.Kind.Symbol())
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderASCII draws a session: a status header followed by the board.
func RenderASCII(s State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Level %d | Score %d/%d | Moves %d | %s\n",
		s.Level.Level, s.Score, s.Level.TargetScore, s.MovesLeft, s.Status)
	if s.Board != nil {
		sb.WriteString(RenderBoardASCII(s.Board))
	}
	return sb.String()
}

// ParseBoard builds a board from rows in the RenderBoardASCII format.
// Lowercase symbols become bomb specials. IDs are drawn from ids.
func ParseBoard(rows []string, ids *IDGen) (*Board, error) {
	size := len(rows)
	b := NewBoard(size)
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != size {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", r, size, len(runes))
		}
		for c, ch := range runes {
			if ch == '.' {
				continue
			}
			k, ok := KindFromSymbol(unicode.ToUpper(ch))
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown symbol %q", r, c, ch)
			}
			g := Gem{ID: ids.Next(), Kind: k}
			if unicode.IsLower(ch) {
				g.Effect = EffectBomb
			}
			b.Set(P(r, c), g)
		}
	}
	return b, nil
}
