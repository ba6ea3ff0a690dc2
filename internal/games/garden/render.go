package garden

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/garden-match/internal/core"
	"github.com/vovakirdan/garden-match/internal/games/garden/core"
)

const (
	cellW     = 3  // "[x]": cursor brackets around the gem glyph
	hudHeight = 4  // Lines above the board
	hudWidth  = 46 // Widest HUD line
)

// kindGlyphs and kindColors are indexed by core.Kind.
var (
	kindGlyphs = [core.KindCount]rune{'♣', '●', '♥', '✿', '❀', '✱'}
	kindColors = [core.KindCount]platformcore.Color{
		platformcore.ColorGreen,
		platformcore.ColorRed,
		platformcore.ColorPink,
		platformcore.ColorYellow,
		platformcore.ColorMagenta,
		platformcore.ColorBrightWhite,
	}
)

// effectGlyph replaces the kind glyph on special gems.
func effectGlyph(e core.Effect) rune {
	switch e {
	case core.EffectBomb:
		return '◆'
	case core.EffectLightning:
		return '↯'
	case core.EffectRainbow:
		return '★'
	default:
		return 0
	}
}

// gemGlyph returns the rune and color for a gem.
func gemGlyph(gem core.Gem) (rune, platformcore.Color) {
	if gem.Kind >= core.KindCount {
		return '?', platformcore.ColorGray
	}
	r := kindGlyphs[gem.Kind]
	if g := effectGlyph(gem.Effect); g != 0 {
		r = g
	}
	return r, kindColors[gem.Kind]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	if g.noLives {
		g.drawOverlay(dst, platformcore.ColorRed,
			"OUT OF LIVES",
			fmt.Sprintf("Refill for %d coins from the menu", core.LifeRefillPrice),
			"or claim your daily reward",
			"Q: Back")
		return
	}
	if g.state.Board == nil {
		return
	}

	boardX, boardY := g.boardOrigin()
	g.renderBoard(dst, boardX, boardY)
	g.renderControls(dst, boardY+g.state.Board.Size+2)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

// boardOrigin returns the top-left cell of the board frame.
func (g *Game) boardOrigin() (int, int) {
	frameW := g.state.Board.Size*cellW + 2
	return (g.screenW - frameW) / 2, hudHeight
}

// renderHUD draws level, score, moves and boosters.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.state
	title := fmt.Sprintf("Garden Match  Level %d/%d", g.level, g.opts.Levels.Count())
	dst.DrawTextCentered(0, title, platformcore.ColorBrightGreen)

	score := fmt.Sprintf("Score %d / %d", s.Score, s.Level.TargetScore)
	moves := fmt.Sprintf("Moves %d", s.MovesLeft)
	if s.Combo > 1 {
		moves += fmt.Sprintf("  Combo x%d", s.Combo)
	}
	dst.DrawTextCentered(1, score+"   "+moves, platformcore.ColorDefault)

	lives := fmt.Sprintf("Lives %d/%d  Coins %d", g.progress.Lives, g.progress.MaxLives, g.progress.Currency)
	dst.DrawTextCentered(2, lives, platformcore.ColorGray)

	b := s.Boosters
	boosters := fmt.Sprintf("[B]omb %d  Hamme[X] %d  [F] Shuffle %d", b.Bomb, b.Hammer, b.Shuffle)
	color := platformcore.ColorCyan
	switch g.mode {
	case ModeBomb:
		boosters = "BOMB armed: Space to detonate, Esc to cancel"
		color = platformcore.ColorOrange
	case ModeHammer:
		boosters = "HAMMER armed: Space to smash, Esc to cancel"
		color = platformcore.ColorOrange
	}
	dst.DrawTextCentered(3, boosters, color)
}

// renderBoard draws the framed grid with highlights.
func (g *Game) renderBoard(dst *platformcore.Screen, x0, y0 int) {
	b := g.state.Board
	frame := platformcore.NewRect(x0, y0, b.Size*cellW+2, b.Size+2)
	dst.DrawBox(frame, platformcore.ColorGray)

	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			p := core.P(r, c)
			x := x0 + 1 + c*cellW
			y := y0 + 1 + r

			cell := b.Get(p)
			if !cell.Filled {
				dst.SetColor(x+1, y, '·', platformcore.ColorGray)
			} else {
				glyph, color := gemGlyph(cell.Gem)
				switch {
				case cell.Gem.Matched:
					color = platformcore.HlMatched
				case g.isHint(p):
					color = platformcore.HlHint
				}
				dst.SetColor(x+1, y, glyph, color)
			}

			switch {
			case g.state.Selected != nil && *g.state.Selected == p:
				dst.SetColor(x, y, '[', platformcore.HlSelected)
				dst.SetColor(x+2, y, ']', platformcore.HlSelected)
			case g.cursor == p && g.state.Active():
				bracket := platformcore.HlCursor
				if g.mode != ModeSwap {
					bracket = platformcore.ColorOrange
				}
				dst.SetColor(x, y, '[', bracket)
				dst.SetColor(x+2, y, ']', bracket)
			}
		}
	}
}

func (g *Game) isHint(p core.Pos) bool {
	return g.hint != nil && (g.hint.A == p || g.hint.B == p)
}

// renderControls draws the key help below the board.
func (g *Game) renderControls(dst *platformcore.Screen, y int) {
	dst.DrawTextCentered(y, g.Controls(), platformcore.ColorGray)
}

// renderOverlays draws pause and result boxes.
func (g *Game) renderOverlays(dst *platformcore.Screen) {
	s := g.state
	switch {
	case g.paused:
		g.drawOverlay(dst, platformcore.ColorDefault, "PAUSED", "Press P to resume")
	case g.finished:
		g.drawOverlay(dst, platformcore.ColorBrightYellow,
			"GARDEN COMPLETE!",
			fmt.Sprintf("All %d levels cleared", g.opts.Levels.Count()),
			"R: Replay level  Q: Back")
	case s.Status == core.StatusWon:
		g.drawOverlay(dst, platformcore.ColorBrightGreen,
			"LEVEL COMPLETE!",
			starString(s.Stars()),
			fmt.Sprintf("Score %d  Coins +%d", s.Score, s.Delta.CurrencyEarned),
			"N: Next level  R: Replay  Q: Back")
	case s.Status == core.StatusLost:
		g.drawOverlay(dst, platformcore.ColorRed,
			"OUT OF MOVES",
			fmt.Sprintf("Score %d of %d", s.Score, s.Level.TargetScore),
			fmt.Sprintf("Lives left %d", g.progress.Lives),
			"R: Retry  Q: Back")
	}
}

// starString renders a 0-3 star rating.
func starString(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

// drawOverlay draws a centered box with the given lines.
func (g *Game) drawOverlay(dst *platformcore.Screen, color platformcore.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), boxW, boxH)

	dst.DrawBox(box, color)
	dst.FillRect(box.Inset(1), ' ', platformcore.ColorDefault)
	for i, line := range lines {
		c := platformcore.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextCentered(box.Y+1+i, line, c)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select | ?: Hint | P: Pause | Q: Quit"
}
