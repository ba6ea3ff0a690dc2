package core

// Color is the style of a screen cell. Most values are plain foreground
// colors; the Hl* values also set a background and mark highlighted cells.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorPink
	ColorGray
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite

	HlCursor   // Board cursor
	HlSelected // Selected gem waiting for a partner
	HlMatched  // Gem about to be cleared
	HlHint     // Suggested move
)
