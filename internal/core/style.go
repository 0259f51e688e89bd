package core

// Style tags a screen cell with how it should be drawn.
// The platform layer maps styles to terminal attributes.
type Style uint8

// Cell styles used by the clicker screens.
const (
	StyleDefault Style = iota
	StyleBorder
	StyleTitle
	StyleValue
	StyleHighlight
)

// Cell is a single character on the screen with its style.
type Cell struct {
	Rune  rune
	Style Style
}

// BoxGlyphs holds the runes used to outline a box.
type BoxGlyphs struct {
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	Horizontal, Vertical    rune
}
