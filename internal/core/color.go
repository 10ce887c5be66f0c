package core

// Color is a foreground color for a screen cell.
// Hosts map it to their own palette (ANSI codes in the terminal).
type Color uint8

// Palette used by the game renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorRed
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
)
