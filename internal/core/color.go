package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The tetromino palette uses the first seven after
// ColorDefault, the rest are for frame chrome and text.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorCyan
	ColorBlue
	ColorOrange
	ColorRed
	ColorGreen
	ColorMagenta
	ColorWhite
	ColorGray
	ColorBrightWhite
)
