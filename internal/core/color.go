package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
)
