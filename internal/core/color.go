package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// tilePalette colors tiles by their home row.
var tilePalette = []Color{
	ColorBrightCyan,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorOrange,
	ColorBrightMagenta,
	ColorBrightBlue,
}

// TileColor returns the color of a tile whose solved position is in homeRow.
func TileColor(homeRow int) Color {
	if homeRow < 0 {
		return ColorDefault
	}
	return tilePalette[homeRow%len(tilePalette)]
}
