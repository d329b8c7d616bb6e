package core

// Color represents a foreground color for a screen cell.
// The terminal front end maps each value to an ANSI 256-color style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorBlue
	ColorCyan
	ColorGreen
	ColorBrightYellow
	ColorBrightWhite
)

// tileColors is indexed by tile exponent: 2 -> 1, 4 -> 2, ..., 2048 -> 11.
var tileColors = [...]Color{
	ColorGray,         // empty
	ColorWhite,        // 2
	ColorWhite,        // 4
	ColorYellow,       // 8
	ColorOrange,       // 16
	ColorOrange,       // 32
	ColorRed,          // 64
	ColorMagenta,      // 128
	ColorBlue,         // 256
	ColorCyan,         // 512
	ColorGreen,        // 1024
	ColorBrightYellow, // 2048
}

// TileColor returns the color for a tile value. Values beyond 2048 share
// the brightest color.
func TileColor(value int) Color {
	exp := 0
	for v := value; v > 1; v >>= 1 {
		exp++
	}
	if exp >= len(tileColors) {
		return ColorBrightWhite
	}
	return tileColors[exp]
}
