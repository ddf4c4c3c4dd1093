package core

// Color represents a foreground color for a screen cell or sprite.
// Terminal hosts map it to ANSI 256-color codes, window hosts to RGBA.
type Color uint8

// Predefined colors for game elements.
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

// Name returns the CSS color name closest to c. Window hosts resolve it
// through an SVG color-name table.
func (c Color) Name() string {
	switch c {
	case ColorRed:
		return "firebrick"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "gold"
	case ColorBlue:
		return "royalblue"
	case ColorMagenta:
		return "darkmagenta"
	case ColorCyan:
		return "darkcyan"
	case ColorWhite:
		return "lightgray"
	case ColorBrightRed:
		return "red"
	case ColorBrightGreen:
		return "lime"
	case ColorBrightYellow:
		return "yellow"
	case ColorBrightBlue:
		return "deepskyblue"
	case ColorBrightMagenta:
		return "magenta"
	case ColorBrightCyan:
		return "cyan"
	case ColorBrightWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "white"
	}
}
