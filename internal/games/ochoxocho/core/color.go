package core

// Color identifies a shape color. Rendering layers map it to terminal colors.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorYellow
	ColorOrange
	ColorRed
	ColorPink
	ColorPurple
	ColorBlue
	ColorCyan
	ColorTeal
	ColorGreen
	ColorLime
	ColorBrown
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorRed:
		return "red"
	case ColorPink:
		return "pink"
	case ColorPurple:
		return "purple"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorTeal:
		return "teal"
	case ColorGreen:
		return "green"
	case ColorLime:
		return "lime"
	case ColorBrown:
		return "brown"
	default:
		return "unknown"
	}
}
