package core

// Color is a foreground color for a screen cell.
// The terminal front end maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
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
	ColorGray
	ColorDarkGray
	ColorBrightWhite
)

// Attr modifies how a cell is drawn.
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << iota // Emphasis
	AttrFaint                    // Darkened, e.g. stale blocks
	AttrReverse                  // Swapped fg/bg, e.g. preview highlight
)

// Has returns true if every bit of other is set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
