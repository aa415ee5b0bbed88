package core

// Color is a cell color as a hex string ("#21bf73") or an ANSI code ("1").
// The empty string means the terminal default.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorBlack   Color = "#000000"
)

// IsDefault reports whether c leaves the terminal color untouched.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
