package core

// Color is a foreground colour for a screen cell. The platform maps each
// value onto an ANSI 256-colour code.
type Color uint8

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
	ColorOrange
	ColorGray
)

// Palette roles used by the runner renderer.
const (
	ColorGround   = ColorGray
	ColorCloud    = ColorWhite
	ColorHUD      = ColorBrightYellow
	ColorObstacle = ColorBrightGreen
	ColorFlyer    = ColorOrange
)
