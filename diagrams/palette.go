// Package diagrams holds the hand-placed Exocortex layouts. Coordinates are
// literal; nothing here computes a layout.
package diagrams

import "exodiag/canvas"

const (
	Width  = 1920
	Height = 1080
)

// Layered diagram palette.
var (
	BG     = canvas.MustHex("#1a1a2e")
	FG     = canvas.MustHex("#eaeaea")
	Accent = canvas.MustHex("#00d4ff")
	Green  = canvas.MustHex("#00ff88")
	Purple = canvas.MustHex("#9b59b6")
	Orange = canvas.MustHex("#e74c3c")
	Blue   = canvas.MustHex("#3498db")
	Yellow = canvas.MustHex("#f1c40f")
	Pink   = canvas.MustHex("#ff69b4")
	Gray   = canvas.MustHex("#34495e")
)

// Section diagram palette.
var (
	Panel     = canvas.MustHex("#16213e")
	Component = canvas.MustHex("#0f3460")
	Highlight = canvas.MustHex("#e94560")
	Text      = canvas.MustHex("#ffffff")
	Secondary = canvas.MustHex("#533483")
	Success   = canvas.MustHex("#2ecc71")
	Info      = canvas.MustHex("#3498db")
	Warning   = canvas.MustHex("#f39c12")
)

// Overlay palette.
var (
	OverlayYellow = canvas.MustHex("#f1c400")
	Cyan          = canvas.MustHex("#00ffff")
)
