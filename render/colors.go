package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = color.RGBA{R: 102, G: 191, B: 255, A: 255} // Sky blue
	RgbText       = color.RGBA{R: 255, G: 255, B: 255, A: 255} // White
	RgbPaused     = color.RGBA{R: 255, G: 230, B: 60, A: 255}  // Amber overlay text
	RgbLifeLow    = color.RGBA{R: 255, G: 80, B: 80, A: 255}   // Life counter at one life
)

// ToTcell converts a palette colour for terminal output
func ToTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
