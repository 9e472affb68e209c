package render

import (
	"image/color"

	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/vmath"
)

// Canvas is a drawing surface in world coordinates
// Implementations map the 1080x720 world onto their own resolution
type Canvas interface {
	// Clear fills the whole surface with bg
	Clear(bg color.RGBA)
	// DrawSprite draws sprite id with its top-left corner at topLeft
	DrawSprite(id asset.SpriteID, topLeft vmath.Vec2)
	// DrawText draws text with its top-left corner at (x, y); size is the nominal glyph height
	DrawText(text string, x, y, size float64, c color.RGBA)
	// Show presents the frame
	Show()
}
