package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/vmath"
	"golang.org/x/image/font/basicfont"
)

// textUnit is the world text size drawn at 1x font scale
const textUnit = 26.0

// Canvas draws onto the ebiten screen image of the current frame
type Canvas struct {
	target *ebiten.Image
	atlas  *spriteAtlas
}

func newCanvas() *Canvas {
	return &Canvas{atlas: newSpriteAtlas()}
}

// begin sets the image the next frame is drawn on
func (c *Canvas) begin(screen *ebiten.Image) {
	c.target = screen
}

func (c *Canvas) Clear(bg color.RGBA) {
	c.target.Fill(bg)
}

// DrawSprite stretches the sprite image over its world footprint
func (c *Canvas) DrawSprite(id asset.SpriteID, topLeft vmath.Vec2) {
	img := c.atlas.get(id)
	if img == nil {
		return
	}
	s := asset.Get(id)
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.Width/float64(b.Dx()), s.Height/float64(b.Dy()))
	op.GeoM.Translate(topLeft.X, topLeft.Y)
	c.target.DrawImage(img, op)
}

// DrawText draws text with its top-left corner at (x, y)
func (c *Canvas) DrawText(s string, x, y, size float64, col color.RGBA) {
	face := basicfont.Face7x13
	scale := size / textUnit
	if scale < 1 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	// text.Draw positions the baseline, shift down by the ascent
	op.GeoM.Translate(0, float64(face.Metrics().Ascent.Ceil()))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.DrawWithOptions(c.target, s, face, op)
}

// Show is a no-op; ebiten presents the screen after Draw returns
func (c *Canvas) Show() {}
