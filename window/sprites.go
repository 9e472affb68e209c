package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/galaga/asset"
)

// spritePixels rasterises the sprite's glyph art into RGBA pixels
// One pixel per half cell; returns the pixel buffer and its size
func spritePixels(s *asset.Sprite) ([]byte, int, int) {
	mask := s.Mask()
	h := len(mask)
	if h == 0 {
		return nil, 0, 0
	}
	w := len(mask[0])

	pix := make([]byte, w*h*4)
	for y, row := range mask {
		for x, on := range row {
			if !on {
				continue
			}
			i := (y*w + x) * 4
			pix[i] = s.Color.R
			pix[i+1] = s.Color.G
			pix[i+2] = s.Color.B
			pix[i+3] = s.Color.A
		}
	}
	return pix, w, h
}

// spriteAtlas holds one decoded image per sprite
type spriteAtlas struct {
	images map[asset.SpriteID]*ebiten.Image
}

func newSpriteAtlas() *spriteAtlas {
	a := &spriteAtlas{images: make(map[asset.SpriteID]*ebiten.Image)}
	for _, s := range asset.All() {
		pix, w, h := spritePixels(s)
		if w == 0 || h == 0 {
			continue
		}
		img := ebiten.NewImage(w, h)
		img.WritePixels(pix)
		a.images[s.ID] = img
	}
	return a
}

func (a *spriteAtlas) get(id asset.SpriteID) *ebiten.Image {
	return a.images[id]
}
