package asset

import (
	"image/color"
	"unicode/utf8"
)

// SpriteID is a handle to a visual asset
// The simulation stores handles only; adapters own the decoded form
type SpriteID uint8

const (
	SpritePlayer SpriteID = iota
	SpriteAlien1
	SpriteAlien2
	SpriteAlien3
	SpriteBullet
	SpriteExplosion
	spriteCount
)

// Sprite describes one visual asset
// Width and Height are world units and drive collision bounds
// Glyphs is the terminal art; the window adapter rasterises the same art
type Sprite struct {
	ID     SpriteID
	Name   string
	Width  float64
	Height float64
	Color  color.RGBA
	Glyphs []string
}

var catalog = [spriteCount]Sprite{
	SpritePlayer: {
		ID:     SpritePlayer,
		Name:   "player",
		Width:  80,
		Height: 60,
		Color:  color.RGBA{R: 230, G: 240, B: 255, A: 255},
		Glyphs: []string{
			"   ▄▄   ",
			" ▄████▄ ",
			"████████",
		},
	},
	SpriteAlien1: {
		ID:     SpriteAlien1,
		Name:   "alien1",
		Width:  80,
		Height: 80,
		Color:  color.RGBA{R: 255, G: 90, B: 90, A: 255},
		Glyphs: []string{
			"  ▄██▄  ",
			" ▄█▀▀█▄ ",
			"█▀▄██▄▀█",
			" ▀    ▀ ",
		},
	},
	SpriteAlien2: {
		ID:     SpriteAlien2,
		Name:   "alien2",
		Width:  80,
		Height: 80,
		Color:  color.RGBA{R: 120, G: 255, B: 120, A: 255},
		Glyphs: []string{
			" ▀▄  ▄▀ ",
			"▄█▀██▀█▄",
			"█▀████▀█",
			"▀ ▀  ▀ ▀",
		},
	},
	SpriteAlien3: {
		ID:     SpriteAlien3,
		Name:   "alien3",
		Width:  80,
		Height: 80,
		Color:  color.RGBA{R: 200, G: 130, B: 255, A: 255},
		Glyphs: []string{
			" ▄████▄ ",
			"██▀██▀██",
			"▀▀████▀▀",
			" ▄▀  ▀▄ ",
		},
	},
	SpriteBullet: {
		ID:     SpriteBullet,
		Name:   "bullet",
		Width:  10,
		Height: 20,
		Color:  color.RGBA{R: 255, G: 230, B: 60, A: 255},
		Glyphs: []string{
			"█",
		},
	},
	SpriteExplosion: {
		ID:     SpriteExplosion,
		Name:   "explosion",
		Width:  80,
		Height: 80,
		Color:  color.RGBA{R: 255, G: 170, B: 40, A: 255},
		Glyphs: []string{
			" ▀▄  ▄▀ ",
			"▄ ▀██▀ ▄",
			"▀ ▄██▄ ▀",
			" ▄▀  ▀▄ ",
		},
	},
}

// Get returns the sprite for id
// Unknown ids resolve to the bullet sprite so callers never see nil
func Get(id SpriteID) *Sprite {
	if id >= spriteCount {
		return &catalog[SpriteBullet]
	}
	return &catalog[id]
}

// All returns every sprite in id order
func All() []*Sprite {
	out := make([]*Sprite, 0, spriteCount)
	for i := range catalog {
		out = append(out, &catalog[i])
	}
	return out
}

// AlienForRow maps a formation row to its enemy variant
func AlienForRow(row int) SpriteID {
	switch row {
	case 0:
		return SpriteAlien1
	case 1:
		return SpriteAlien2
	default:
		return SpriteAlien3
	}
}

func (id SpriteID) String() string {
	if id >= spriteCount {
		return "unknown"
	}
	return catalog[id].Name
}

// Cols returns the glyph art width in cells
func (s *Sprite) Cols() int {
	cols := 0
	for _, row := range s.Glyphs {
		if n := utf8.RuneCountInString(row); n > cols {
			cols = n
		}
	}
	return cols
}

// Rows returns the glyph art height in cells
func (s *Sprite) Rows() int {
	return len(s.Glyphs)
}

// Mask rasterises the glyph art at half-cell vertical resolution
// Result is [Rows*2][Cols]; half blocks fill one sub-row, other glyphs fill both
func (s *Sprite) Mask() [][]bool {
	cols := s.Cols()
	mask := make([][]bool, len(s.Glyphs)*2)
	for i := range mask {
		mask[i] = make([]bool, cols)
	}

	for y, row := range s.Glyphs {
		x := 0
		for _, r := range row {
			top, bottom := halves(r)
			mask[y*2][x] = top
			mask[y*2+1][x] = bottom
			x++
		}
	}
	return mask
}

func halves(r rune) (top, bottom bool) {
	switch r {
	case ' ':
		return false, false
	case '▀':
		return true, false
	case '▄':
		return false, true
	default:
		return true, true
	}
}
