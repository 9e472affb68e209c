package render

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/vmath"
)

// largeTextSize and above is letter-spaced so titles stand out in cells
const largeTextSize = 100

// TerminalCanvas draws world coordinates onto a tcell screen
// World units are scaled to the current cell grid on every call
type TerminalCanvas struct {
	screen tcell.Screen
	worldW float64
	worldH float64
	bg     tcell.Color
}

// NewTerminalCanvas creates a canvas mapping a worldW x worldH world onto screen
func NewTerminalCanvas(screen tcell.Screen, worldW, worldH float64) *TerminalCanvas {
	return &TerminalCanvas{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
		bg:     ToTcell(RgbBackground),
	}
}

// CellAt maps a world point to the cell containing it
func (t *TerminalCanvas) CellAt(p vmath.Vec2) (int, int) {
	cols, rows := t.screen.Size()
	x := int(math.Floor(p.X * float64(cols) / t.worldW))
	y := int(math.Floor(p.Y * float64(rows) / t.worldH))
	return x, y
}

// Clear fills every cell with the background colour
func (t *TerminalCanvas) Clear(bg color.RGBA) {
	t.bg = ToTcell(bg)
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.bg))
}

// DrawSprite draws the sprite's glyph art centred in its scaled footprint
// Blank art cells are transparent
func (t *TerminalCanvas) DrawSprite(id asset.SpriteID, topLeft vmath.Vec2) {
	s := asset.Get(id)
	x0, y0 := t.CellAt(topLeft)
	x1, y1 := t.CellAt(topLeft.Add(vmath.V2(s.Width, s.Height)))

	if pad := (x1 - x0 - s.Cols()) / 2; pad > 0 {
		x0 += pad
	}
	if pad := (y1 - y0 - s.Rows()) / 2; pad > 0 {
		y0 += pad
	}

	style := tcell.StyleDefault.Foreground(ToTcell(s.Color)).Background(t.bg)
	for r, row := range s.Glyphs {
		x := x0
		for _, ch := range row {
			if ch != ' ' {
				t.set(x, y0+r, ch, style)
			}
			x++
		}
	}
}

// DrawText writes text starting at the cell containing (x, y)
func (t *TerminalCanvas) DrawText(text string, x, y, size float64, c color.RGBA) {
	cx, cy := t.CellAt(vmath.V2(x, y))
	style := tcell.StyleDefault.Foreground(ToTcell(c)).Background(t.bg)
	if size >= largeTextSize {
		style = style.Bold(true)
		text = letterSpace(text)
	}

	for _, ch := range text {
		t.set(cx, cy, ch, style)
		cx++
	}
}

// Show presents the frame
func (t *TerminalCanvas) Show() {
	t.screen.Show()
}

func (t *TerminalCanvas) set(x, y int, ch rune, style tcell.Style) {
	cols, rows := t.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	t.screen.SetContent(x, y, ch, nil, style)
}

// letterSpace inserts a space between every rune
func letterSpace(s string) string {
	if s == "" {
		return s
	}
	out := make([]rune, 0, utf8.RuneCountInString(s)*2-1)
	for i, r := range s {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
