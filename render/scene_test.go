package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/engine"
	"github.com/lixenwraith/galaga/vmath"
)

type spriteCall struct {
	id  asset.SpriteID
	pos vmath.Vec2
}

type textCall struct {
	text string
	x, y float64
	c    color.RGBA
}

// recordingCanvas captures draw calls for inspection
type recordingCanvas struct {
	clears  []color.RGBA
	sprites []spriteCall
	texts   []textCall
	shown   int
}

func (r *recordingCanvas) Clear(bg color.RGBA) { r.clears = append(r.clears, bg) }

func (r *recordingCanvas) DrawSprite(id asset.SpriteID, topLeft vmath.Vec2) {
	r.sprites = append(r.sprites, spriteCall{id, topLeft})
}

func (r *recordingCanvas) DrawText(text string, x, y, size float64, c color.RGBA) {
	r.texts = append(r.texts, textCall{text, x, y, c})
}

func (r *recordingCanvas) Show() { r.shown++ }

func (r *recordingCanvas) hasText(s string) bool {
	for _, t := range r.texts {
		if t.text == s {
			return true
		}
	}
	return false
}

func (r *recordingCanvas) countSprites(id asset.SpriteID) int {
	n := 0
	for _, s := range r.sprites {
		if s.id == id {
			n++
		}
	}
	return n
}

func render(ctx *engine.GameContext) *recordingCanvas {
	c := &recordingCanvas{}
	Frame(ctx, c)
	return c
}

func TestFrameMenu(t *testing.T) {
	ctx := engine.NewTestGameContext(7)

	c := render(ctx)
	if len(c.clears) != 1 || c.clears[0] != RgbBackground {
		t.Errorf("Expected one sky blue clear, got %v", c.clears)
	}
	if c.shown != 1 {
		t.Errorf("Expected one Show, got %d", c.shown)
	}
	for _, want := range []string{"GALAGA", "Click to start", "Highscore: 7 points"} {
		if !c.hasText(want) {
			t.Errorf("Menu missing %q", want)
		}
	}
	if len(c.sprites) != 0 {
		t.Errorf("Menu must not draw sprites, got %d", len(c.sprites))
	}
}

func TestFramePromptBlinks(t *testing.T) {
	ctx := engine.NewTestGameContext(0)

	ctx.State.FrameNumber = promptBlinkFrames
	if render(ctx).hasText("Click to start") {
		t.Error("Expected prompt hidden during the off half of the blink")
	}

	ctx.State.FrameNumber = 2 * promptBlinkFrames
	if !render(ctx).hasText("Click to start") {
		t.Error("Expected prompt visible during the on half of the blink")
	}
}

func TestFrameGamePlay(t *testing.T) {
	ctx := engine.NewTestGameContext(0)
	ctx.State.TransitionPhase(engine.PhaseGamePlay)
	ctx.State.AddScore(3)
	ctx.Formation.Enemies[1][1].Active = false
	ctx.PlayerBullets.Acquire(vmath.V2(100, 400))
	ctx.EnemyBullets.Acquire(vmath.V2(200, 300))
	ctx.EnemyBullets.Acquire(vmath.V2(250, 300))

	c := render(ctx)

	if n := c.countSprites(asset.SpritePlayer); n != 1 {
		t.Errorf("Expected one player sprite, got %d", n)
	}
	aliens := c.countSprites(asset.SpriteAlien1) + c.countSprites(asset.SpriteAlien2) + c.countSprites(asset.SpriteAlien3)
	if aliens != 14 {
		t.Errorf("Expected 14 live enemies drawn, got %d", aliens)
	}
	if n := c.countSprites(asset.SpriteBullet); n != 3 {
		t.Errorf("Expected 3 bullets drawn, got %d", n)
	}
	if n := c.countSprites(asset.SpriteExplosion); n != 0 {
		t.Errorf("Explosion sprite must never be drawn, got %d", n)
	}

	// Player is centred on its X, bullets are anchored at their position
	if got := c.sprites[0]; got.id != asset.SpritePlayer || got.pos != vmath.V2(500, 600) {
		t.Errorf("Expected player first at (500, 600), got %+v", got)
	}
	if got := c.sprites[1]; got.id != asset.SpriteBullet || got.pos != vmath.V2(100, 400) {
		t.Errorf("Expected player bullet second at (100, 400), got %+v", got)
	}

	if !c.hasText("Life: 3") || !c.hasText("Score: 3") {
		t.Errorf("HUD missing, got %+v", c.texts)
	}
	if c.hasText("PAUSED") {
		t.Error("Pause overlay drawn while running")
	}
}

func TestFrameGamePlayDeadPlayerHidden(t *testing.T) {
	ctx := engine.NewTestGameContext(0)
	ctx.State.TransitionPhase(engine.PhaseGamePlay)
	ctx.Player.Active = false
	ctx.Player.Life = 0

	c := render(ctx)
	if c.countSprites(asset.SpritePlayer) != 0 {
		t.Error("Inactive player must not be drawn")
	}
	for _, txt := range c.texts {
		if strings.HasPrefix(txt.text, "Life:") && txt.c != RgbLifeLow {
			t.Errorf("Expected low-life colour, got %v", txt.c)
		}
	}
}

func TestFramePausedOverlay(t *testing.T) {
	ctx := engine.NewTestGameContext(0)
	ctx.State.TransitionPhase(engine.PhaseGamePlay)
	ctx.State.Paused = true

	c := render(ctx)
	if !c.hasText("PAUSED") {
		t.Error("Expected pause overlay")
	}
	if c.countSprites(asset.SpritePlayer) != 1 {
		t.Error("Paused frame must still show the playfield")
	}
}

// TestFrameFinalScreen verifies the run score and highscore are shown separately
func TestFrameFinalScreen(t *testing.T) {
	ctx := engine.NewTestGameContext(9)
	ctx.State.TransitionPhase(engine.PhaseGamePlay)
	ctx.State.AddScore(4)
	ctx.EndGame()

	c := render(ctx)
	for _, want := range []string{"GALAGA", "GAME OVER", "Score: 4 points", "Highscore: 9 points", "Click to start"} {
		if !c.hasText(want) {
			t.Errorf("Final screen missing %q, got %+v", want, c.texts)
		}
	}
}
