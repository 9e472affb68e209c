package render

import (
	"fmt"

	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/components"
	"github.com/lixenwraith/galaga/engine"
	"github.com/lixenwraith/galaga/vmath"
)

// promptBlinkFrames is the half-period of the "Click to start" blink
const promptBlinkFrames = 30

// Text sizes in world units
const (
	titleSize  = 150
	promptSize = 50
	hudSize    = 50
	finalSize  = 30
	bannerSize = 20
)

// Frame draws the current phase of ctx onto c and presents it
// It only reads game state and runs after the frame's update
func Frame(ctx *engine.GameContext, c Canvas) {
	c.Clear(RgbBackground)

	switch ctx.State.Phase {
	case engine.PhaseMenu:
		drawMenu(ctx, c)
	case engine.PhaseGamePlay:
		drawGamePlay(ctx, c)
		if ctx.State.Paused {
			drawPaused(ctx, c)
		}
	case engine.PhaseFinalScreen:
		drawFinalScreen(ctx, c)
	}

	c.Show()
}

func drawMenu(ctx *engine.GameContext, c Canvas) {
	cx := ctx.Config.Screen.Width / 2

	c.DrawText(ctx.Config.Screen.Title, cx-275, 50, titleSize, RgbText)
	if promptVisible(ctx.State.FrameNumber) {
		c.DrawText("Click to start", cx-125, 350, promptSize, RgbText)
	}
	c.DrawText(fmt.Sprintf("Highscore: %d points", ctx.State.HighScore), cx-250, 600, promptSize, RgbText)
}

func drawGamePlay(ctx *engine.GameContext, c Canvas) {
	if ctx.Player.Active {
		drawCharacter(c, &ctx.Player)
	}
	drawBullets(c, ctx.PlayerBullets)

	ctx.Formation.ForEachActive(func(_ components.Cell, e *components.Character) {
		drawCharacter(c, e)
	})
	drawBullets(c, ctx.EnemyBullets)

	lifeColor := RgbText
	if ctx.Player.Life <= 1 {
		lifeColor = RgbLifeLow
	}
	c.DrawText(fmt.Sprintf("Life: %d", ctx.Player.Life), 10, 10, hudSize, lifeColor)
	c.DrawText(fmt.Sprintf("Score: %d", ctx.State.Score), 10, 50, hudSize, RgbText)
}

func drawPaused(ctx *engine.GameContext, c Canvas) {
	cx := ctx.Config.Screen.Width / 2
	cy := ctx.Config.Screen.Height / 2

	c.DrawText("PAUSED", cx-100, cy-50, promptSize, RgbPaused)
	c.DrawText("Press P to resume", cx-100, cy+10, finalSize, RgbPaused)
}

func drawFinalScreen(ctx *engine.GameContext, c Canvas) {
	cx := ctx.Config.Screen.Width / 2

	c.DrawText(ctx.Config.Screen.Title, cx-275, 50, titleSize, RgbText)
	c.DrawText("GAME OVER", cx-100, 300, bannerSize, RgbText)
	c.DrawText(fmt.Sprintf("Score: %d points", ctx.State.Score), cx-100, 400, finalSize, RgbText)
	c.DrawText(fmt.Sprintf("Highscore: %d points", ctx.State.HighScore), cx-100, 500, finalSize, RgbText)
	if promptVisible(ctx.State.FrameNumber) {
		c.DrawText("Click to start", cx-125, 600, finalSize, RgbText)
	}
}

// drawCharacter draws a ship centred horizontally on its position
func drawCharacter(c Canvas, ch *components.Character) {
	s := asset.Get(ch.Sprite)
	c.DrawSprite(ch.Sprite, vmath.V2(ch.Position.X-s.Width/2, ch.Position.Y))
}

func drawBullets(c Canvas, pool *components.BulletPool) {
	for i := range pool.Bullets {
		b := &pool.Bullets[i]
		if b.Active {
			c.DrawSprite(b.Sprite, b.Position)
		}
	}
}

func promptVisible(frame int64) bool {
	return (frame/promptBlinkFrames)%2 == 0
}
