package systems

import (
	"time"

	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/components"
	"github.com/lixenwraith/galaga/core"
	"github.com/lixenwraith/galaga/engine"
)

// FormationSystem sweeps the enemy grid side to side and fires enemy bullets
//
// When any enemy crosses a horizontal screen edge the formation reverses on the
// following frame. That frame only inverts the direction and nudges every live
// enemy one row step down and one sprite width inward; nothing else moves.
type FormationSystem struct {
	direction int  // +1 right, -1 left
	reversing bool // Reversal pending for the next frame

	shootTimer    float64
	shootCooldown float64

	active []components.Cell // Scratch list reused across frames
}

// NewFormationSystem creates a formation moving right with a random first cooldown
func NewFormationSystem(ctx *engine.GameContext) *FormationSystem {
	s := &FormationSystem{
		direction: 1,
		active:    make([]components.Cell, 0, components.FormationRows*components.FormationCols),
	}
	s.shootCooldown = s.nextCooldown(ctx)
	return s
}

// Priority returns the system's priority
func (s *FormationSystem) Priority() int {
	return 20
}

// Direction returns the current sweep direction
func (s *FormationSystem) Direction() int {
	return s.direction
}

// Update runs one gameplay frame for the formation
func (s *FormationSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	if s.reversing {
		s.reverse(ctx)
		return
	}

	sec := dt.Seconds()
	cfg := ctx.Config.Enemies
	width := ctx.Config.Screen.Width

	s.shootTimer += sec
	ctx.EnemyBullets.Advance(1, sec)

	// Enemies killed this frame still count; an empty grid ends the game next frame
	alive := 0
	crossed := false
	ctx.Formation.ForEachActive(func(_ components.Cell, e *components.Character) {
		e.Position.X += cfg.Speed * sec * float64(s.direction)

		if ResolveHits(ctx, e.Bound(), ctx.PlayerBullets, e, true) > 0 && !e.Active {
			ctx.PlaySound(core.SoundExplosion)
		}
		alive++

		if e.Position.X < 0 || e.Position.X > width {
			crossed = true
		}
	})

	if crossed {
		s.reversing = true
	}

	if alive == 0 {
		ctx.EndGame()
		return
	}

	if s.shootTimer > s.shootCooldown {
		s.shootTimer = 0
		s.shootCooldown = s.nextCooldown(ctx)
		s.fire(ctx)
	}
}

// reverse inverts the sweep and nudges every live enemy down and inward
func (s *FormationSystem) reverse(ctx *engine.GameContext) {
	s.direction = -s.direction
	step := asset.Get(asset.SpriteAlien1).Width
	descent := ctx.Config.Enemies.Descent

	ctx.Formation.ForEachActive(func(_ components.Cell, e *components.Character) {
		e.Position.Y += descent
		e.Position.X += float64(s.direction) * step
	})
	s.reversing = false
}

// fire picks a live enemy uniformly at random and fires from its position
func (s *FormationSystem) fire(ctx *engine.GameContext) {
	s.active = ctx.Formation.AppendActive(s.active[:0])
	if len(s.active) == 0 {
		return
	}

	cell := s.active[ctx.Rand.Intn(len(s.active))]
	if ctx.Formation.At(cell).Shoot() {
		ctx.PlaySound(core.SoundEnemyShoot)
	}
}

func (s *FormationSystem) nextCooldown(ctx *engine.GameContext) float64 {
	cfg := ctx.Config.Enemies
	return ctx.Rand.Range(cfg.MinShootCooldown, cfg.MaxShootCooldown)
}
