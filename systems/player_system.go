package systems

import (
	"time"

	"github.com/lixenwraith/galaga/constants"
	"github.com/lixenwraith/galaga/core"
	"github.com/lixenwraith/galaga/engine"
	"github.com/lixenwraith/galaga/vmath"
)

// PlayerSystem moves the ship, fires player bullets and applies enemy fire to the ship
type PlayerSystem struct {
	shotTimer float64 // Seconds since the last shot; survives restarts
}

// NewPlayerSystem creates a player system ready to fire on the first frame
func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{
		shotTimer: constants.PlayerInitialShotTimer,
	}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return 10 // Player resolves before the formation moves
}

// Update runs one gameplay frame for the player
func (s *PlayerSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	player := &ctx.Player

	// Death from the previous frame ends the run now
	if !player.Active {
		ctx.EndGame()
		return
	}

	sec := dt.Seconds()
	s.handleInput(ctx, sec)

	ctx.PlayerBullets.Advance(player.ShootDirection, sec)

	if ResolveHits(ctx, player.Bound(), ctx.EnemyBullets, player, false) > 0 {
		ctx.PlaySound(core.SoundPlayerHit)
	}
}

func (s *PlayerSystem) handleInput(ctx *engine.GameContext, sec float64) {
	player := &ctx.Player
	cfg := ctx.Config.Player
	in := ctx.Input

	s.shotTimer += sec

	// Right wins when both directions are held
	if in.KeyDown(engine.KeyRight) {
		player.Position.X += cfg.Speed * sec
	} else if in.KeyDown(engine.KeyLeft) {
		player.Position.X -= cfg.Speed * sec
	}
	player.Position.X = vmath.Clamp(player.Position.X, 0, ctx.Config.Screen.Width)

	if in.KeyDown(engine.KeyFire) && s.shotTimer > cfg.ShootCooldown {
		// Cooldown restarts even when the pool is full and the shot is dropped
		s.shotTimer = 0
		if player.Shoot() {
			ctx.PlaySound(core.SoundShoot)
		}
	}
}
