package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/components"
	"github.com/lixenwraith/galaga/config"
	"github.com/lixenwraith/galaga/core"
	"github.com/lixenwraith/galaga/vmath"
)

// AudioPlayer is the sound sink the simulation reports events to
type AudioPlayer interface {
	Play(core.SoundType) bool
}

// GameContext owns every piece of mutable game state
// There is no package-level state; adapters receive the context explicitly
type GameContext struct {
	Config *config.Config
	State  *GameState

	Player        components.Character
	PlayerBullets *components.BulletPool
	EnemyBullets  *components.BulletPool
	Formation     *components.Formation

	Rand  *vmath.FastRand
	Input InputState // Snapshot of the frame being stepped

	// Nil means silent
	Audio AudioPlayer
}

// NewGameContext builds a fresh game on the menu screen
// A zero cfg.Seed seeds the enemy RNG from the wall clock
func NewGameContext(cfg *config.Config, highScore int) *GameContext {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx := &GameContext{
		Config: cfg,
		State:  NewGameState(highScore),
		Rand:   vmath.NewFastRand(seed),
	}

	ctx.PlayerBullets = components.NewBulletPool(cfg.Player.Bullets, cfg.Bullet.Speed, cfg.Screen.Height)
	ctx.EnemyBullets = components.NewBulletPool(cfg.Enemies.Bullets, cfg.Bullet.Speed, cfg.Screen.Height)

	ctx.Player = components.NewCharacter(
		vmath.V2(cfg.Player.StartX, cfg.Player.StartY),
		asset.SpritePlayer,
		ctx.PlayerBullets,
		-1,
		cfg.Player.Life,
	)
	ctx.Formation = components.NewFormation(
		vmath.V2(cfg.Enemies.OriginX, cfg.Enemies.OriginY),
		ctx.EnemyBullets,
		cfg.Enemies.Life,
	)

	return ctx
}

// PlaySound forwards s to the audio player if one is attached
func (ctx *GameContext) PlaySound(s core.SoundType) {
	if ctx.Audio != nil {
		ctx.Audio.Play(s)
	}
}

// ResetGame prepares a new run after the final screen
// Player bullets already in flight are left alone
func (ctx *GameContext) ResetGame() {
	ctx.Player.Reset()
	ctx.State.Score = 0
	ctx.Formation.Reset()
	ctx.EnemyBullets.Clear()
}

// EndGame records the highscore and moves to the final screen
// Win and loss are not distinguished
func (ctx *GameContext) EndGame() {
	if ctx.State.RecordHighScore() {
		log.Printf("New highscore: %d", ctx.State.HighScore)
	}
	if ctx.State.TransitionPhase(PhaseFinalScreen) {
		ctx.PlaySound(core.SoundGameOver)
	}
}
