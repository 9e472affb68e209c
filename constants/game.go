package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// KeyHoldWindow is how long a terminal key press counts as held
	// Terminals report presses and repeats only, never releases
	KeyHoldWindow = 150 * time.Millisecond
)

// Screen Constants (world units, the simulation's coordinate space)
const (
	ScreenWidth  = 1080
	ScreenHeight = 720

	Title = "GALAGA"
)

// Player Constants
const (
	PlayerSpeed         = 500.0
	PlayerShootCooldown = 1.0 // seconds between player shots
	PlayerLife          = 3
	PlayerStartX        = ScreenWidth / 2
	PlayerStartY        = 600
	PlayerBulletCount   = 5

	// PlayerInitialShotTimer lets the first shot of the process fire immediately
	PlayerInitialShotTimer = 10.0
)

// Enemy Constants
const (
	EnemySpeed            = 100.0
	EnemyDescent          = 1.0 // Y nudge applied on every direction reversal
	EnemyMinShootCooldown = 0.5
	EnemyMaxShootCooldown = 2.0
	EnemyLife             = 1
	EnemyOriginX          = 0
	EnemyOriginY          = -70
	EnemyBulletCount      = 10
)

// Formation dimensions, fixed for the run
const (
	FormationRows = 3
	FormationCols = 5
)

// Bullet Constants
const (
	BulletSpeed = 400.0
)

// Score Constants
const (
	ScoreFile = "data.txt"
)
