package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length; trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap drops repeats of one sound closer than this
	MinSoundGap = 30 * time.Millisecond
)

// Shoot Sound Timing
const (
	ShootSoundNoteDuration = 40 * time.Millisecond
	ShootSoundAttack       = 2 * time.Millisecond
	ShootSoundRelease      = 25 * time.Millisecond
)

// Enemy Shoot Sound Timing
const (
	EnemyShootSoundDuration = 90 * time.Millisecond
	EnemyShootSoundAttack   = 5 * time.Millisecond
	EnemyShootSoundRelease  = 60 * time.Millisecond
)

// Explosion Sound Timing
const (
	ExplosionSoundDuration = 300 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 250 * time.Millisecond
)

// Player Hit Sound Timing
const (
	PlayerHitSoundDuration = 220 * time.Millisecond
	PlayerHitSoundAttack   = 5 * time.Millisecond
	PlayerHitSoundRelease  = 150 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundNoteDuration = 180 * time.Millisecond
	GameOverSoundAttack       = 5 * time.Millisecond
	GameOverSoundRelease      = 90 * time.Millisecond
)

// Start Sound Timing
const (
	StartSoundNoteDuration = 110 * time.Millisecond
	StartSoundAttack       = 5 * time.Millisecond
	StartSoundRelease      = 50 * time.Millisecond
)
