package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot      SoundType = iota // Player fires
	SoundEnemyShoot                  // Formation fires
	SoundExplosion                   // Enemy destroyed
	SoundPlayerHit                   // Player loses a life
	SoundGameOver                    // Final screen reached
	SoundStart                       // Run begins
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundShoot:      "shoot",
	SoundEnemyShoot: "enemy_shoot",
	SoundExplosion:  "explosion",
	SoundPlayerHit:  "player_hit",
	SoundGameOver:   "game_over",
	SoundStart:      "start",
}

// String returns the config key of the sound
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
