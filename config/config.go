package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/galaga/constants"
)

// ErrInvalidConfig wraps every configuration load or validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Display modes
const (
	DisplayAuto     = "auto"
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
)

// Config holds every tunable of the game
type Config struct {
	Screen  ScreenConfig  `toml:"screen"`
	Player  PlayerConfig  `toml:"player"`
	Enemies EnemyConfig   `toml:"enemies"`
	Bullet  BulletConfig  `toml:"bullet"`
	Audio   AudioConfig   `toml:"audio"`
	Score   ScoreConfig   `toml:"score"`
	Display DisplayConfig `toml:"display"`

	Seed  uint64 `toml:"seed"` // 0 seeds from the wall clock
	Debug bool   `toml:"debug"`
}

type ScreenConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Title  string  `toml:"title"`
}

type PlayerConfig struct {
	Speed         float64 `toml:"speed"`
	ShootCooldown float64 `toml:"shoot_cooldown"` // seconds
	Life          int     `toml:"life"`
	StartX        float64 `toml:"start_x"`
	StartY        float64 `toml:"start_y"`
	Bullets       int     `toml:"bullets"`
}

type EnemyConfig struct {
	Speed            float64 `toml:"speed"`
	Descent          float64 `toml:"descent"`
	MinShootCooldown float64 `toml:"min_shoot_cooldown"` // seconds
	MaxShootCooldown float64 `toml:"max_shoot_cooldown"` // seconds
	Life             int     `toml:"life"`
	OriginX          float64 `toml:"origin_x"`
	OriginY          float64 `toml:"origin_y"`
	Bullets          int     `toml:"bullets"`
}

type BulletConfig struct {
	Speed float64 `toml:"speed"`
}

// AudioConfig holds sound settings; volumes are 0.0-1.0
type AudioConfig struct {
	Enabled       bool               `toml:"enabled"`
	MasterVolume  float64            `toml:"master_volume"`
	SampleRate    int                `toml:"sample_rate"`
	EffectVolumes map[string]float64 `toml:"effects"`
}

type ScoreConfig struct {
	File string `toml:"file"`
}

type DisplayConfig struct {
	Mode          string  `toml:"mode"`
	FPS           int     `toml:"fps"`
	KeyHoldMs     int     `toml:"key_hold_ms"`
	MaxFrameDelta float64 `toml:"max_frame_delta"` // seconds
}

// Default returns the arcade tuning
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  constants.ScreenWidth,
			Height: constants.ScreenHeight,
			Title:  constants.Title,
		},
		Player: PlayerConfig{
			Speed:         constants.PlayerSpeed,
			ShootCooldown: constants.PlayerShootCooldown,
			Life:          constants.PlayerLife,
			StartX:        constants.PlayerStartX,
			StartY:        constants.PlayerStartY,
			Bullets:       constants.PlayerBulletCount,
		},
		Enemies: EnemyConfig{
			Speed:            constants.EnemySpeed,
			Descent:          constants.EnemyDescent,
			MinShootCooldown: constants.EnemyMinShootCooldown,
			MaxShootCooldown: constants.EnemyMaxShootCooldown,
			Life:             constants.EnemyLife,
			OriginX:          constants.EnemyOriginX,
			OriginY:          constants.EnemyOriginY,
			Bullets:          constants.EnemyBulletCount,
		},
		Bullet: BulletConfig{
			Speed: constants.BulletSpeed,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
			EffectVolumes: map[string]float64{
				"shoot":       0.6,
				"enemy_shoot": 0.4,
				"explosion":   0.8,
				"player_hit":  1.0,
				"game_over":   0.8,
				"start":       0.6,
			},
		},
		Score: ScoreConfig{
			File: constants.ScoreFile,
		},
		Display: DisplayConfig{
			Mode:          DisplayAuto,
			FPS:           60,
			KeyHoldMs:     int(constants.KeyHoldWindow / time.Millisecond),
			MaxFrameDelta: constants.MaxFrameDelta.Seconds(),
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file and the environment
// An empty path skips the file stage
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
		log.Printf("Loaded configuration from %s", path)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from GALAGA_* environment variables
// Malformed values are ignored
func (c *Config) applyEnv() {
	if enabled := os.Getenv("GALAGA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("GALAGA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv("GALAGA_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if c.Audio.EffectVolumes == nil {
				c.Audio.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for name, v := range volumes {
				c.Audio.EffectVolumes[name] = v
			}
		}
	}

	if file := os.Getenv("GALAGA_SCORE_FILE"); file != "" {
		c.Score.File = file
	}

	if mode := os.Getenv("GALAGA_DISPLAY"); mode != "" {
		c.Display.Mode = strings.ToLower(mode)
	}

	if seed := os.Getenv("GALAGA_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Seed = val
		}
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	check(c.Player.Speed >= 0, "player.speed must not be negative")
	check(c.Player.ShootCooldown >= 0, "player.shoot_cooldown must not be negative")
	check(c.Player.Life > 0, "player.life must be positive")
	check(c.Player.Bullets >= 0, "player.bullets must not be negative")
	check(c.Enemies.Speed >= 0, "enemies.speed must not be negative")
	check(c.Enemies.MinShootCooldown >= 0, "enemies.min_shoot_cooldown must not be negative")
	check(c.Enemies.MinShootCooldown <= c.Enemies.MaxShootCooldown,
		"enemies.min_shoot_cooldown (%v) exceeds max_shoot_cooldown (%v)", c.Enemies.MinShootCooldown, c.Enemies.MaxShootCooldown)
	check(c.Enemies.Life > 0, "enemies.life must be positive")
	check(c.Enemies.Bullets >= 0, "enemies.bullets must not be negative")
	check(c.Bullet.Speed > 0, "bullet.speed must be positive")
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume must be within [0, 1]")
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive")
	for name, v := range c.Audio.EffectVolumes {
		check(v >= 0 && v <= 1, "audio.effects.%s must be within [0, 1]", name)
	}
	check(c.Score.File != "", "score.file must not be empty")
	switch c.Display.Mode {
	case DisplayAuto, DisplayTerminal, DisplayWindow:
	default:
		errs = append(errs, fmt.Errorf("display.mode %q is not one of auto, terminal, window", c.Display.Mode))
	}
	check(c.Display.FPS > 0, "display.fps must be positive")
	check(c.Display.KeyHoldMs > 0, "display.key_hold_ms must be positive")
	check(c.Display.MaxFrameDelta > 0, "display.max_frame_delta must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// FrameInterval returns the target duration of one frame
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// KeyHold returns how long a terminal key press is treated as held
func (c *Config) KeyHold() time.Duration {
	return time.Duration(c.Display.KeyHoldMs) * time.Millisecond
}

// MaxDelta returns the cap applied to a single simulation step
func (c *Config) MaxDelta() time.Duration {
	return time.Duration(c.Display.MaxFrameDelta * float64(time.Second))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
