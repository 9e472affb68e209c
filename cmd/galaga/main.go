package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lixenwraith/galaga/audio"
	"github.com/lixenwraith/galaga/config"
	"github.com/lixenwraith/galaga/core"
	"github.com/lixenwraith/galaga/engine"
	"github.com/lixenwraith/galaga/highscore"
	"github.com/lixenwraith/galaga/systems"
	"github.com/lixenwraith/galaga/terminal"
	"github.com/lixenwraith/galaga/window"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML configuration file")
	displayFlag = flag.String("display", "", "Display: auto, terminal, window (overrides config)")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/galaga.log")
	scoreFlag   = flag.String("score", "", "Highscore file path (overrides config)")
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug || *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	store := highscore.NewFileStore(cfg.Score.File)
	ctx := engine.NewGameContext(cfg, store.Load())
	core.OnCrash(func() {
		if err := store.Save(ctx.State.HighScore); err != nil {
			log.Printf("Highscore not saved on crash: %v", err)
		}
	})

	// Audio failure is never fatal
	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio))
	var muter window.Muter
	if err := sound.Initialize(); err == nil {
		ctx.Audio = sound
		muter = sound
		defer sound.Cleanup()
		core.OnCrash(sound.Cleanup)
	} else if !errors.Is(err, audio.ErrDisabled) {
		fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		log.Printf("Audio initialization failed: %v", err)
	}

	game := engine.NewGame(ctx, engine.NewTimeProvider())
	game.AddSystem(systems.NewPlayerSystem())
	game.AddSystem(systems.NewFormationSystem(ctx))

	display := resolveDisplay(cfg.Display.Mode, terminal.Interactive())
	log.Printf("Starting with %s display, highscore %d", display, ctx.State.HighScore)

	switch display {
	case config.DisplayWindow:
		err = window.New(game, muter).Run()
	default:
		err = runTerminal(game, muter)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Display failed: %v\n", err)
		return 1
	}

	// A failed save is reported but the session still ends cleanly
	if err := store.Save(ctx.State.HighScore); err != nil {
		log.Printf("Highscore not saved: %v", err)
		fmt.Fprintf(os.Stderr, "Highscore not saved: %v\n", err)
	}
	return 0
}

// loadConfig loads the configuration and applies command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	if *displayFlag != "" {
		cfg.Display.Mode = strings.ToLower(*displayFlag)
	}
	if *scoreFlag != "" {
		cfg.Score.File = *scoreFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDisplay picks the front-end; auto prefers the terminal on a TTY
func resolveDisplay(mode string, interactive bool) string {
	if mode != config.DisplayAuto {
		return mode
	}
	if interactive {
		return config.DisplayTerminal
	}
	return config.DisplayWindow
}
