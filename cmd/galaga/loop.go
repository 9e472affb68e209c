package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/galaga/core"
	"github.com/lixenwraith/galaga/engine"
	"github.com/lixenwraith/galaga/input"
	"github.com/lixenwraith/galaga/render"
	"github.com/lixenwraith/galaga/window"
)

// runTerminal drives the game on a tcell screen until the player quits
func runTerminal(game *engine.Game, muter window.Muter) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	cfg := game.Context().Config
	canvas := render.NewTerminalCanvas(screen, cfg.Screen.Width, cfg.Screen.Height)
	tracker := input.NewTracker(cfg.KeyHold())

	cols, rows := screen.Size()
	log.Printf("Terminal display %dx%d cells at %d fps", cols, rows, cfg.Display.FPS)

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { pollEvents(screen.PollEvent, eventChan, done) })

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch tracker.Handle(ev, time.Now()) {
			case input.IntentQuit:
				log.Printf("Quit requested at frame %d", game.Context().State.FrameNumber)
				return nil
			case input.IntentTogglePause:
				if game.TogglePause() {
					tracker.Release()
				}
			case input.IntentToggleMute:
				if muter != nil {
					muter.ToggleMute()
				}
			case input.IntentResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			game.Tick(tracker.Snapshot(time.Now()))
			render.Frame(game.Context(), canvas)
		}
	}
}

// pollEvents forwards events until poll returns nil or done closes
// A pending send is abandoned once the loop has returned
func pollEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
