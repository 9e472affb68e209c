// Package window runs the game in a desktop window using ebiten
package window

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/galaga/engine"
	"github.com/lixenwraith/galaga/render"
)

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
}

// keyBindings lists the ebiten keys behind each gameplay key
var keyBindings = [engine.KeyCount][]ebiten.Key{
	engine.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	engine.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	engine.KeyFire:  {ebiten.KeySpace},
}

// Window implements ebiten.Game around an engine.Game
type Window struct {
	game   *engine.Game
	canvas *Canvas
	muter  Muter
	width  int
	height int
}

// New creates a window adapter; muter may be nil
func New(game *engine.Game, muter Muter) *Window {
	cfg := game.Context().Config
	return &Window{
		game:   game,
		muter:  muter,
		width:  int(cfg.Screen.Width),
		height: int(cfg.Screen.Height),
	}
}

// Run opens the window and blocks until it is closed or Esc is pressed
func (w *Window) Run() error {
	cfg := w.game.Context().Config

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(cfg.Display.FPS)

	// Sprite images are decoded once before the loop starts
	w.canvas = newCanvas()

	log.Printf("Window display %dx%d at %d tps", w.width, w.height, cfg.Display.FPS)
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.game.TogglePause()
	}
	if w.muter != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.muter.ToggleMute()
	}

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	w.game.Tick(buildInput(ebiten.IsKeyPressed, clicked))
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.begin(screen)
	render.Frame(w.game.Context(), w.canvas)
}

// Layout keeps the logical screen at world size; ebiten scales on resize
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// buildInput snapshots gameplay keys through pressed
func buildInput(pressed func(ebiten.Key) bool, clicked bool) engine.InputState {
	var in engine.InputState
	for k, keys := range keyBindings {
		for _, key := range keys {
			if pressed(key) {
				in.SetKey(engine.Key(k), true)
				break
			}
		}
	}
	in.Clicked = clicked
	return in
}
