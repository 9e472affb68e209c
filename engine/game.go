package engine

import (
	"time"

	"github.com/lixenwraith/galaga/core"
)

// System is an interface that all gameplay systems must implement
type System interface {
	Update(ctx *GameContext, dt time.Duration)
	Priority() int // Lower values run first
}

// Game drives the phase machine and the gameplay systems
type Game struct {
	ctx     *GameContext
	systems []System

	clock    *PausableClock
	lastTick time.Time
	maxDelta time.Duration
}

// NewGame creates a game over ctx measuring frame time from source
// A nil source uses the system clock
func NewGame(ctx *GameContext, source Clock) *Game {
	clock := NewPausableClock(source)
	return &Game{
		ctx:      ctx,
		systems:  make([]System, 0),
		clock:    clock,
		lastTick: clock.Now(),
		maxDelta: ctx.Config.MaxDelta(),
	}
}

// AddSystem adds a system, keeping systems sorted by priority
// Systems of equal priority run in insertion order
func (g *Game) AddSystem(system System) {
	g.systems = append(g.systems, system)

	for i := len(g.systems) - 1; i > 0; i-- {
		if g.systems[i].Priority() >= g.systems[i-1].Priority() {
			break
		}
		g.systems[i], g.systems[i-1] = g.systems[i-1], g.systems[i]
	}
}

// Context returns the game context
func (g *Game) Context() *GameContext {
	return g.ctx
}

// Tick measures the time since the previous tick and steps the game
// The delta excludes paused time and is capped by the configured maximum
func (g *Game) Tick(in InputState) time.Duration {
	now := g.clock.Now()
	dt := now.Sub(g.lastTick)
	g.lastTick = now

	if dt < 0 {
		dt = 0
	}
	if g.maxDelta > 0 && dt > g.maxDelta {
		dt = g.maxDelta
	}

	g.Step(dt, in)
	return dt
}

// Step advances the simulation by one frame of dt
func (g *Game) Step(dt time.Duration, in InputState) {
	ctx := g.ctx
	ctx.Input = in
	ctx.State.FrameNumber++

	if ctx.State.Paused {
		return
	}

	switch ctx.State.Phase {
	case PhaseMenu:
		if in.Clicked && ctx.State.TransitionPhase(PhaseGamePlay) {
			ctx.PlaySound(core.SoundStart)
		}

	case PhaseGamePlay:
		for _, system := range g.systems {
			system.Update(ctx, dt)
			// A system that ended the game stops the rest of the frame
			if ctx.State.Phase != PhaseGamePlay {
				break
			}
		}

	case PhaseFinalScreen:
		if in.Clicked {
			ctx.ResetGame()
			if ctx.State.TransitionPhase(PhaseGamePlay) {
				ctx.PlaySound(core.SoundStart)
			}
		}
	}
}

// TogglePause pauses or resumes gameplay
// Only gameplay can be paused; returns the resulting pause state
func (g *Game) TogglePause() bool {
	state := g.ctx.State
	if !state.Paused && state.Phase != PhaseGamePlay {
		return false
	}

	state.Paused = !state.Paused
	if state.Paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
	return state.Paused
}

// Paused reports whether gameplay is paused
func (g *Game) Paused() bool {
	return g.ctx.State.Paused
}
