package engine

import "log"

// GamePhase represents the current screen of the game
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhaseGamePlay
	PhaseFinalScreen
)

// String returns the name of the phase
func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseGamePlay:
		return "GamePlay"
	case PhaseFinalScreen:
		return "FinalScreen"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseMenu:        {PhaseGamePlay},
	PhaseGamePlay:    {PhaseFinalScreen},
	PhaseFinalScreen: {PhaseGamePlay},
}

// GameState holds score and phase
// Mutated only from the simulation goroutine
type GameState struct {
	Score     int
	HighScore int // Never decreases within a process

	Phase           GamePhase
	PhaseStartFrame int64

	// Incremented every step, including paused and non-gameplay frames
	FrameNumber int64
	Paused      bool
}

// NewGameState creates the state shown on the menu
func NewGameState(highScore int) *GameState {
	if highScore < 0 {
		highScore = 0
	}
	return &GameState{
		HighScore: highScore,
		Phase:     PhaseMenu,
	}
}

// AddScore adds n points to the current run
func (gs *GameState) AddScore(n int) {
	gs.Score += n
}

// RecordHighScore folds the run score into the highscore
// Returns true when a new highscore was set
func (gs *GameState) RecordHighScore() bool {
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		return true
	}
	return false
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts to transition to a new phase with validation
// Returns true if transition succeeded, false if transition is invalid
func (gs *GameState) TransitionPhase(to GamePhase) bool {
	if !gs.CanTransition(gs.Phase, to) {
		log.Printf("Rejected phase transition %s -> %s", gs.Phase, to)
		return false
	}

	log.Printf("Phase %s -> %s at frame %d", gs.Phase, to, gs.FrameNumber)
	gs.Phase = to
	gs.PhaseStartFrame = gs.FrameNumber
	return true
}

// PhaseFrames returns how many frames the current phase has been active
func (gs *GameState) PhaseFrames() int64 {
	return gs.FrameNumber - gs.PhaseStartFrame
}
