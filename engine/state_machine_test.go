package engine

import "testing"

// TestCanTransition tests the phase transition validation logic
func TestCanTransition(t *testing.T) {
	state := NewGameState(0)

	valid := []struct {
		from, to GamePhase
	}{
		{PhaseMenu, PhaseGamePlay},
		{PhaseGamePlay, PhaseFinalScreen},
		{PhaseFinalScreen, PhaseGamePlay},
	}
	for _, tc := range valid {
		if !state.CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be valid, but it was rejected", tc.from, tc.to)
		}
	}

	invalid := []struct {
		from, to GamePhase
		desc     string
	}{
		{PhaseMenu, PhaseFinalScreen, "Menu -> FinalScreen (must play first)"},
		{PhaseGamePlay, PhaseMenu, "GamePlay -> Menu (menu is only shown once)"},
		{PhaseFinalScreen, PhaseMenu, "FinalScreen -> Menu (restart goes straight to gameplay)"},
		{PhaseGamePlay, PhaseGamePlay, "GamePlay -> GamePlay (no self loop)"},
		{PhaseMenu, PhaseMenu, "Menu -> Menu (no self loop)"},
	}
	for _, tc := range invalid {
		if state.CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be invalid, but it was allowed (%s)", tc.from, tc.to, tc.desc)
		}
	}
}

func TestTransitionPhase(t *testing.T) {
	state := NewGameState(0)

	if state.Phase != PhaseMenu {
		t.Fatalf("Expected initial phase Menu, got %s", state.Phase)
	}

	if state.TransitionPhase(PhaseFinalScreen) {
		t.Error("Expected Menu -> FinalScreen to be rejected")
	}
	if state.Phase != PhaseMenu {
		t.Errorf("Rejected transition must not change phase, got %s", state.Phase)
	}

	state.FrameNumber = 10
	if !state.TransitionPhase(PhaseGamePlay) {
		t.Fatal("Expected Menu -> GamePlay to succeed")
	}
	if state.PhaseStartFrame != 10 {
		t.Errorf("Expected phase start frame 10, got %d", state.PhaseStartFrame)
	}

	state.FrameNumber = 25
	if state.PhaseFrames() != 15 {
		t.Errorf("Expected 15 frames in phase, got %d", state.PhaseFrames())
	}

	if !state.TransitionPhase(PhaseFinalScreen) {
		t.Fatal("Expected GamePlay -> FinalScreen to succeed")
	}
	if !state.TransitionPhase(PhaseGamePlay) {
		t.Fatal("Expected FinalScreen -> GamePlay to succeed")
	}
}

func TestGamePhaseString(t *testing.T) {
	tests := []struct {
		phase GamePhase
		want  string
	}{
		{PhaseMenu, "Menu"},
		{PhaseGamePlay, "GamePlay"},
		{PhaseFinalScreen, "FinalScreen"},
		{GamePhase(42), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.phase.String(); got != tc.want {
			t.Errorf("GamePhase(%d).String() = %q, want %q", tc.phase, got, tc.want)
		}
	}
}

func TestRecordHighScore(t *testing.T) {
	tests := []struct {
		name          string
		high, score   int
		wantHigh      int
		wantNewRecord bool
	}{
		{"score beats highscore", 3, 7, 7, true},
		{"score below highscore", 9, 4, 9, false},
		{"score ties highscore", 5, 5, 5, false},
		{"first run", 0, 1, 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := NewGameState(tc.high)
			state.AddScore(tc.score)
			if got := state.RecordHighScore(); got != tc.wantNewRecord {
				t.Errorf("RecordHighScore() = %v, want %v", got, tc.wantNewRecord)
			}
			if state.HighScore != tc.wantHigh {
				t.Errorf("HighScore = %d, want %d", state.HighScore, tc.wantHigh)
			}
		})
	}
}

func TestNewGameStateClampsNegativeHighScore(t *testing.T) {
	if hs := NewGameState(-5).HighScore; hs != 0 {
		t.Errorf("Expected negative highscore to become 0, got %d", hs)
	}
}
