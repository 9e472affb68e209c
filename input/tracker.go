package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/galaga/engine"
)

// clickButtons are the mouse buttons that advance the menu and final screen
const clickButtons = tcell.Button1 | tcell.Button2

// Tracker turns terminal events into per-frame input snapshots
// Terminals report presses and repeats but no releases, so a key counts as
// held until hold has elapsed since its last press or repeat
type Tracker struct {
	table *KeyTable
	hold  time.Duration

	lastSeen [engine.KeyCount]time.Time
	buttons  tcell.ButtonMask
	clicked  bool
}

// NewTracker creates a tracker with the default key table
func NewTracker(hold time.Duration) *Tracker {
	return &Tracker{
		table: DefaultKeyTable(),
		hold:  hold,
	}
}

// Handle consumes one terminal event at time now
// Returns the intent the caller must act on, IntentNone otherwise
func (t *Tracker) Handle(ev tcell.Event, now time.Time) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := t.table.Lookup(ev)
		if !ok {
			return IntentNone
		}
		switch entry.Behavior {
		case BehaviorHold:
			t.lastSeen[entry.Key] = now
		case BehaviorClick:
			t.clicked = true
		case BehaviorSystem:
			return entry.Intent
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons() & clickButtons
		// Only the press edge counts; tcell repeats the mask while held
		if pressed&^t.buttons != 0 {
			t.clicked = true
		}
		t.buttons = pressed

	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

// Snapshot returns the input state for the frame starting at now
// The pending click is consumed
func (t *Tracker) Snapshot(now time.Time) engine.InputState {
	var in engine.InputState
	for k := engine.Key(0); k < engine.KeyCount; k++ {
		seen := t.lastSeen[k]
		in.SetKey(k, !seen.IsZero() && now.Sub(seen) < t.hold)
	}
	in.Clicked = t.clicked
	t.clicked = false
	return in
}

// Release forgets every held key
// Used when the game pauses so movement does not resume on its own
func (t *Tracker) Release() {
	t.lastSeen = [engine.KeyCount]time.Time{}
}
