package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/galaga/engine"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorHold               // Gameplay key held for the hold window
	BehaviorClick              // Counts as a mouse click
	BehaviorSystem             // Emits an intent
)

// KeyEntry describes a key binding
type KeyEntry struct {
	Behavior KeyBehavior
	Key      engine.Key
	Intent   IntentType
}

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   {Behavior: BehaviorHold, Key: engine.KeyLeft},
			tcell.KeyRight:  {Behavior: BehaviorHold, Key: engine.KeyRight},
			tcell.KeyEnter:  {Behavior: BehaviorClick},
			tcell.KeyEscape: {Behavior: BehaviorSystem, Intent: IntentQuit},
			tcell.KeyCtrlC:  {Behavior: BehaviorSystem, Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Behavior: BehaviorSystem, Intent: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'a': {Behavior: BehaviorHold, Key: engine.KeyLeft},
			'd': {Behavior: BehaviorHold, Key: engine.KeyRight},
			' ': {Behavior: BehaviorHold, Key: engine.KeyFire},
			'p': {Behavior: BehaviorSystem, Intent: IntentTogglePause},
			'm': {Behavior: BehaviorSystem, Intent: IntentToggleMute},
		},
	}
}

// Lookup returns the binding for ev
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() != tcell.KeyRune {
		entry, ok := kt.SpecialKeys[ev.Key()]
		return entry, ok
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	entry, ok := kt.Runes[r]
	return entry, ok
}
