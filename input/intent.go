package input

// IntentType discriminates actions handled outside the simulation
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // Esc, Ctrl+C, Ctrl+Q
	IntentTogglePause // P
	IntentToggleMute  // M
	IntentResize      // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentTogglePause: "toggle_pause",
	IntentToggleMute:  "toggle_mute",
	IntentResize:      "resize",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
