package engine

// Key identifies a gameplay key the simulation reads
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
	KeyCount
)

// InputState is the input snapshot for one frame
// Adapters build it; the simulation only reads it
type InputState struct {
	keys    [KeyCount]bool
	Clicked bool // Left or right button pressed this frame
}

// SetKey records whether k is held this frame
func (in *InputState) SetKey(k Key, down bool) {
	if k < KeyCount {
		in.keys[k] = down
	}
}

// KeyDown reports whether k is held this frame
func (in InputState) KeyDown(k Key) bool {
	return k < KeyCount && in.keys[k]
}
