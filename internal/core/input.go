package core

import "time"

// Key identifies a directional input the simulation understands.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// DirectionKeys lists the keys sampled every tick, in sampling order.
var DirectionKeys = []Key{KeyUp, KeyDown, KeyLeft, KeyRight}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// Direction returns the unit movement for k, with y pointing up.
func (k Key) Direction() Vec2 {
	switch k {
	case KeyUp:
		return Vec2{Y: 1}
	case KeyDown:
		return Vec2{Y: -1}
	case KeyLeft:
		return Vec2{X: -1}
	case KeyRight:
		return Vec2{X: 1}
	default:
		return Vec2{}
	}
}

// KeyState maps keys to their held status.
//
// Press and Release mirror keyDown/keyUp notifications. Hosts that never
// deliver key-up (terminals only report presses and auto-repeat) set a hold
// window: a key then counts as held only while presses keep arriving within
// that window. A zero window keeps a key held until Release.
type KeyState struct {
	down       map[Key]bool
	lastPress  map[Key]time.Time
	holdWindow time.Duration
}

// NewKeyState creates an empty key map with the given hold window.
func NewKeyState(holdWindow time.Duration) *KeyState {
	return &KeyState{
		down:       make(map[Key]bool),
		lastPress:  make(map[Key]time.Time),
		holdWindow: holdWindow,
	}
}

// Press marks k as held, as of time at.
func (ks *KeyState) Press(k Key, at time.Time) {
	if k == KeyNone {
		return
	}
	ks.down[k] = true
	ks.lastPress[k] = at
}

// Release marks k as no longer held.
func (ks *KeyState) Release(k Key) {
	delete(ks.down, k)
	delete(ks.lastPress, k)
}

// ReleaseAll clears every held key.
func (ks *KeyState) ReleaseAll() {
	for k := range ks.down {
		ks.Release(k)
	}
}

// Held reports whether k is held at time now.
func (ks *KeyState) Held(k Key, now time.Time) bool {
	if !ks.down[k] {
		return false
	}
	if ks.holdWindow <= 0 {
		return true
	}
	return now.Sub(ks.lastPress[k]) < ks.holdWindow
}
