package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tri-hunt/internal/core"
)

// directionBindings lists the physical keys for each direction.
var directionBindings = map[core.Key][]ebiten.Key{
	core.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

var (
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// syncKeys copies the keyboard into ks. The window reports real key-up,
// so keys are released as soon as no bound key is down.
func syncKeys(ks *core.KeyState, pressed func(ebiten.Key) bool, now time.Time) {
	for _, k := range core.DirectionKeys {
		if anyKey(directionBindings[k], pressed) {
			ks.Press(k, now)
		} else {
			ks.Release(k)
		}
	}
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

func justPressed(keys []ebiten.Key) bool {
	return anyKey(keys, inpututil.IsKeyJustPressed)
}
