package gui

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tri-hunt/internal/config"
	"github.com/vovakirdan/tri-hunt/internal/core"
	"github.com/vovakirdan/tri-hunt/internal/game"
	"github.com/vovakirdan/tri-hunt/internal/loop"
	"github.com/vovakirdan/tri-hunt/internal/storage"
)

// ErrGraphicsUnavailable is returned when no window can be opened.
var ErrGraphicsUnavailable = errors.New("gui: graphics unavailable")

// Default window size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// Options configure a desktop game.
type Options struct {
	Config  config.HuntConfig
	Runtime core.RuntimeConfig // ScreenW/ScreenH are the window size in pixels
	Player  string
	Store   *storage.Store // nil disables saving
	Logger  *log.Logger
}

// Window implements ebiten.Game around a frame loop.
type Window struct {
	opts    Options
	rng     *rand.Rand
	keys    *core.KeyState
	scene   *Scene
	loop    *loop.FrameLoop
	face    text.Face
	ticking bool // Whether the loop asked for another frame
	saved   bool
}

// NewWindow creates a window with a freshly placed game and shows the rules.
func NewWindow(opts Options) (*Window, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = DefaultWidth, DefaultHeight
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	w := &Window{
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Runtime.Seed)),
		keys:  core.NewKeyState(0),
		scene: &Scene{},
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
	if err := w.newGame(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Window) newGame() error {
	state, err := game.New(w.opts.Config, w.rng)
	if err != nil {
		return fmt.Errorf("gui: cannot start game: %w", err)
	}

	w.keys.ReleaseAll()
	w.scene.Dismiss()
	w.loop = loop.New(state, w.keys, w.scene, w.scene,
		loop.WithLogger(w.opts.Logger),
		loop.WithStep(w.opts.Config.Player.Step),
	)
	w.loop.Start()
	w.ticking = true
	w.saved = false
	return nil
}

// Update samples the keyboard and advances the loop one frame.
func (w *Window) Update() error {
	if justPressed(quitKeys) {
		return ebiten.Termination
	}

	w.sampleKeys(ebiten.IsKeyPressed, time.Now())
	return w.step(justPressed(confirmKeys), justPressed(restartKeys))
}

// sampleKeys records held directions only while the game runs, so a key
// held through the rules does not move the player on the first frame.
func (w *Window) sampleKeys(pressed func(ebiten.Key) bool, now time.Time) {
	if w.loop.Phase() != loop.PhaseRunning {
		return
	}
	syncKeys(w.keys, pressed, now)
}

// step applies this frame's edge-triggered keys and runs one tick.
func (w *Window) step(confirm, restart bool) error {
	phase := w.loop.Phase()

	if confirm && w.scene.Message() != "" {
		w.scene.Dismiss()
		w.loop.Acknowledge()
	}
	if restart && phase == loop.PhaseStopped {
		return w.newGame()
	}

	if w.ticking {
		w.ticking = w.loop.Tick()
	}
	if !w.ticking && w.loop.Phase() == loop.PhaseStopped && !w.saved {
		w.saveResult()
		w.saved = true
	}
	return nil
}

func (w *Window) saveResult() {
	if w.opts.Store == nil {
		return
	}

	result := storage.ResultFromSnapshot(w.opts.Player, w.loop.State().Snapshot(), w.loop.Elapsed())
	if _, err := w.opts.Store.SaveResult(result); err != nil {
		w.opts.Logger.Warn("could not save result", "error", err)
		return
	}
	w.opts.Logger.Info("result saved", "player", result.Player, "outcome", result.Outcome.String(), "score", result.Score, "frames", w.loop.Ticks())
}

// Draw paints the last snapshot and any open message.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap, ok := w.scene.Snapshot()
	if !ok {
		return
	}
	drawBoard(screen, snap)
	drawTimer(screen, w.face, snap)

	if msg := w.scene.Message(); msg != "" {
		stopped := w.loop.Phase() == loop.PhaseStopped
		drawMessage(screen, w.face, msg, messageHint(stopped, snap.Score()))
	}
}

// Layout uses the window size as the drawing surface, so the board
// stretches with the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and plays until it is closed.
func Run(opts Options) error {
	w, err := NewWindow(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(w.opts.Runtime.ScreenW, w.opts.Runtime.ScreenH)
	ebiten.SetWindowTitle("Triangle Hunt")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.Runtime.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("%w: %v", ErrGraphicsUnavailable, err)
	}
	return nil
}
