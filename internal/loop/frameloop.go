// Package loop drives a game one display frame at a time: it measures elapsed
// time, samples held keys, advances the simulation and hands a snapshot to the
// renderer. Frontends own the frame scheduler and call Tick once per refresh.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tri-hunt/internal/core"
	"github.com/vovakirdan/tri-hunt/internal/game"
)

// DefaultStep is the distance the player moves per held key per tick.
const DefaultStep = 0.01

// Renderer draws a game snapshot. It must not keep references into the
// simulation and must tolerate being called every frame.
type Renderer interface {
	Draw(snap game.Snapshot)
}

// Messenger presents modal text: the rules at start and the end-of-game
// message. The frontend keeps the text up until it calls Acknowledge.
type Messenger interface {
	Show(msg string)
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Phase is the loop's lifecycle position. Phases only move forward.
type Phase int

const (
	PhaseIdle    Phase = iota // Created, Start not yet called
	PhaseRules                // Rules shown, waiting for acknowledgement
	PhaseRunning              // Ticking
	PhaseStopped              // Game ended, terminal message shown
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRules:
		return "rules"
	case PhaseRunning:
		return "running"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// FrameLoop owns the timing and input state of one game.
type FrameLoop struct {
	state     *game.State
	keys      *core.KeyState
	renderer  Renderer
	messenger Messenger
	clock     Clock
	logger    *log.Logger
	step      float64

	phase   Phase
	last    time.Time
	started time.Time
	ticks   int
}

// Option configures a FrameLoop.
type Option func(*FrameLoop)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(l *FrameLoop) { l.clock = c }
}

// WithLogger sets the logger for per-tick diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *FrameLoop) { l.logger = logger }
}

// WithStep sets the per-tick movement distance.
func WithStep(step float64) Option {
	return func(l *FrameLoop) { l.step = step }
}

// New creates a loop for the given game. keys is read every tick and is
// written by the frontend as key events arrive.
func New(state *game.State, keys *core.KeyState, r Renderer, m Messenger, opts ...Option) *FrameLoop {
	l := &FrameLoop{
		state:     state,
		keys:      keys,
		renderer:  r,
		messenger: m,
		clock:     SystemClock{},
		logger:    log.New(io.Discard),
		step:      DefaultStep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start shows the rules and draws the initial board. Ticks are held until
// the rules are acknowledged.
func (l *FrameLoop) Start() {
	if l.phase != PhaseIdle {
		return
	}
	l.phase = PhaseRules
	l.renderer.Draw(l.state.Snapshot())
	l.messenger.Show(game.Rules(l.state.TimeLimit()))
}

// Acknowledge dismisses the current modal. Dismissing the rules starts the
// clock; dismissing the end-of-game message changes nothing.
func (l *FrameLoop) Acknowledge() {
	if l.phase != PhaseRules {
		return
	}
	now := l.clock.Now()
	l.last = now
	l.started = now
	l.phase = PhaseRunning
	l.logger.Debug("game started", "time_limit", l.state.TimeLimit())
}

// Tick runs one frame and reports whether the frontend should schedule
// another. Once the game has ended the terminal message is shown exactly
// once and Tick returns false from then on.
func (l *FrameLoop) Tick() bool {
	switch l.phase {
	case PhaseRules:
		return true
	case PhaseRunning:
	default:
		return false
	}

	now := l.clock.Now()
	dt := now.Sub(l.last).Seconds()
	l.last = now

	if outcome := l.state.Outcome(); outcome.Terminal() {
		l.phase = PhaseStopped
		l.logger.Info("game over",
			"outcome", outcome.String(),
			"remaining", l.state.Remaining(),
			"time_left", l.state.TimeLeft(),
			"ticks", l.ticks,
		)
		l.messenger.Show(outcome.Message())
		return false
	}

	l.state.UpdateTime(dt)
	l.handleInput(now)
	l.ticks++

	player := l.state.Player().Pos
	l.logger.Debug("tick",
		"player_x", player.X,
		"player_y", player.Y,
		"collectibles", l.state.Remaining(),
		"obstacles", l.state.ObstacleCount(),
	)

	l.renderer.Draw(l.state.Snapshot())
	return true
}

// handleInput moves the player once per held key. Steps are per tick, not
// per second, and diagonal keys add up.
func (l *FrameLoop) handleInput(now time.Time) {
	for _, k := range core.DirectionKeys {
		if !l.keys.Held(k, now) {
			continue
		}
		d := k.Direction()
		l.state.UpdatePlayerPosition(d.X*l.step, d.Y*l.step)
	}
}

// Phase returns the current lifecycle phase.
func (l *FrameLoop) Phase() Phase {
	return l.phase
}

// State returns the game being driven.
func (l *FrameLoop) State() *game.State {
	return l.state
}

// Ticks returns how many frames advanced the simulation.
func (l *FrameLoop) Ticks() int {
	return l.ticks
}

// Elapsed returns the time between acknowledging the rules and the last tick.
func (l *FrameLoop) Elapsed() time.Duration {
	if l.started.IsZero() {
		return 0
	}
	return l.last.Sub(l.started)
}
