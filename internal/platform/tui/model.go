package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tri-hunt/internal/config"
	"github.com/vovakirdan/tri-hunt/internal/core"
	"github.com/vovakirdan/tri-hunt/internal/game"
	"github.com/vovakirdan/tri-hunt/internal/loop"
	"github.com/vovakirdan/tri-hunt/internal/storage"
)

var (
	// ErrNoTerminal is returned when stdout is not an interactive terminal.
	ErrNoTerminal = errors.New("tui: stdout is not a terminal")
	// ErrScreenTooSmall is returned when the terminal cannot fit the board.
	ErrScreenTooSmall = errors.New("tui: terminal too small")
)

// Options configure a terminal game.
type Options struct {
	Config   config.HuntConfig
	Runtime  core.RuntimeConfig
	Player   string         // Name results are stored under
	Store    *storage.Store // nil disables saving
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil uses stdout's color profile
}

// Model is the Bubble Tea model for one player's games. The frame loop
// owns the simulation; the model schedules its ticks, delivers key presses
// and paints what the loop last drew.
type Model struct {
	opts     Options
	rng      *rand.Rand
	keys     *core.KeyState
	keyMap   *KeyMapper
	board    *Board
	modal    *Modal
	loop     *loop.FrameLoop
	screen   *core.Screen
	output   *ScreenRenderer
	scores   ScoreboardModel
	inScores bool
	saved    bool // Whether the result of the current game has been stored
	quitting bool
	err      error
}

// NewModel creates a model with a freshly placed game.
func NewModel(opts Options) (Model, error) {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	m := Model{
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Runtime.Seed)),
		keys:   core.NewKeyState(opts.Config.Input.HoldWindow()),
		keyMap: NewKeyMapper(),
		board:  NewBoard(),
		modal:  &Modal{},
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		output: NewScreenRenderer(opts.Renderer),
	}
	if err := m.newGame(); err != nil {
		return Model{}, err
	}

	return m, nil
}

// newGame places a new game and wires a fresh loop to it.
// Consecutive games continue the same random sequence.
func (m *Model) newGame() error {
	state, err := game.New(m.opts.Config, m.rng)
	if err != nil {
		return fmt.Errorf("tui: cannot start game: %w", err)
	}

	m.keys.ReleaseAll()
	m.modal.Dismiss()
	m.loop = loop.New(state, m.keys, m.board, m.modal,
		loop.WithLogger(m.opts.Logger),
		loop.WithStep(m.opts.Config.Player.Step),
	)
	m.saved = false
	return nil
}

// Init shows the rules and starts the tick schedule.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inScores {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game keeps running; only the drawing surface changes.
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.inScores {
			return m.updateScores(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, k := m.keyMap.MapKey(msg)

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionConfirm:
		if m.modal.Visible() {
			m.modal.Dismiss()
			m.loop.Acknowledge()
		}

	case ActionMove:
		if m.loop.Phase() == loop.PhaseRunning {
			m.keys.Press(k, time.Now())
		}

	case ActionRestart:
		if m.loop.Phase() != loop.PhaseStopped {
			return m, nil
		}
		if err := m.newGame(); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.loop.Start()
		return m, tickCmd(m.opts.Runtime.TickRate)

	case ActionScores:
		if m.loop.Phase() == loop.PhaseStopped && m.opts.Store != nil {
			m.scores = NewScoreboardModel(m.opts.Store, m.opts.Renderer, m.screen.Width(), m.screen.Height(), true)
			m.inScores = true
		}
	}

	return m, nil
}

// updateScores forwards messages to the embedded scoreboard.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.inScores = false
	}
	return m, cmd
}

// handleTick runs one frame. The schedule stops with the loop; a restart
// starts a new one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Tick() {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	if m.loop.Phase() == loop.PhaseStopped && !m.saved {
		m.saveResult()
		m.saved = true
	}
	return m, nil
}

// saveResult stores the final snapshot. Storage failures only cost the
// leaderboard entry.
func (m *Model) saveResult() {
	if m.opts.Store == nil {
		return
	}

	snap := m.loop.State().Snapshot()
	result := storage.ResultFromSnapshot(m.opts.Player, snap, m.loop.Elapsed())
	if _, err := m.opts.Store.SaveResult(result); err != nil {
		m.opts.Logger.Warn("could not save result", "error", err)
		return
	}
	m.opts.Logger.Info("result saved", "player", result.Player, "outcome", result.Outcome.String(), "score", result.Score, "frames", m.loop.Ticks())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.inScores {
		return m.scores.View()
	}

	m.board.Render(m.screen)
	if m.screen.Width() >= MinWidth && m.screen.Height() >= MinHeight {
		m.drawOverlay()
	}

	return m.output.Render(m.screen)
}

// drawOverlay draws the open modal, or the key hints once the game ended.
func (m Model) drawOverlay() {
	phase := m.loop.Phase()

	if m.modal.Visible() {
		footer := "Enter: start"
		if phase == loop.PhaseStopped {
			footer = fmt.Sprintf("Score: %d   Enter: close", m.loop.State().Snapshot().Score())
		}
		drawModal(m.screen, m.modal.Text(), footer)
		return
	}

	if phase == loop.PhaseStopped {
		hint := "R: play again   Q: quit"
		if m.opts.Store != nil {
			hint = "R: play again   Tab: scores   Q: quit"
		}
		m.screen.DrawTextColored(2, m.screen.Height()-1, " "+hint+" ", core.ColorGray)
	}
}

// Outcome returns the outcome of the current game.
func (m Model) Outcome() game.Outcome {
	return m.loop.State().Outcome()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// CheckTerminal verifies that stdout is a terminal large enough for the
// board and returns its size.
func CheckTerminal() (width, height int, err error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNoTerminal
	}

	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoTerminal, err)
	}
	if width < MinWidth || height < MinHeight {
		return 0, 0, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrScreenTooSmall, width, height, MinWidth, MinHeight)
	}

	return width, height, nil
}

// Run plays in the current terminal until the player quits.
func Run(opts Options) error {
	width, height, err := CheckTerminal()
	if err != nil {
		return err
	}
	opts.Runtime.ScreenW = width
	opts.Runtime.ScreenH = height

	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
