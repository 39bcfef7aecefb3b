package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tri-hunt/internal/game"
	"github.com/vovakirdan/tri-hunt/internal/storage"
)

const maxScores = 100 // Max results to load per view

// scoreView selects which list the scoreboard shows.
type scoreView int

const (
	viewTop scoreView = iota
	viewRecent
)

func (v scoreView) title() string {
	if v == viewRecent {
		return "RECENT GAMES"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
// Embedded in a game it hands control back on Back; standalone it quits.
type ScoreboardModel struct {
	store     *storage.Store
	view      scoreView
	results   []storage.Result
	stats     storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	embedded  bool
	quitting  bool
	goingBack bool
	styles    scoreboardStyles
}

// scoreboardStyles are built from one renderer so that SSH sessions get
// colors for the client's terminal.
type scoreboardStyles struct {
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	stats    lipgloss.Style
	frame    lipgloss.Style
	help     lipgloss.Style
	empty    lipgloss.Style
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return scoreboardStyles{
		renderer: r,
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		stats:    r.NewStyle().Foreground(lipgloss.Color("245")),
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		help:  r.NewStyle().Foreground(lipgloss.Color("241")),
		empty: r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	}
}

// helpStyles mirrors the help bubble's defaults on the given renderer.
func (st scoreboardStyles) helpStyles() help.Styles {
	r := st.renderer
	keyStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	descStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
	sepStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
	return help.Styles{
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		Ellipsis:       sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}

// tableStyles mirrors table.DefaultStyles on the given renderer.
func (st scoreboardStyles) tableStyles() table.Styles {
	r := st.renderer
	return table.Styles{
		Header: r.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true),
		Cell: r.NewStyle().Padding(0, 1),
		Selected: r.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// NewScoreboardModel creates a new scoreboard model. A nil r uses the
// process's standard output.
func NewScoreboardModel(store *storage.Store, r *lipgloss.Renderer, width, height int, embedded bool) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	styles := newScoreboardStyles(r)
	h.Styles = styles.helpStyles()

	m := ScoreboardModel{
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		embedded: embedded,
		styles:   styles,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Result", Width: 9},
		{Title: "Got", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Date", Width: 12},
	}

	// Narrow terminals drop the date
	if m.width < 70 {
		columns = columns[:5]
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for title, stats and help
	)

	t.SetStyles(m.styles.tableStyles())

	return t
}

// load reads the current view and the aggregate stats from the store.
func (m *ScoreboardModel) load() {
	m.results = nil
	m.loadErr = nil

	if m.store != nil {
		var results []storage.Result
		var err error
		if m.view == viewRecent {
			results, err = m.store.RecentResults(maxScores)
		} else {
			results, err = m.store.TopResults(maxScores)
		}
		if err != nil {
			m.loadErr = err
		} else {
			m.results = results
		}

		if stats, err := m.store.Stats(); err == nil {
			m.stats = stats
		}
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *ScoreboardModel) updateTableRows() {
	cols := len(m.table.Columns())
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			truncate(r.Player, 12),
			outcomeLabel(r.Outcome),
			fmt.Sprintf("%d/%d", r.Collected, r.Total),
			fmt.Sprintf("%d", r.Score),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		rows[i] = row[:cols]
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

func outcomeLabel(o game.Outcome) string {
	switch o {
	case game.Won:
		return "won"
	case game.LostToObstacle:
		return "crashed"
	case game.LostToTimeout:
		return "timeout"
	default:
		return "-"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewTop {
				m.view = viewRecent
			} else {
				m.view = viewTop
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.title.Render(centerText("TRIANGLE HUNT - "+m.view.title(), m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.stats.Render(centerText(statsLine(m.stats), m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.frame.Render(m.renderTableContent()))

	// Help bar
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes stored results on one line.
func statsLine(s storage.Stats) string {
	if s.GamesPlayed == 0 {
		return "No games played yet"
	}
	return fmt.Sprintf("Games %d  Won %d (%.0f%%)  Crashed %d  Timed out %d  Best %d",
		s.GamesPlayed, s.Wins, s.WinRate()*100, s.ObstacleLosses, s.TimeoutLosses, s.BestScore)
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := m.styles.empty

	switch {
	case m.store == nil:
		return emptyStyle.Render("Scores are not being saved.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No scores recorded yet.\nCollect every triangle to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, nil, width, height, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// centerText pads text with spaces so it sits in the middle of width columns.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
