package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tri-hunt/internal/core"
	"github.com/vovakirdan/tri-hunt/internal/game"
)

// Smallest terminal the board is drawn on.
const (
	MinWidth  = 40
	MinHeight = 14
)

const (
	glyphCollectible = '▲'
	glyphObstacle    = '✶'
	glyphPlayer      = '▲'
	glyphPlayerBody  = '█'
)

// lowTime is when the timer turns red.
const lowTime = 10

// Board is the terminal renderer. Draw keeps the latest snapshot and Render
// paints it onto a screen buffer, so drawing never touches game state.
type Board struct {
	snap  game.Snapshot
	ready bool
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Draw implements loop.Renderer.
func (b *Board) Draw(snap game.Snapshot) {
	b.snap = snap
	b.ready = true
}

// Snapshot returns the last drawn snapshot and whether there is one.
func (b *Board) Snapshot() (game.Snapshot, bool) {
	return b.snap, b.ready
}

// Render paints the HUD, the arena border and every object onto s.
// Objects are painted player first, then collectibles, then obstacles;
// later shapes cover earlier ones.
func (b *Board) Render(s *core.Screen) {
	s.Clear()

	if s.Width() < MinWidth || s.Height() < MinHeight {
		drawTooSmall(s)
		return
	}

	// Row 0 is the HUD
	arena := s.Bounds()
	arena.Y, arena.H = 1, arena.H-1
	s.DrawBoxColored(arena, core.ColorGray)

	if !b.ready {
		return
	}

	b.drawHUD(s)

	field := arena.Inset(1)
	drawCircle(s, field, b.snap.Player, glyphPlayerBody, glyphPlayer)
	for _, c := range b.snap.Collectibles {
		drawCircle(s, field, c, glyphCollectible, glyphCollectible)
	}
	for _, o := range b.snap.Obstacles {
		drawCircle(s, field, o, glyphObstacle, glyphObstacle)
	}
}

func (b *Board) drawHUD(s *core.Screen) {
	timerColor := core.ColorBrightWhite
	if b.snap.TimeLeft <= lowTime {
		timerColor = core.ColorBrightRed
	}
	s.DrawTextColored(1, 0, b.snap.TimerText(), timerColor)

	collected := fmt.Sprintf("Collected: %d/%d", b.snap.Collected, b.snap.Total)
	s.DrawTextColored(s.Width()-len(collected)-1, 0, collected, core.ColorBrightYellow)
}

// drawCircle fills every cell of field whose center lies within c, and
// always the cell under c's center so small shapes stay visible.
func drawCircle(s *core.Screen, field core.Rect, c core.Circle, fill, center rune) {
	clr := core.TermColor(c.Color)

	left, top := toCell(field, core.Vec2{X: c.Pos.X - c.Radius, Y: c.Pos.Y + c.Radius})
	right, bottom := toCell(field, core.Vec2{X: c.Pos.X + c.Radius, Y: c.Pos.Y - c.Radius})

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if toBoard(field, col, row).Dist(c.Pos) <= c.Radius {
				s.SetColored(col, row, fill, clr)
			}
		}
	}

	col, row := toCell(field, c.Pos)
	s.SetColored(col, row, center, clr)
}

// toCell maps a board position onto the cell of field containing it.
// The board's y axis points up; screen rows grow down.
func toCell(field core.Rect, p core.Vec2) (col, row int) {
	col = field.X + int(math.Floor((p.X+1)/2*float64(field.W)))
	row = field.Y + int(math.Floor((1-p.Y)/2*float64(field.H)))
	return core.Clamp(col, field.X, field.Right()-1), core.Clamp(row, field.Y, field.Bottom()-1)
}

// toBoard returns the board position of the middle of a cell.
func toBoard(field core.Rect, col, row int) core.Vec2 {
	return core.Vec2{
		X: (float64(col-field.X)+0.5)/float64(field.W)*2 - 1,
		Y: 1 - (float64(row-field.Y)+0.5)/float64(field.H)*2,
	}
}

func drawTooSmall(s *core.Screen) {
	msg := fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight)
	s.DrawTextCentered(s.Height()/2, msg)
}

// Modal is the terminal messenger. It holds the text the frame loop asks
// to show until the player dismisses it.
type Modal struct {
	text    string
	visible bool
}

// Show implements loop.Messenger.
func (m *Modal) Show(msg string) {
	m.text = msg
	m.visible = true
}

// Dismiss hides the modal.
func (m *Modal) Dismiss() {
	m.visible = false
}

// Visible reports whether the modal is open.
func (m *Modal) Visible() bool {
	return m.visible
}

// Text returns the last shown text.
func (m *Modal) Text() string {
	return m.text
}

// drawModal draws text in a centered box over whatever is on s, with an
// optional footer line under it.
func drawModal(s *core.Screen, text, footer string) {
	maxInner := s.Width() - 8
	lines := wrapText(text, maxInner)

	width := len([]rune(footer))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	width = core.Min(width, maxInner)

	height := len(lines) + 2
	if footer != "" {
		height += 2
	}

	box := core.NewRect((s.Width()-width-4)/2, (s.Height()-height)/2, width+4, height)
	box.Y = core.Max(box.Y, 0)

	s.DrawRect(box, ' ')
	s.DrawBoxColored(box, core.ColorBrightYellow)
	for i, l := range lines {
		s.DrawTextColored(box.X+2, box.Y+1+i, l, core.ColorBrightWhite)
	}
	if footer != "" {
		s.DrawTextColored(box.X+2, box.Bottom()-2, footer, core.ColorGray)
	}
}

// wrapText breaks text into lines of at most width runes, keeping existing
// line breaks. Words longer than width are cut.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, w := range words {
			for len([]rune(w)) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				r := []rune(w)
				lines = append(lines, string(r[:width]))
				w = string(r[width:])
			}
			switch {
			case line == "":
				line = w
			case len([]rune(line))+1+len([]rune(w)) <= width:
				line += " " + w
			default:
				lines = append(lines, line)
				line = w
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
