package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tri-hunt/internal/core"
	"github.com/vovakirdan/tri-hunt/internal/game"
)

var (
	backgroundColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	textColor       = color.Black
	shadeColor      = color.RGBA{A: 110}
	panelColor      = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	panelEdgeColor  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

const (
	timerScale = 2
	modalScale = 1.5
	lineHeight = 16 // basicfont Face7x13 line pitch
	panelPad   = 24
)

// outlines per object kind, in unit space.
var (
	collectibleOutline = core.TriangleOutline()
	obstacleOutline    = core.StarOutline(5)
	playerOutline      = core.PlayerOutline()
)

// toScreen maps a board position onto a w×h pixel surface, y pointing down.
func toScreen(p core.Vec2, w, h float64) (x, y float32) {
	return float32((p.X + 1) / 2 * w), float32((1 - p.Y) / 2 * h)
}

// shapePath builds the filled outline of c on a w×h surface.
func shapePath(outline []core.Vec2, c core.Circle, w, h float64) *vector.Path {
	var path vector.Path
	for i, p := range core.Place(outline, c.Pos, c.Radius) {
		x, y := toScreen(p, w, h)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

func fillShape(dst *ebiten.Image, outline []core.Vec2, c core.Circle) {
	b := dst.Bounds()
	path := shapePath(outline, c, float64(b.Dx()), float64(b.Dy()))

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c.Color)
	vector.FillPath(dst, path, &vector.FillOptions{}, op)
}

// drawBoard paints the objects of snap: player first, then collectibles,
// then obstacles.
func drawBoard(dst *ebiten.Image, snap game.Snapshot) {
	fillShape(dst, playerOutline, snap.Player)
	for _, c := range snap.Collectibles {
		fillShape(dst, collectibleOutline, c)
	}
	for _, o := range snap.Obstacles {
		fillShape(dst, obstacleOutline, o)
	}
}

func drawTimer(dst *ebiten.Image, face text.Face, snap game.Snapshot) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(timerScale, timerScale)
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, snap.TimerText(), face, op)
}

// drawMessage shades the board and shows msg on a centered panel, with a
// hint line under it.
func drawMessage(dst *ebiten.Image, face text.Face, msg, hint string) {
	b := dst.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	vector.FillRect(dst, 0, 0, sw, sh, shadeColor, false)

	body := msg
	if hint != "" {
		body += "\n\n" + hint
	}
	tw, th := text.Measure(body, face, lineHeight)
	pw := float32(tw*modalScale) + 2*panelPad
	ph := float32(th*modalScale) + 2*panelPad
	px, py := (sw-pw)/2, (sh-ph)/2

	vector.FillRect(dst, px-2, py-2, pw+4, ph+4, panelEdgeColor, false)
	vector.FillRect(dst, px, py, pw, ph, panelColor, false)

	op := &text.DrawOptions{}
	op.LineSpacing = lineHeight
	op.GeoM.Scale(modalScale, modalScale)
	op.GeoM.Translate(float64(px+panelPad), float64(py+panelPad))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, body, face, op)
}

// messageHint returns the key hint under the open message.
func messageHint(stopped bool, score int) string {
	if !stopped {
		return "Enter: start"
	}
	return fmt.Sprintf("Score: %d   Enter: close   R: play again   Esc: quit", score)
}
