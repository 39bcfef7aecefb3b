package game

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/vovakirdan/tri-hunt/internal/core"
)

// ErrPlacementExhausted is returned when an object cannot be placed clear of
// the objects it must avoid within the configured number of attempts.
var ErrPlacementExhausted = errors.New("game: placement attempts exhausted")

// placer draws random positions until a candidate is clear of a set of circles.
type placer struct {
	rng         *rand.Rand
	maxAttempts int // 0 = unbounded
}

func newPlacer(rng *rand.Rand, maxAttempts int) *placer {
	return &placer{rng: rng, maxAttempts: maxAttempts}
}

// place returns a circle of the given radius whose center lies in
// [-1+margin, 1-margin] on both axes and which overlaps none of avoid.
// The color is drawn from the palette after the position is accepted.
func (p *placer) place(kind string, radius, margin float64, avoid []core.Circle) (core.Circle, error) {
	for attempt := 1; p.maxAttempts == 0 || attempt <= p.maxAttempts; attempt++ {
		c := core.Circle{
			Pos: core.Vec2{
				X: p.coord(margin),
				Y: p.coord(margin),
			},
			Radius: radius,
		}
		if isClear(c, avoid) {
			c.Color = p.paletteColor()
			return c, nil
		}
	}
	return core.Circle{}, fmt.Errorf("%w: %s (radius %v) after %d attempts", ErrPlacementExhausted, kind, radius, p.maxAttempts)
}

// coord draws uniformly from [-1+margin, 1-margin].
func (p *placer) coord(margin float64) float64 {
	return p.rng.Float64()*(2-2*margin) - (1 - margin)
}

func (p *placer) paletteColor() color.RGBA {
	return core.Palette[p.rng.Intn(len(core.Palette))]
}

func isClear(c core.Circle, avoid []core.Circle) bool {
	for _, o := range avoid {
		if c.Overlaps(o) {
			return false
		}
	}
	return true
}
