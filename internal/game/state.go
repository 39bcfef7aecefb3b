// Package game implements the Triangle Hunt simulation: object placement,
// player movement with boundary clamping, circle collisions, the countdown
// and the win/lose outcome. It knows nothing about input devices, timing
// sources or rendering.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tri-hunt/internal/config"
	"github.com/vovakirdan/tri-hunt/internal/core"
)

// State owns all simulation data of one game.
// Once the outcome is terminal, nothing in the state changes any more.
type State struct {
	player       core.Circle
	collectibles []core.Circle
	obstacles    []core.Circle
	timeLeft     float64
	timeLimit    float64
	total        int
	outcome      Outcome
}

// New creates a game with randomly placed objects.
// Collectibles are placed first, then obstacles clear of every collectible,
// then the player clear of every obstacle.
func New(cfg config.HuntConfig, rng *rand.Rand) (*State, error) {
	p := newPlacer(rng, cfg.Placement.MaxAttempts)

	collectibles := make([]core.Circle, 0, cfg.Collectibles.Count)
	for i := 0; i < cfg.Collectibles.Count; i++ {
		c, err := p.place("collectible", cfg.Collectibles.Radius, cfg.Collectibles.Radius, nil)
		if err != nil {
			return nil, err
		}
		collectibles = append(collectibles, c)
	}

	obstacles := make([]core.Circle, 0, cfg.Obstacles.Count)
	for i := 0; i < cfg.Obstacles.Count; i++ {
		o, err := p.place("obstacle", cfg.Obstacles.Radius, cfg.Obstacles.Radius, collectibles)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, o)
	}

	// The player is kept within the same half-radius margin movement clamps to.
	player, err := p.place("player", cfg.Player.Radius, cfg.Player.Radius/2, obstacles)
	if err != nil {
		return nil, err
	}
	player.Color = core.PlayerColor

	s := NewFromLayout(player, collectibles, obstacles, cfg.Timer.LimitSeconds)
	return s, nil
}

// NewFromLayout creates an ongoing game from explicit objects.
// The slices are copied.
func NewFromLayout(player core.Circle, collectibles, obstacles []core.Circle, timeLeft float64) *State {
	return &State{
		player:       player,
		collectibles: append([]core.Circle(nil), collectibles...),
		obstacles:    append([]core.Circle(nil), obstacles...),
		timeLeft:     timeLeft,
		timeLimit:    timeLeft,
		total:        len(collectibles),
		outcome:      Ongoing,
	}
}

// UpdatePlayerPosition moves the player by (dx, dy), keeps it on the board
// and resolves collisions at the new position.
//
// The board margin is half the player radius on each axis.
func (s *State) UpdatePlayerPosition(dx, dy float64) {
	if s.outcome.Terminal() {
		return
	}

	next := s.player.Pos.Add(core.Vec2{X: dx, Y: dy})
	newX, newY := next.X, next.Y
	half := s.player.Radius / 2

	switch {
	case newX-half < -1:
		s.player.Pos.X = -1 + half
	case newX+half > 1:
		s.player.Pos.X = 1 - half
	default:
		s.player.Pos.X = newX
	}

	switch {
	case newY-half < -1:
		s.player.Pos.Y = -1 + half
	case newY+half > 1:
		s.player.Pos.Y = 1 - half
	default:
		s.player.Pos.Y = newY
	}

	s.CheckCollisions()
}

// CheckCollisions removes at most one touched collectible, then ends the game
// on any obstacle hit, then declares a win if nothing is left to collect.
func (s *State) CheckCollisions() {
	if s.outcome.Terminal() {
		return
	}

	for i, c := range s.collectibles {
		if s.player.Overlaps(c) {
			s.collectibles = append(s.collectibles[:i], s.collectibles[i+1:]...)
			break
		}
	}

	for _, o := range s.obstacles {
		if s.player.Overlaps(o) {
			s.outcome = LostToObstacle
			return
		}
	}

	if len(s.collectibles) == 0 {
		s.outcome = Won
	}
}

// UpdateTime counts the timer down by dt seconds and ends the game when it
// reaches zero. dt is not validated.
func (s *State) UpdateTime(dt float64) {
	if s.outcome.Terminal() {
		return
	}

	s.timeLeft -= dt
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.outcome = LostToTimeout
	}
}

// Outcome returns the current outcome.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// TimeLeft returns the remaining seconds.
func (s *State) TimeLeft() float64 {
	return s.timeLeft
}

// TimeLimit returns the seconds the game started with.
func (s *State) TimeLimit() float64 {
	return s.timeLimit
}

// Player returns the player's circle.
func (s *State) Player() core.Circle {
	return s.player
}

// Remaining returns how many collectibles are left.
func (s *State) Remaining() int {
	return len(s.collectibles)
}

// ObstacleCount returns how many obstacles are on the board.
func (s *State) ObstacleCount() int {
	return len(s.obstacles)
}

// Snapshot returns a copy of the state for renderers.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Player:       s.player,
		Collectibles: append([]core.Circle(nil), s.collectibles...),
		Obstacles:    append([]core.Circle(nil), s.obstacles...),
		TimeLeft:     s.timeLeft,
		TimeLimit:    s.timeLimit,
		Outcome:      s.outcome,
		Collected:    s.total - len(s.collectibles),
		Total:        s.total,
	}
}
