package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tri-hunt/internal/core"
)

// Score weights.
const (
	PointsPerCollectible = 100
	PointsPerSecondLeft  = 10
)

// Snapshot is a read-only copy of a game for renderers and result storage.
type Snapshot struct {
	Player       core.Circle
	Collectibles []core.Circle
	Obstacles    []core.Circle
	TimeLeft     float64
	TimeLimit    float64
	Outcome      Outcome
	Collected    int
	Total        int
}

// SecondsLeft returns the whole seconds shown on the timer.
func (s Snapshot) SecondsLeft() int {
	return int(math.Floor(math.Max(s.TimeLeft, 0)))
}

// TimerText returns the timer overlay text.
func (s Snapshot) TimerText() string {
	return fmt.Sprintf("Time Left: %ds", s.SecondsLeft())
}

// Score rewards every collected triangle and, for a win, the seconds to spare.
func (s Snapshot) Score() int {
	score := s.Collected * PointsPerCollectible
	if s.Outcome == Won {
		score += s.SecondsLeft() * PointsPerSecondLeft
	}
	return score
}
