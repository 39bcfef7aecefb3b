package game

import "fmt"

// Outcome classifies the state of a game.
type Outcome int

const (
	Ongoing Outcome = iota
	Won
	LostToObstacle
	LostToTimeout
)

// User-facing texts.
const (
	rulesFormat = `Welcome to the Triangle Collection Game!

Rules:
1. You control the unique orange triangle with a small tail.
2. Use the arrow keys to move your triangle.
3. Collect all the colored triangles within %d seconds to win.
4. Avoid the colorful star-shaped obstacles.
5. If you hit an obstacle, you lose the game.

Good luck!`

	WonMessage      = "Congratulations! You collected all the triangles and won the game!"
	ObstacleMessage = "Game Over! You hit an obstacle and lost the game."
	TimeoutMessage  = "Time's up! You didn't collect all the triangles in time."
)

// Rules returns the rules shown before the game starts.
func Rules(limitSeconds float64) string {
	return fmt.Sprintf(rulesFormat, int(limitSeconds))
}

// String returns the outcome name used in logs and storage.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case LostToObstacle:
		return "lost_obstacle"
	case LostToTimeout:
		return "lost_timeout"
	default:
		return "unknown"
	}
}

// ParseOutcome is the inverse of String. Unknown names map to Ongoing.
func ParseOutcome(s string) Outcome {
	for _, o := range []Outcome{Won, LostToObstacle, LostToTimeout} {
		if o.String() == s {
			return o
		}
	}
	return Ongoing
}

// Terminal reports whether the game has finished.
func (o Outcome) Terminal() bool {
	return o != Ongoing
}

// Message returns the end-of-game text for a terminal outcome,
// or an empty string while the game is ongoing.
func (o Outcome) Message() string {
	switch o {
	case Won:
		return WonMessage
	case LostToObstacle:
		return ObstacleMessage
	case LostToTimeout:
		return TimeoutMessage
	default:
		return ""
	}
}
