package core

import "math"

// Shape outlines in unit space: the shape is scaled by an object's radius and
// translated to its position before drawing. Vertices are in drawing order.

// TriangleOutline returns the collectible triangle.
func TriangleOutline() []Vec2 {
	return []Vec2{
		{X: 0, Y: 1},
		{X: -1, Y: -1},
		{X: 1, Y: -1},
	}
}

// StarOutline returns a star with the given number of points, alternating
// between an outer radius of 1 and an inner radius of 0.5.
func StarOutline(points int) []Vec2 {
	if points < 2 {
		points = 2
	}
	n := points * 2
	out := make([]Vec2, 0, n)
	for i := 0; i < n; i++ {
		r := 1.0
		if i%2 == 1 {
			r = 0.5
		}
		// First point straight up.
		a := math.Pi/2 + float64(i)*math.Pi/float64(points)
		out = append(out, Vec2{X: math.Cos(a) * r, Y: math.Sin(a) * r})
	}
	return out
}

// PlayerOutline returns the player's triangle with a notch at its base
// that reads as a small tail.
func PlayerOutline() []Vec2 {
	return []Vec2{
		{X: 0, Y: 1},
		{X: -1, Y: -1},
		{X: 0, Y: -0.5},
		{X: 1, Y: -1},
	}
}

// Place scales a unit outline by radius and moves it to center.
func Place(outline []Vec2, center Vec2, radius float64) []Vec2 {
	out := make([]Vec2, len(outline))
	for i, v := range outline {
		out[i] = Vec2{X: center.X + v.X*radius, Y: center.Y + v.Y*radius}
	}
	return out
}
