// Package geom holds the 2D primitives the ray caster works on: points,
// segments, obstacles and the segment intersection solver.
package geom

import "image/color"

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Segment represents one edge of an obstacle outline, resolved in world space
type Segment struct {
	A, B Point
}

// Seg is shorthand for building a segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Point{X: x1, Y: y1}, B: Point{X: x2, Y: y2}}
}

// Obstacle is a closed polygon placed in the world. Points are local to Origin.
type Obstacle struct {
	Origin Point
	Points []Point
	// Color is the base wall color; nil means the caster's default.
	Color color.Color
}
