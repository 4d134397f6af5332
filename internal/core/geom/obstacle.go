package geom

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrTooFewPoints is returned for obstacles that cannot form an edge.
var ErrTooFewPoints = errors.New("obstacle needs at least 2 points")

// NewObstacle builds an obstacle from local points placed at origin.
func NewObstacle(origin Point, clr color.Color, points ...Point) (Obstacle, error) {
	if len(points) < 2 {
		return Obstacle{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return Obstacle{Origin: origin, Points: pts, Color: clr}, nil
}

// NewRect builds an axis-aligned rectangle with its top-left corner at origin.
func NewRect(origin Point, w, h float64, clr color.Color) Obstacle {
	return Obstacle{
		Origin: origin,
		Points: []Point{{0, 0}, {w, 0}, {w, h}, {0, h}},
		Color:  clr,
	}
}

// EdgeCount returns the number of edges, wrapping the last point to the first.
func (o Obstacle) EdgeCount() int {
	return len(o.Points)
}

// Edge returns edge i in world space.
func (o Obstacle) Edge(i int) Segment {
	n := len(o.Points)
	return Segment{
		A: o.Points[i].Add(o.Origin),
		B: o.Points[(i+1)%n].Add(o.Origin),
	}
}

// Edges returns every edge in world space, in point order.
func (o Obstacle) Edges() []Segment {
	edges := make([]Segment, 0, len(o.Points))
	for i := range o.Points {
		edges = append(edges, o.Edge(i))
	}
	return edges
}

// WorldPoints returns the outline in world space.
func (o Obstacle) WorldPoints() []Point {
	pts := make([]Point, len(o.Points))
	for i, p := range o.Points {
		pts[i] = p.Add(o.Origin)
	}
	return pts
}
