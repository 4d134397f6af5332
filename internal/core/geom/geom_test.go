package geom

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Primitive tests ---

func TestDistance(t *testing.T) {
	d := Distance(Point{0, 0}, Point{3, 4})
	if !approxEqual(d, 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", d)
	}
}

func TestWithinInterval(t *testing.T) {
	if !WithinInterval(0, 10, 10.05, 0.1) {
		t.Errorf("expected 10.05 to be within [0,10] ±0.1")
	}
	if WithinInterval(0, 10, 10.2, 0.1) {
		t.Errorf("expected 10.2 to be outside [0,10] ±0.1")
	}
	if !WithinInterval(10.0, 0.0, 5.0, 0) {
		t.Errorf("expected swapped bounds to be normalised")
	}
	if !WithinInterval(0, 10, -1, 2) {
		t.Errorf("expected integer interval with tolerance 2 to contain -1")
	}
}

func TestOrdered(t *testing.T) {
	lo, hi := Ordered(7, 3)
	if lo != 3 || hi != 7 {
		t.Errorf("expected (3,7), got (%d,%d)", lo, hi)
	}
	a, b := Ordered("b", "a")
	if a != "a" || b != "b" {
		t.Errorf("expected (a,b), got (%s,%s)", a, b)
	}
}

// --- Intersection tests ---

func TestIntersectCrossing(t *testing.T) {
	s := NewSolver(DefaultTolerance)
	s1 := Seg(0, 0, 10, 10)
	s2 := Seg(0, 10, 10, 0)

	hit := s.Intersect(s1, s2)
	if !hit.OK {
		t.Fatalf("expected crossing segments to intersect")
	}
	if !approxEqual(hit.Point.X, 5, tolerance) || !approxEqual(hit.Point.Y, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", hit.Point.X, hit.Point.Y)
	}

	swapped := s.Intersect(s2, s1)
	if !swapped.OK {
		t.Fatalf("expected swapped segments to intersect")
	}
	if !approxEqual(swapped.Point.X, hit.Point.X, tolerance) || !approxEqual(swapped.Point.Y, hit.Point.Y, tolerance) {
		t.Errorf("expected same point after swap, got (%f,%f) vs (%f,%f)",
			swapped.Point.X, swapped.Point.Y, hit.Point.X, hit.Point.Y)
	}
}

func TestIntersectVertical(t *testing.T) {
	s := NewSolver(DefaultTolerance)
	wall := Seg(50, -20, 50, 20)
	ray := Seg(0, 0, 100, 10)

	for _, hit := range []Intersection{s.Intersect(wall, ray), s.Intersect(ray, wall)} {
		if !hit.OK {
			t.Fatalf("expected ray to hit vertical wall")
		}
		if !approxEqual(hit.Point.X, 50, tolerance) || !approxEqual(hit.Point.Y, 5, tolerance) {
			t.Errorf("expected (50,5), got (%f,%f)", hit.Point.X, hit.Point.Y)
		}
	}
}

func TestIntersectParallel(t *testing.T) {
	s := NewSolver(DefaultTolerance)
	if s.Intersect(Seg(0, 0, 10, 10), Seg(0, 5, 10, 15)).OK {
		t.Errorf("expected parallel segments not to intersect")
	}
	if s.Intersect(Seg(0, 0, 0, 10), Seg(5, 0, 5, 10)).OK {
		t.Errorf("expected parallel vertical segments not to intersect")
	}
}

func TestIntersectCoincidentIsMiss(t *testing.T) {
	s := NewSolver(DefaultTolerance)
	if s.Intersect(Seg(0, 0, 10, 0), Seg(5, 0, 15, 0)).OK {
		t.Errorf("expected overlapping collinear segments to report no intersection")
	}
	if s.Intersect(Seg(3, 0, 3, 10), Seg(3, 5, 3, 15)).OK {
		t.Errorf("expected overlapping vertical segments to report no intersection")
	}
}

func TestIntersectSharedEndpoint(t *testing.T) {
	s := NewSolver(DefaultTolerance)
	hit := s.Intersect(Seg(0, 0, 10, 10), Seg(10, 10, 20, 0))
	if !hit.OK {
		t.Fatalf("expected segments sharing an endpoint to intersect")
	}
	if !approxEqual(hit.Point.X, 10, tolerance) || !approxEqual(hit.Point.Y, 10, tolerance) {
		t.Errorf("expected (10,10), got (%f,%f)", hit.Point.X, hit.Point.Y)
	}
}

func TestIntersectOutOfBounds(t *testing.T) {
	s := NewSolver(DefaultTolerance)
	// The supporting lines cross at (5,5) but the second segment stops short.
	if s.Intersect(Seg(0, 0, 10, 10), Seg(0, 10, 4, 6)).OK {
		t.Errorf("expected no intersection outside segment bounds")
	}
}

func TestToleranceIsConfigurable(t *testing.T) {
	// Lines cross at x=10.5, just past the end of the first segment.
	s1 := Seg(0, 0, 10, 0.1)
	s2 := Seg(10.5, -5, 10.5, 5)

	if NewSolver(0.1).Intersect(s1, s2).OK {
		t.Errorf("expected miss with tolerance 0.1")
	}
	if !NewSolver(1).Intersect(s1, s2).OK {
		t.Errorf("expected hit with tolerance 1")
	}
}

// --- Obstacle tests ---

func TestNewObstacleRejectsDegenerate(t *testing.T) {
	_, err := NewObstacle(Point{}, nil, Point{1, 1})
	if !errors.Is(err, ErrTooFewPoints) {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}
}

func TestObstacleEdgesWrap(t *testing.T) {
	o := NewRect(Point{100, 50}, 10, 20, nil)
	edges := o.Edges()
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}
	last := edges[3]
	if last.A != (Point{100, 70}) || last.B != (Point{100, 50}) {
		t.Errorf("expected closing edge (100,70)->(100,50), got %v", last)
	}
	if edges[0].A != o.Edge(0).A {
		t.Errorf("Edges and Edge disagree")
	}
}
