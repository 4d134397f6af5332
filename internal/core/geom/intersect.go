package geom

// DefaultTolerance absorbs float error at segment endpoints for maps measured
// in pixels.
const DefaultTolerance = 0.1

// Intersection is the result of intersecting two segments. Point is only
// meaningful when OK is true.
type Intersection struct {
	Point Point
	OK    bool
}

// Miss is the empty intersection result.
var Miss = Intersection{}

// line is a segment's supporting line. Near-vertical lines store x instead of
// a slope.
type line struct {
	k, b     float64
	x        float64
	vertical bool
}

// Solver intersects bounded segments. Tolerance is used both to flag
// near-vertical segments and to widen the bounds checks.
type Solver struct {
	Tolerance float64
}

// NewSolver returns a solver using the given tolerance. A non-positive value
// selects DefaultTolerance.
func NewSolver(tolerance float64) Solver {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return Solver{Tolerance: tolerance}
}

func (s Solver) lineOf(seg Segment) line {
	dx := seg.B.X - seg.A.X
	if dx < s.Tolerance && dx > -s.Tolerance {
		return line{x: seg.A.X, vertical: true}
	}
	k := (seg.B.Y - seg.A.Y) / dx
	return line{k: k, b: seg.A.Y - k*seg.A.X}
}

// Intersect returns the point where s1 and s2 cross, if it lies within both
// segments. Parallel lines never intersect, including coincident ones.
func (s Solver) Intersect(s1, s2 Segment) Intersection {
	l1 := s.lineOf(s1)
	l2 := s.lineOf(s2)

	if l1.vertical && l2.vertical {
		return Miss
	}
	if !l1.vertical && !l2.vertical && l1.k == l2.k {
		return Miss
	}

	var p Point
	switch {
	case l1.vertical:
		p.X = l1.x
		p.Y = l2.k*p.X + l2.b
	case l2.vertical:
		p.X = l2.x
		p.Y = l1.k*p.X + l1.b
	default:
		p.X = (l2.b - l1.b) / (l1.k - l2.k)
		p.Y = l1.k*p.X + l1.b
	}

	if !s.bounds(s1, p) || !s.bounds(s2, p) {
		return Miss
	}
	return Intersection{Point: p, OK: true}
}

func (s Solver) bounds(seg Segment, p Point) bool {
	return WithinInterval(seg.A.X, seg.B.X, p.X, s.Tolerance) &&
		WithinInterval(seg.A.Y, seg.B.Y, p.Y, s.Tolerance)
}
