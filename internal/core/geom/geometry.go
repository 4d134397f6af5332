package geom

import (
	"cmp"
	"math"
)

// Number is any numeric type WithinInterval can work with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Ordered returns the pair as (min, max).
func Ordered[T cmp.Ordered](a, b T) (T, T) {
	if a > b {
		return b, a
	}
	return a, b
}

// WithinInterval reports whether value lies between the two bounds widened by
// tolerance on both sides. The bounds may be given in either order.
func WithinInterval[T Number](bound1, bound2, value, tolerance T) bool {
	lo, hi := Ordered(bound1, bound2)
	return value >= lo-tolerance && value <= hi+tolerance
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Direction returns the unit vector pointing at angle degrees.
func Direction(degrees float64) Point {
	r := Radians(degrees)
	return Point{X: math.Cos(r), Y: math.Sin(r)}
}
