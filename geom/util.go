package geom

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. This
// is only used for topology decisions (welding, ordering). The side test below
// is exact on purpose.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Sign of x as -1, 0 or +1. Exactly zero maps to zero; many "sign" helpers
// return +1 there, which makes collinear points indistinguishable from points
// on the left.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// If two points have the same Y value, the one with the smaller X value is
// "lower". This simulates a slightly rotated coordinate system, allowing us to
// assume Y values are never equal.
func (p Point) Below(other Point) bool {
	if Equal(p.Y, other.Y) {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) Above(other Point) bool {
	return !p.Below(other)
}

func (p Point) ApproxEqual(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
