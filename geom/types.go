// Package geom is the geometry kernel shared by every mesh builder: side
// tests, bounding boxes, bounds-normalized UV unwrapping and flat normals.
//
// Everything here is a pure function of its arguments, so it is safe to call
// from any number of goroutines without coordination.
package geom

type Point struct {
	X float64
	Y float64
}

// Vertices are stored in 3D so they can be handed straight to a renderer. The
// working plane is XY; Z is carried through untouched and ignored by every
// planar operation.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Anything that can be projected onto the working plane. Both point types
// satisfy this, which lets a single implementation serve 2D outlines and 3D
// vertex buffers alike.
type Planar interface {
	XY() Point
}

type UV struct {
	U float64
	V float64
}

// Which side of a directed segment a point lies on.
type Side int

const (
	Right     Side = -1
	Collinear Side = 0
	Left      Side = 1
)

func (p Point) XY() Point {
	return p
}

func (p Point3) XY() Point {
	return Point{p.X, p.Y}
}

func (p Point) To3() Point3 {
	return Point3{X: p.X, Y: p.Y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Z component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Collinear:
		return "collinear"
	}
	return "invalid"
}

// Drop the Z axis from every vertex, preserving order.
func Project(points []Point3) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = p.XY()
	}
	return result
}
