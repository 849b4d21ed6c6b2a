package geom

import "math"

type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// The identity element of the bounds fold. Note that it is inverted (min > max).
func EmptyBounds() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Axis-aligned extents of a point sequence in a single pass.
//
// An empty sequence yields EmptyBounds() unchanged rather than an error. Those
// extents are infinite and inverted, so anything computed from them is
// garbage; check IsEmpty() (or don't pass empty input).
func Bounds[P Planar](points []P) BoundingBox {
	b := EmptyBounds()
	for _, point := range points {
		b = b.Extend(point.XY())
	}
	return b
}

func (b BoundingBox) Extend(p Point) BoundingBox {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
	return b
}

// Extent along X. The UV unwrapper calls this the "length".
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

func (b BoundingBox) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// True when the box has collapsed to a line or a point on either axis.
func (b BoundingBox) IsDegenerate() bool {
	return !b.IsEmpty() && (b.Width() == 0 || b.Height() == 0)
}

func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
