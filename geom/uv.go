package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Returned by UVUnwrapStrict when there is nothing to unwrap.
var ErrEmptyInput = errors.New("cannot unwrap empty point sequence")

// Returned by UVUnwrapStrict when the bounds collapse on one or both axes, so
// that normalizing along that axis would divide by zero.
type DegenerateBoundsError struct {
	Bounds BoundingBox
	X, Y   bool // which axes collapsed
}

func (e *DegenerateBoundsError) Error() string {
	var axes string
	switch {
	case e.X && e.Y:
		axes = "x and y"
	case e.X:
		axes = "x"
	default:
		axes = "y"
	}
	return fmt.Sprintf("degenerate bounds on %s axis: [%g, %g] x [%g, %g]",
		axes, e.Bounds.MinX, e.Bounds.MaxX, e.Bounds.MinY, e.Bounds.MaxY)
}

// Map each point into [0,1]x[0,1] relative to the bounding box of the whole
// sequence. Output index i always corresponds to input index i.
//
// Degenerate input is not special cased: if every point shares an x (or y)
// coordinate, the matching component is 0/0 = NaN for every point. Callers
// that can't rule that out should use UVUnwrapStrict.
func UVUnwrap[P Planar](points []P) []UV {
	return unwrap(points, Bounds(points))
}

// Same as UVUnwrap, but reports empty and degenerate input as errors instead
// of producing non-finite coordinates. Well-formed input yields identical
// output.
func UVUnwrapStrict[P Planar](points []P) ([]UV, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	b := Bounds(points)
	if b.Width() == 0 || b.Height() == 0 {
		return nil, &DegenerateBoundsError{Bounds: b, X: b.Width() == 0, Y: b.Height() == 0}
	}
	return unwrap(points, b), nil
}

func unwrap[P Planar](points []P, b BoundingBox) []UV {
	length := b.Width()
	width := b.Height()
	uv := make([]UV, len(points))
	for i, point := range points {
		p := point.XY()
		uv[i] = UV{
			U: (p.X - b.MinX) / length,
			V: (p.Y - b.MinY) / width,
		}
	}
	return uv
}

func (uv UV) IsFinite() bool {
	return !math.IsNaN(uv.U) && !math.IsInf(uv.U, 0) && !math.IsNaN(uv.V) && !math.IsInf(uv.V, 0)
}
