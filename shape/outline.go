package shape

import (
	"math"

	"github.com/osuushi/spritemesh/geom"
	"github.com/osuushi/spritemesh/internal"
	"github.com/pkg/errors"
)

// An arbitrary simple polygon. Either winding is accepted; it is normalized to
// counterclockwise before building. The polygon must not self-intersect, which
// is not validated.
type Outline struct {
	Points []geom.Point
}

func (o *Outline) Kind() Kind {
	return KindOutline
}

func (o *Outline) Validate() error {
	if len(o.Points) < 3 {
		return errors.Errorf("outline needs at least 3 points, got %d", len(o.Points))
	}
	// Area is compared relative to the outline's extent, so small outlines
	// aren't mistaken for flat ones.
	poly := o.polygon()
	bounds := poly.Bounds()
	extent := max(bounds.Width(), bounds.Height())
	if math.Abs(poly.SignedArea()) <= geom.Tolerance*extent*extent {
		return errors.New("outline has no area")
	}
	return nil
}

func (o *Outline) UpdateMesh(opts BuildOptions) (mesh *Mesh, err error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	defer catch(&mesh, &err)

	points := o.ccw()
	return buildMesh(o.Kind(), points, internal.EarClip(points), opts)
}

func (o *Outline) UpdateCollider() Collider {
	return Collider{Kind: PolygonCollider, Center: o.Center(), Path: o.ccw()}
}

// Area centroid of the outline.
func (o *Outline) Center() geom.Point {
	return o.polygon().Centroid()
}

func (o *Outline) polygon() geom.Polygon {
	return geom.Polygon{Points: o.Points}
}

func (o *Outline) ccw() []geom.Point {
	poly := o.polygon()
	if poly.IsCW() {
		poly = poly.Reverse()
	}
	// Don't alias the caller's slice
	return append([]geom.Point(nil), poly.Points...)
}
