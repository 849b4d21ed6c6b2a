package shape

import (
	"github.com/osuushi/spritemesh/geom"
	"github.com/osuushi/spritemesh/internal"
	"github.com/pkg/errors"
)

// A regular polygon inscribed in a circle of Radius. The first vertex sits at
// angle Rotation (radians, counterclockwise from +x).
//
// Unlike Circle there is no center vertex: the outline is convex, hence
// y-monotone, and is triangulated directly.
type RegularPolygon struct {
	Position geom.Point
	Radius   float64
	Sides    int
	Rotation float64
}

func (p *RegularPolygon) Kind() Kind {
	return KindRegularPolygon
}

func (p *RegularPolygon) Validate() error {
	if p.Radius <= 0 {
		return errors.Errorf("polygon radius must be positive, got %g", p.Radius)
	}
	if p.Sides < 3 {
		return errors.Errorf("polygon needs at least 3 sides, got %d", p.Sides)
	}
	return nil
}

func (p *RegularPolygon) UpdateMesh(opts BuildOptions) (mesh *Mesh, err error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	defer catch(&mesh, &err)

	points := p.outline()
	return buildMesh(p.Kind(), points, internal.TriangulateMonotone(points), opts)
}

func (p *RegularPolygon) UpdateCollider() Collider {
	return Collider{Kind: PolygonCollider, Center: p.Position, Path: p.outline()}
}

func (p *RegularPolygon) Center() geom.Point {
	return p.Position
}

func (p *RegularPolygon) outline() []geom.Point {
	return ring(p.Position, p.Radius, p.Sides, p.Rotation)
}
