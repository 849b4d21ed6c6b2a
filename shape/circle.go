package shape

import (
	"github.com/osuushi/spritemesh/geom"
	"github.com/pkg/errors"
)

// A disc approximated by Sides rim vertices fanned around a center vertex.
type Circle struct {
	Position geom.Point
	Radius   float64
	Sides    int
}

func (c *Circle) Kind() Kind {
	return KindCircle
}

func (c *Circle) Validate() error {
	if c.Radius <= 0 {
		return errors.Errorf("circle radius must be positive, got %g", c.Radius)
	}
	if c.Sides < 3 {
		return errors.Errorf("circle needs at least 3 sides, got %d", c.Sides)
	}
	return nil
}

func (c *Circle) UpdateMesh(opts BuildOptions) (mesh *Mesh, err error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	defer catch(&mesh, &err)

	points := append([]geom.Point{c.Position}, ring(c.Position, c.Radius, c.Sides, 0)...)
	return buildMesh(c.Kind(), points, fan(c.Sides), opts)
}

func (c *Circle) UpdateCollider() Collider {
	return Collider{Kind: CircleCollider, Center: c.Position, Radius: c.Radius}
}

func (c *Circle) Center() geom.Point {
	return c.Position
}
