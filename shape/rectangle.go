package shape

import (
	"github.com/osuushi/spritemesh/geom"
	"github.com/osuushi/spritemesh/internal"
	"github.com/pkg/errors"
)

// An axis-aligned rectangle centered on Position.
type Rectangle struct {
	Position geom.Point
	Width    float64
	Height   float64
}

func (r *Rectangle) Kind() Kind {
	return KindRectangle
}

func (r *Rectangle) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Errorf("rectangle size must be positive, got %gx%g", r.Width, r.Height)
	}
	return nil
}

func (r *Rectangle) UpdateMesh(opts BuildOptions) (mesh *Mesh, err error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	defer catch(&mesh, &err)

	points := r.corners()
	return buildMesh(r.Kind(), points, internal.TriangulateMonotone(points), opts)
}

func (r *Rectangle) UpdateCollider() Collider {
	return Collider{
		Kind:   BoxCollider,
		Center: r.Position,
		Size:   geom.Point{X: r.Width, Y: r.Height},
	}
}

func (r *Rectangle) Center() geom.Point {
	return r.Position
}

// Counterclockwise from the bottom left.
func (r *Rectangle) corners() []geom.Point {
	halfW, halfH := r.Width/2, r.Height/2
	return []geom.Point{
		r.Position.Add(geom.Point{X: -halfW, Y: -halfH}),
		r.Position.Add(geom.Point{X: halfW, Y: -halfH}),
		r.Position.Add(geom.Point{X: halfW, Y: halfH}),
		r.Position.Add(geom.Point{X: -halfW, Y: halfH}),
	}
}
