package shape

import (
	"math"

	"github.com/osuushi/spritemesh/geom"
	"github.com/pkg/errors"
)

// A star with Points tips on OuterRadius and notches on InnerRadius. The first
// tip sits at angle Rotation.
type Star struct {
	Position    geom.Point
	OuterRadius float64
	InnerRadius float64
	Points      int
	Rotation    float64
}

func (s *Star) Kind() Kind {
	return KindStar
}

func (s *Star) Validate() error {
	if s.Points < 3 {
		return errors.Errorf("star needs at least 3 points, got %d", s.Points)
	}
	if s.InnerRadius <= 0 || s.OuterRadius <= s.InnerRadius {
		return errors.Errorf("star radii must satisfy 0 < inner < outer, got inner %g, outer %g", s.InnerRadius, s.OuterRadius)
	}
	return nil
}

// Stars are star-shaped around their center (that's rather the point), so
// every rim vertex is visible from a center vertex and a fan suffices.
func (s *Star) UpdateMesh(opts BuildOptions) (mesh *Mesh, err error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	defer catch(&mesh, &err)

	rim := s.outline()
	points := append([]geom.Point{s.Position}, rim...)
	return buildMesh(s.Kind(), points, fan(len(rim)), opts)
}

func (s *Star) UpdateCollider() Collider {
	return Collider{Kind: PolygonCollider, Center: s.Position, Path: s.outline()}
}

func (s *Star) Center() geom.Point {
	return s.Position
}

func (s *Star) outline() []geom.Point {
	outer := ring(s.Position, s.OuterRadius, s.Points, s.Rotation)
	inner := ring(s.Position, s.InnerRadius, s.Points, s.Rotation+math.Pi/float64(s.Points))
	points := make([]geom.Point, 0, 2*s.Points)
	for i := range outer {
		points = append(points, outer[i], inner[i])
	}
	return points
}
