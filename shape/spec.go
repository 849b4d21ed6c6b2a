package shape

import (
	"io"
	"math"

	"github.com/osuushi/spritemesh/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Spec is the YAML form of a shape. Only the fields relevant to Kind are
// read; rotation is given in degrees.
//
//	kind: star
//	position: {x: 1, y: 2}
//	outer_radius: 3
//	inner_radius: 1.5
//	points: 5
//	rotation: 90
type Spec struct {
	Kind        string       `yaml:"kind"`
	Position    geom.Point   `yaml:"position,omitempty"`
	Radius      float64      `yaml:"radius,omitempty"`
	Sides       int          `yaml:"sides,omitempty"`
	Width       float64      `yaml:"width,omitempty"`
	Height      float64      `yaml:"height,omitempty"`
	Rotation    float64      `yaml:"rotation,omitempty"`
	OuterRadius float64      `yaml:"outer_radius,omitempty"`
	InnerRadius float64      `yaml:"inner_radius,omitempty"`
	Points      int          `yaml:"points,omitempty"`
	Outline     []geom.Point `yaml:"outline,omitempty"`
	// Defaults to true when absent.
	Optimize *bool `yaml:"optimize,omitempty"`
}

// Decode a single YAML shape document. Unknown keys are an error, since they
// are almost always typos.
func Decode(r io.Reader) (Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return Spec{}, errors.Wrap(err, "decoding shape spec")
	}
	return spec, nil
}

// Convert to a validated Shape.
func (s Spec) Shape() (Shape, error) {
	rotation := s.Rotation * math.Pi / 180
	var shape Shape
	switch s.Kind {
	case KindCircle.String():
		shape = &Circle{Position: s.Position, Radius: s.Radius, Sides: s.Sides}
	case KindRectangle.String():
		shape = &Rectangle{Position: s.Position, Width: s.Width, Height: s.Height}
	case KindRegularPolygon.String():
		shape = &RegularPolygon{Position: s.Position, Radius: s.Radius, Sides: s.Sides, Rotation: rotation}
	case KindStar.String():
		shape = &Star{
			Position:    s.Position,
			OuterRadius: s.OuterRadius,
			InnerRadius: s.InnerRadius,
			Points:      s.Points,
			Rotation:    rotation,
		}
	case KindOutline.String():
		points := make([]geom.Point, len(s.Outline))
		for i, p := range s.Outline {
			points[i] = p.Add(s.Position)
		}
		shape = &Outline{Points: points}
	case "":
		return nil, errors.New("shape spec has no kind")
	default:
		return nil, errors.Errorf("unknown shape kind %q", s.Kind)
	}

	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", s.Kind)
	}
	return shape, nil
}

func (s Spec) Options() BuildOptions {
	opts := DefaultBuildOptions()
	if s.Optimize != nil {
		opts.OptimizeMesh = *s.Optimize
	}
	return opts
}
