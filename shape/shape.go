// Package shape builds renderable sprite meshes from a closed set of shape
// kinds. Every kind produces its outline, triangulates it, and hands the
// result to the same pipeline: an optional topology optimization pass,
// bounds-normalized UVs, and flat normals.
package shape

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/osuushi/spritemesh/dbg"
	"github.com/osuushi/spritemesh/geom"
	"github.com/osuushi/spritemesh/internal"
	"github.com/pkg/errors"
)

type Kind int

const (
	KindCircle Kind = iota
	KindRectangle
	KindRegularPolygon
	KindStar
	KindOutline
)

var kindNames = map[Kind]string{
	KindCircle:         "circle",
	KindRectangle:      "rectangle",
	KindRegularPolygon: "polygon",
	KindStar:           "star",
	KindOutline:        "outline",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is implemented by every buildable shape kind.
type Shape interface {
	Kind() Kind
	// Validate reports whether the shape's parameters can produce a mesh.
	Validate() error
	// UpdateMesh builds a fresh mesh from the current parameters.
	UpdateMesh(opts BuildOptions) (*Mesh, error)
	// UpdateCollider describes the physics collider matching the shape.
	UpdateCollider() Collider
	// Center is the anchor used for joints. It is a pure function of the
	// shape's parameters.
	Center() geom.Point
}

type BuildOptions struct {
	// Run the topology optimization pass (weld, drop degenerate triangles,
	// reorder by first use) before UVs and normals are generated.
	OptimizeMesh bool
}

func DefaultBuildOptions() BuildOptions {
	return BuildOptions{OptimizeMesh: true}
}

type ColliderKind int

const (
	CircleCollider ColliderKind = iota
	BoxCollider
	PolygonCollider
)

func (k ColliderKind) String() string {
	switch k {
	case CircleCollider:
		return "circle"
	case BoxCollider:
		return "box"
	case PolygonCollider:
		return "polygon"
	}
	return fmt.Sprintf("ColliderKind(%d)", int(k))
}

// Data-only description of a collider. Which fields are meaningful depends on
// Kind: Radius for circles, Size for boxes, Path (counterclockwise) for
// polygons. Center is always set.
type Collider struct {
	Kind   ColliderKind
	Center geom.Point
	Radius float64
	Size   geom.Point
	Path   []geom.Point
}

// Recover a triangulation failure into a build error. Must be deferred
// directly.
func catch(mesh **Mesh, err *error) {
	if recoveredErr := internal.HandleBuildPanicRecover(recover()); recoveredErr != nil {
		*mesh = nil
		*err = recoveredErr
	}
}

func buildMesh(kind Kind, points []geom.Point, triangles internal.TriangleList, opts BuildOptions) (*Mesh, error) {
	log := Logger().With("shape", kind.String())
	if opts.OptimizeMesh {
		before, beforeTriangles := len(points), len(triangles)
		points, triangles = internal.Optimize(points, triangles)
		log.Debug("optimized mesh",
			"vertices_removed", before-len(points),
			"triangles_removed", beforeTriangles-len(triangles))
		if len(triangles) == 0 {
			return nil, errors.Errorf("%s collapsed to nothing within tolerance %g", kind, geom.Tolerance)
		}
	}

	vertices := make([]geom.Point3, len(points))
	for i, p := range points {
		vertices[i] = p.To3()
	}
	mesh := &Mesh{
		Name:      kind.String(),
		Vertices:  vertices,
		Triangles: triangles.Indices(),
		UV:        geom.UVUnwrap(points),
		Normals:   geom.Normals(len(points)),
	}
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("built mesh",
			"mesh", dbg.Name(mesh),
			"vertices", len(mesh.Vertices),
			"triangles", mesh.TriangleCount())
	}
	return mesh, nil
}

// Points evenly spaced on a circle, counterclockwise from angle rotation.
func ring(center geom.Point, radius float64, n int, rotation float64) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		angle := rotation + 2*math.Pi*float64(i)/float64(n)
		points[i] = geom.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return points
}

// Triangles fanning out from a hub vertex at index 0 to the closed rim at
// indexes 1..n.
func fan(n int) internal.TriangleList {
	triangles := make(internal.TriangleList, n)
	for i := range triangles {
		triangles[i] = internal.Triangle{A: 0, B: i + 1, C: geom.CircularIndex(i+1, n) + 1}
	}
	return triangles
}
