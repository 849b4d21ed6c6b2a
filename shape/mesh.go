package shape

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/spritemesh/dbg"
	"github.com/osuushi/spritemesh/geom"
)

// A renderable mesh. UV and Normals are index aligned with Vertices, and every
// three entries of Triangles form one counterclockwise triangle.
type Mesh struct {
	Name      string        `yaml:"name"`
	Vertices  []geom.Point3 `yaml:"vertices"`
	Triangles []int         `yaml:"triangles"`
	UV        []geom.UV     `yaml:"uv"`
	Normals   []geom.Point3 `yaml:"normals"`
}

func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

func (m *Mesh) Bounds() geom.BoundingBox {
	return geom.Bounds(m.Vertices)
}

// Every UV is a finite number. False means the mesh was unwrapped from
// degenerate bounds.
func (m *Mesh) HasFiniteUV() bool {
	for _, uv := range m.UV {
		if !uv.IsFinite() {
			return false
		}
	}
	return true
}

func (m *Mesh) String() string {
	name := dbg.Name(m)
	if m.HasFiniteUV() {
		name = aurora.Green(name).String()
	} else {
		name = aurora.Red(name).String()
	}
	b := m.Bounds()
	return fmt.Sprintf("Mesh %s (%s) { vertices: %d, triangles: %d, bounds: [%g, %g] x [%g, %g] }",
		name,
		m.Name,
		len(m.Vertices),
		m.TriangleCount(),
		b.MinX, b.MaxX, b.MinY, b.MaxY,
	)
}
