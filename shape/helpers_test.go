package shape

import (
	"embed"
	"testing"

	"github.com/osuushi/spritemesh/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed fixtures
var fixtures embed.FS

func loadOutline(t *testing.T, name string) *Outline {
	t.Helper()
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err)
	defer f.Close()
	outline, err := OutlineFromSVG(f)
	require.NoError(t, err)
	return outline
}

// Structural checks every built mesh must pass. Returns the total triangle
// area.
func assertValidMesh(t *testing.T, mesh *Mesh) float64 {
	t.Helper()
	require.NotNil(t, mesh)
	require.Len(t, mesh.UV, len(mesh.Vertices))
	require.Len(t, mesh.Normals, len(mesh.Vertices))
	require.Zero(t, len(mesh.Triangles)%3)

	points := geom.Project(mesh.Vertices)
	var area float64
	for i := 0; i < len(mesh.Triangles); i += 3 {
		a, b, c := mesh.Triangles[i], mesh.Triangles[i+1], mesh.Triangles[i+2]
		for _, index := range []int{a, b, c} {
			require.True(t, index >= 0 && index < len(points), "index %d out of range", index)
		}
		require.Equal(t, geom.Left, geom.GetSide(points[a], points[b], points[c]), "triangle %d is not counterclockwise", i/3)
		area += geom.Polygon{Points: []geom.Point{points[a], points[b], points[c]}}.SignedArea()
	}

	for i, uv := range mesh.UV {
		require.True(t, uv.IsFinite(), "uv %d is not finite", i)
		assert.True(t, uv.U >= 0 && uv.U <= 1 && uv.V >= 0 && uv.V <= 1, "uv %d out of range: %v", i, uv)
	}
	for _, n := range mesh.Normals {
		assert.Equal(t, geom.Up, n)
	}
	return area
}
