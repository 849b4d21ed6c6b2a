package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/osuushi/spritemesh/geom"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every triangle is counterclockwise, with nonzero area.
// 2. Every edge of the polygon is an edge of some triangle.
// 3. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, points []geom.Point, triangles TriangleList) {
	t.Helper()
	polygon := geom.Polygon{Points: points}
	require.True(t, polygon.IsCCW(), "polygon is not counterclockwise")
	require.Len(t, triangles, len(points)-2)

	var triangleArea float64
	edges := make(edgeSet)
	for _, tri := range triangles {
		require.Equal(t, geom.Left, tri.Side(points), "clockwise or flat triangle: %v", tri)
		triangleArea += tri.Polygon(points).SignedArea()
		edges.add(tri.A, tri.B)
		edges.add(tri.B, tri.C)
		edges.add(tri.C, tri.A)
	}

	for i := range points {
		j := geom.CircularIndex(i+1, len(points))
		require.True(t, edges.contains(i, j), "polygon edge %d-%d is not in the triangulation", i, j)
	}

	require.InDelta(t, polygon.SignedArea(), triangleArea, geom.Tolerance, "triangle areas must sum to the polygon area")
}

// Undirected edge between two vertex indexes, smaller index first
type edge struct {
	lo, hi int
}

type edgeSet map[edge]struct{}

func (set edgeSet) add(a, b int) {
	if a > b {
		a, b = b, a
	}
	set[edge{a, b}] = struct{}{}
}

func (set edgeSet) contains(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	_, ok := set[edge{a, b}]
	return ok
}
