package internal

import "github.com/osuushi/spritemesh/geom"

// Triangulate an arbitrary simple counterclockwise polygon by repeatedly
// clipping ears. This is quadratic, which is fine for sprite outlines (tens to
// a few hundred points). Collinear vertices are dropped without emitting a
// triangle, so they may end up unreferenced.
func EarClip(points []geom.Point) TriangleList {
	n := len(points)
	if n < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", n)
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	triangles := make(TriangleList, 0, n-2)
	for len(remaining) > 3 {
		i := findEar(points, remaining)
		if i < 0 {
			i = findCollinear(points, remaining)
			if i < 0 {
				fatalf("no ear found among %d remaining vertices; is the polygon simple and counterclockwise?", len(remaining))
			}
			remaining = append(remaining[:i], remaining[i+1:]...)
			continue
		}
		m := len(remaining)
		tri := Triangle{
			remaining[geom.CircularIndex(i-1, m)],
			remaining[i],
			remaining[geom.CircularIndex(i+1, m)],
		}
		triangles = appendTriangle(triangles, points, tri)
		remaining = append(remaining[:i], remaining[i+1:]...)
	}

	last := Triangle{remaining[0], remaining[1], remaining[2]}
	if last.Side(points) != geom.Collinear {
		triangles = appendTriangle(triangles, points, last)
	}
	if len(triangles) == 0 {
		fatalf("polygon has no area")
	}
	return triangles
}

// Position in remaining of the first vertex that forms an ear, or -1.
func findEar(points []geom.Point, remaining []int) int {
	m := len(remaining)
	for i := range remaining {
		prev := points[remaining[geom.CircularIndex(i-1, m)]]
		cur := points[remaining[i]]
		next := points[remaining[geom.CircularIndex(i+1, m)]]
		if geom.GetSide(prev, cur, next) != geom.Left {
			continue // reflex or flat
		}

		ear := true
		for j, k := range remaining {
			if j == i || j == geom.CircularIndex(i-1, m) || j == geom.CircularIndex(i+1, m) {
				continue
			}
			p := points[k]
			// Coincident points (e.g. a polygon touching itself) don't block
			if p.ApproxEqual(prev) || p.ApproxEqual(cur) || p.ApproxEqual(next) {
				continue
			}
			if inTriangle(prev, cur, next, p) {
				ear = false
				break
			}
		}
		if ear {
			return i
		}
	}
	return -1
}

func findCollinear(points []geom.Point, remaining []int) int {
	m := len(remaining)
	for i := range remaining {
		prev := points[remaining[geom.CircularIndex(i-1, m)]]
		cur := points[remaining[i]]
		next := points[remaining[geom.CircularIndex(i+1, m)]]
		if geom.GetSide(prev, cur, next) == geom.Collinear {
			return i
		}
	}
	return -1
}

// Inside or on the boundary of CCW triangle abc.
func inTriangle(a, b, c, p geom.Point) bool {
	return geom.GetSide(a, b, p) != geom.Right &&
		geom.GetSide(b, c, p) != geom.Right &&
		geom.GetSide(c, a, p) != geom.Right
}
