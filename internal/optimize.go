package internal

import "github.com/osuushi/spritemesh/geom"

// Post-build topology pass:
//
// 1. Coincident vertices (within geom.Tolerance) are welded into one.
// 2. Triangles that collapse to zero area are dropped.
// 3. Vertices are renumbered in order of first use by the index buffer, and
//    anything no triangle references is discarded.
//
// The returned triangles index into the returned points. Winding is preserved.
func Optimize(points []geom.Point, triangles TriangleList) ([]geom.Point, TriangleList) {
	weld := make([]int, len(points))
	for i, p := range points {
		weld[i] = i
		for j := 0; j < i; j++ {
			if weld[j] == j && points[j].ApproxEqual(p) {
				weld[i] = j
				break
			}
		}
	}

	remap := make(map[int]int, len(points))
	var optimizedPoints []geom.Point
	renumber := func(i int) int {
		i = weld[i]
		if r, ok := remap[i]; ok {
			return r
		}
		r := len(optimizedPoints)
		remap[i] = r
		optimizedPoints = append(optimizedPoints, points[i])
		return r
	}

	optimized := make(TriangleList, 0, len(triangles))
	for _, tri := range triangles {
		a, b, c := weld[tri.A], weld[tri.B], weld[tri.C]
		if a == b || b == c || c == a {
			continue
		}
		if geom.GetSide(points[a], points[b], points[c]) == geom.Collinear {
			continue
		}
		optimized = append(optimized, Triangle{renumber(a), renumber(b), renumber(c)})
	}
	return optimizedPoints, optimized
}
