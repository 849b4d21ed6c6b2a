package geom

// The unit normal of the XY working plane.
var Up = Point3{X: 0, Y: 0, Z: 1}

// All generated geometry is flat, so every vertex shares the same normal.
// A negative n yields no normals.
func Normals(n int) []Point3 {
	n = max(n, 0)
	normals := make([]Point3, n)
	for i := range normals {
		normals[i] = Up
	}
	return normals
}
