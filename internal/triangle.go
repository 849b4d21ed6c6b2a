package internal

import "github.com/osuushi/spritemesh/geom"

// Triangle corners are indexes into the vertex list they were built from.
type Triangle struct {
	A, B, C int
}

type TriangleList []Triangle

// Flatten into the index buffer layout renderers expect.
func (list TriangleList) Indices() []int {
	indices := make([]int, 0, len(list)*3)
	for _, tri := range list {
		indices = append(indices, tri.A, tri.B, tri.C)
	}
	return indices
}

func (tri Triangle) Polygon(points []geom.Point) geom.Polygon {
	return geom.Polygon{Points: []geom.Point{points[tri.A], points[tri.B], points[tri.C]}}
}

func (tri Triangle) Side(points []geom.Point) geom.Side {
	return geom.GetSide(points[tri.A], points[tri.B], points[tri.C])
}

type IndexStack []int

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *IndexStack) Peek() int {
	if len(*s) == 0 {
		return -1
	}
	return (*s)[len(*s)-1]
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}
