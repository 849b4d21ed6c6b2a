package internal

import "github.com/osuushi/spritemesh/geom"

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges. Every convex outline qualifies, which is what the regular shape
// builders rely on.
//
// The lexicographic Point.Below() method is used to simulate a slightly rotated
// coordinate system that eliminates horizontal segments but note that this
// affects where horizontal segments are allowed while maintaining strict
// monotonicity. Specifically, on the left chain, a horizontal edge must sit
// _above_ the inside of the polygon, while on the right chain, it must sit
// _below_.
//
// Note that the polygon must be counterclockwise. The returned triangles index
// into points.

func TriangulateMonotone(points []geom.Point) TriangleList {
	n := len(points)
	if n < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", n)
	}
	if n == 3 {
		return TriangleList{{0, 1, 2}}
	}

	triangles := make(TriangleList, 0, n-2)

	// Sort points so top point is at the top of the array.
	sorted := make([]int, 0, n)

	var top int
	for i, point := range points {
		if point.Above(points[top]) {
			top = i
		}
	}
	sorted = append(sorted, top)

	// Which chain each point is on. The top point is arbitrarily on the right.
	isLeft := make([]bool, n)

	// Merge sort points starting from top, noting which are on the left chain,
	// and track the bottom point separately
	leftOffset := 1
	rightOffset := 1
	var bottom int
	for {
		left := geom.CircularIndex(top+leftOffset, n)
		right := geom.CircularIndex(top-rightOffset, n)

		// If we've met up, we're done. We don't add the bottom point to the list,
		// as it's handled at the very end.
		if left == right {
			bottom = left
			break
		}

		if points[left].Above(points[right]) {
			isLeft[left] = true
			sorted = append(sorted, left)
			leftOffset++
		} else {
			sorted = append(sorted, right)
			rightOffset++
		}
	}

	stack := make(IndexStack, 0, n)
	stack.Push(sorted[0])
	stack.Push(sorted[1])
	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		left := isLeft[p]
		if left != isLeft[stack.Peek()] {
			// We've jumped to the other chain. Monotonicity guarantees that every
			// point on the stack is visible from p, so we can fan out to all of
			// them and empty the stack.
			for !stack.Empty() {
				a := stack.Pop()
				if stack.Empty() {
					break
				}
				b := stack.Peek()
				if left {
					/*
					              b
					             /|
					 diagonal-> / |
					           p--a
					*/
					triangles = appendTriangle(triangles, points, Triangle{p, a, b})
				} else {
					/*
						b
						|\ <- Diagonal
						| \
						a--p
					*/
					triangles = appendTriangle(triangles, points, Triangle{a, p, b})
				}
			}
			stack.Push(sorted[i-1])
			stack.Push(p)
			continue
		}

		// Same chain. Always pop the last point off. If we don't create any
		// triangles this time, we'll put it back
		v := stack.Pop()
		for !stack.Empty() {
			q := stack.Peek()
			// The easiest way to see if p "sees" q is to try creating the triangle
			// and see if it's CCW
			var candidate Triangle
			if left {
				/*
					q
					|\
					v \
					  \\ <- diagonal
					    \
					     p
				*/
				candidate = Triangle{p, q, v}
			} else {
				/*
					               q
					              /|
					             / v
					            / /
					diagonal-> //
					          /
					         p
				*/
				candidate = Triangle{p, v, q}
			}
			if candidate.Side(points) != geom.Left {
				break
			}
			v = stack.Pop()
			triangles = append(triangles, candidate)
		}
		stack.Push(v)
		stack.Push(p)
	}

	// Finally, fan the bottom point out to everything left on the stack. We
	// always have at least two points here.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if isLeft[l] {
			/*
				   p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			triangles = appendTriangle(triangles, points, Triangle{bottom, p, l})
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			triangles = appendTriangle(triangles, points, Triangle{bottom, l, p})
		}
		l = p
	}
	return triangles
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles TriangleList, points []geom.Point, tri Triangle) TriangleList {
	if tri.Side(points) == geom.Right {
		fatalf("triangle is clockwise: %v", tri.Polygon(points).Points)
	}
	return append(triangles, tri)
}
