package geom

type Polygon struct {
	Points []Point
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		area += p.Cross(q)
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Bounds() BoundingBox {
	return Bounds(poly.Points)
}

// Area centroid. Polygons with no area (fewer than three points, or all
// collinear) fall back to the mean of their vertices so the result is still
// deterministic. The zero point is returned for an empty polygon.
func (poly Polygon) Centroid() Point {
	n := len(poly.Points)
	if n == 0 {
		return Point{}
	}
	area := poly.SignedArea()
	if Equal(area, 0) {
		var sum Point
		for _, p := range poly.Points {
			sum = sum.Add(p)
		}
		return sum.Scale(1 / float64(n))
	}

	var cx, cy float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		cross := p.Cross(q)
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

// Even-odd rule point-in-polygon.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Count the edges crossed by a ray cast from p in the +x direction.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if vertex.Below(p) == nextVertex.Below(p) {
			continue
		}
		// Orient the edge upward so that "left of the edge" means "p is left of
		// the crossing", i.e. the crossing is to the right of p.
		lower, upper := vertex, nextVertex
		if upper.Below(lower) {
			lower, upper = upper, lower
		}
		if GetSide(lower, upper, p) == Left {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
