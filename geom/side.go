package geom

// Classify p against the directed line a→b. Left means a, b, p wind
// counterclockwise; swapping a and b flips the result. Inputs must be finite.
func GetSide(a, b, p Point) Side {
	return Side(Sign((a.X-p.X)*(b.Y-p.Y) - (b.X-p.X)*(a.Y-p.Y)))
}
