package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	assert.Equal(t, 1, Sign(3.5))
	assert.Equal(t, -1, Sign(-0.001))
	assert.Equal(t, 0, Sign(0))
	// Negative zero is still zero
	assert.Equal(t, 0, Sign(math.Copysign(0, -1)))
}

func TestGetSide(t *testing.T) {
	a := Point{0, 0}
	b := Point{4, 0}

	t.Run("left and right", func(t *testing.T) {
		assert.Equal(t, Left, GetSide(a, b, Point{1, 1}))
		assert.Equal(t, Right, GetSide(a, b, Point{1, -1}))
	})

	t.Run("collinear is zero, not positive", func(t *testing.T) {
		for _, p := range []Point{{2, 0}, {-3, 0}, {10, 0}, a, b} {
			assert.Equal(t, Collinear, GetSide(a, b, p), "point %v", p)
		}
		// Diagonal line, where the products are nonzero but cancel exactly
		assert.Equal(t, Collinear, GetSide(Point{1, 1}, Point{3, 3}, Point{2, 2}))
	})

	t.Run("swapping endpoints negates", func(t *testing.T) {
		points := []Point{{1, 1}, {1, -1}, {2, 0}, {-5, 7}, {0.3, -0.2}}
		for _, p := range points {
			assert.Equal(t, -GetSide(a, b, p), GetSide(b, a, p), "point %v", p)
		}
	})

	t.Run("opposite sides have opposite signs", func(t *testing.T) {
		c := Point{1, 2}
		d := Point{5, -1}
		for _, pair := range [][2]Point{
			{{0, 0}, {4, 4}},
			{{2, 5}, {3, -3}},
		} {
			assert.Equal(t, -GetSide(c, d, pair[0]), GetSide(c, d, pair[1]))
		}
	})

	t.Run("counterclockwise triangle", func(t *testing.T) {
		poly := Polygon{[]Point{{0, 0}, {1, 0}, {0, 1}}}
		assert.True(t, poly.IsCCW())
		assert.Equal(t, Left, GetSide(poly.Points[0], poly.Points[1], poly.Points[2]))
	})
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "collinear", Collinear.String())
	assert.Equal(t, "invalid", Side(7).String())
}
