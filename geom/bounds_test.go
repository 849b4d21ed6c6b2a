package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	t.Run("single point", func(t *testing.T) {
		b := Bounds([]Point{{3, -2}})
		assert.Equal(t, BoundingBox{3, -2, 3, -2}, b)
		assert.True(t, b.IsDegenerate())
		assert.False(t, b.IsEmpty())
	})

	t.Run("matches arithmetic min and max", func(t *testing.T) {
		r := rand.New(rand.NewSource(1))
		for i := 0; i < 20; i++ {
			points := randomPoints(r, 1+r.Intn(50))
			b := Bounds(points)
			require.LessOrEqual(t, b.MinX, b.MaxX)
			require.LessOrEqual(t, b.MinY, b.MaxY)

			minX, minY := points[0].X, points[0].Y
			maxX, maxY := minX, minY
			for _, p := range points[1:] {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
			assert.Equal(t, BoundingBox{minX, minY, maxX, maxY}, b)
		}
	})

	t.Run("order independent", func(t *testing.T) {
		r := rand.New(rand.NewSource(2))
		points := randomPoints(r, 40)
		expected := Bounds(points)
		for i := 0; i < 10; i++ {
			r.Shuffle(len(points), func(i, j int) {
				points[i], points[j] = points[j], points[i]
			})
			assert.Equal(t, expected, Bounds(points))
		}
	})

	t.Run("projected 3D points ignore z", func(t *testing.T) {
		points := []Point3{{1, 2, 100}, {-1, 5, -100}, {0, 0, 7}}
		assert.Equal(t, BoundingBox{-1, 0, 1, 5}, Bounds(points))
		assert.Equal(t, Bounds(Project(points)), Bounds(points))
	})

	t.Run("empty input returns inverted sentinel", func(t *testing.T) {
		b := Bounds([]Point{})
		assert.True(t, math.IsInf(b.MinX, 1))
		assert.True(t, math.IsInf(b.MinY, 1))
		assert.True(t, math.IsInf(b.MaxX, -1))
		assert.True(t, math.IsInf(b.MaxY, -1))
		assert.True(t, b.IsEmpty())
		assert.False(t, b.IsDegenerate())
		assert.Equal(t, EmptyBounds(), Bounds[Point](nil))
	})
}

func TestBoundingBoxHelpers(t *testing.T) {
	b := Bounds([]Point{{-1, 2}, {3, 8}})
	assert.Equal(t, 4.0, b.Width())
	assert.Equal(t, 6.0, b.Height())
	assert.Equal(t, Point{1, 5}, b.Center())
	assert.True(t, b.Contains(Point{0, 3}))
	assert.True(t, b.Contains(Point{3, 8}))
	assert.False(t, b.Contains(Point{3.1, 8}))
	assert.False(t, b.IsDegenerate())
}

func TestProject(t *testing.T) {
	points := Project([]Point3{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, []Point{{1, 2}, {4, 5}}, points)
	assert.Empty(t, Project(nil))
}

func randomPoints(r *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{r.Float64()*200 - 100, r.Float64()*200 - 100}
	}
	return points
}
