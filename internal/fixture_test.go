package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/spritemesh/geom"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It finds whatever the first polygon is, then
// converts that into a CCW point list. If anything goes wrong, it dies.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []geom.Point
	for _, pointString := range strings.Split(polygons[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return ccw(points)
}

func ccw(points []geom.Point) []geom.Point {
	poly := geom.Polygon{Points: points}
	if poly.IsCW() {
		poly = poly.Reverse()
	}
	return poly.Points
}

// Mirror across one or both axes, keeping the result counterclockwise.
func reflect(points []geom.Point, x, y bool) []geom.Point {
	result := make([]geom.Point, len(points))
	for i, p := range points {
		if x {
			p.X = -p.X
		}
		if y {
			p.Y = -p.Y
		}
		result[i] = p
	}
	return ccw(result)
}

func RegularPolygon(n int, radius, rotation float64) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		angle := rotation + 2*math.Pi*float64(i)/float64(n)
		points[i] = geom.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}
