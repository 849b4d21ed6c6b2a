package shape

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/spritemesh/geom"
	"github.com/pkg/errors"
)

// Read the first <polygon> element of an SVG document as an outline. This is
// not a full SVG reader: transforms, paths and units are ignored, and points
// must be written as space separated "x,y" pairs.
func OutlineFromSVG(r io.Reader) (*Outline, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon found in svg")
	}

	var points []geom.Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}

	outline := &Outline{Points: points}
	if err := outline.Validate(); err != nil {
		return nil, err
	}
	return outline, nil
}
