package pathio

import (
	"io"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/pathgeom/geom"
	"github.com/pkg/errors"
)

// Elements whose "points" attribute is read, in this order. A polyline is
// treated as closed like any other path.
var svgPathElements = []string{"polygon", "polyline"}

// Read every polygon and polyline in an SVG document. This is not a full svg
// reader: transforms, units and every other element are ignored, and
// coordinates must be integers.
func ReadSVG(in io.Reader) (paths []*geom.Path, err error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			paths = nil
			err = recoveredErr
		}
	}()

	for _, name := range svgPathElements {
		for _, el := range rootEl.FindAll(name) {
			paths = append(paths, mustParseSVGPoints(name, el.Attributes["points"]))
		}
	}
	return paths, nil
}

// The points attribute is a flat list of numbers separated by commas and/or
// whitespace, taken in x,y pairs.
func mustParseSVGPoints(element, points string) *geom.Path {
	coords := splitCoordinates(points)
	if len(coords)%2 != 0 {
		fatalf(0, "odd number of coordinates in <%s> points %q", element, points)
	}
	path := geom.NewPath()
	for i := 0; i < len(coords); i += 2 {
		path.Append(geom.Pt(mustParseCoordinate(coords[i], 0), mustParseCoordinate(coords[i+1], 0)))
	}
	return path
}
