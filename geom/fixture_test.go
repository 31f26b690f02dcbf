package geom

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg pictures and outputs paths. This is not a full (or
// even correct) svg parser. It parses the SVG, finds the one polygon, and
// converts its points into a *Path in document order. If anything goes wrong,
// it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Path {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	path := NewPath()
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseInt(coords[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseInt(coords[1], 10, 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		path.Append(Pt(x, y))
	}
	return path
}

// Ad hoc fixtures

func UnitSquare() *Path {
	return NewPath(Pt(1, 2), Pt(2, 2), Pt(2, 3), Pt(1, 3))
}

// Axis aligned rectangle, counterclockwise with y up
func Rectangle(x, y, w, h int64) *Path {
	return NewPath(Pt(x, y), Pt(x+w, y), Pt(x+w, y+h), Pt(x, y+h))
}
