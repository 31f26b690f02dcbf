// Package pathio reads paths from plain text and from SVG documents.
package pathio

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/osuushi/pathgeom/geom"
	"github.com/pkg/errors"
)

// Read paths from newline separated points in the form "x y" (a comma works
// too). Each path is separated by a blank line, and anything after a '#' is a
// comment. Coordinates must be integers.
func ReadPaths(in io.Reader) (paths []*geom.Path, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			paths = nil
			err = recoveredErr
		}
	}()

	scanner := bufio.NewScanner(in)
	path := geom.NewPath()
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		// If it's empty, and we collected any points, this is the end of the path
		if strings.TrimSpace(line) == "" {
			if path.Len() > 0 {
				paths = append(paths, path)
				path = geom.NewPath()
			}
			continue
		}

		path.Append(mustParsePoint(line, lineNumber))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading paths")
	}

	// Handle trailing path if any
	if path.Len() > 0 {
		paths = append(paths, path)
	}
	return paths, nil
}

// Parse a single "x y" or "x,y" point
func ParsePoint(s string) (p geom.Point, err error) {
	defer func() {
		recoveredErr := HandleParsePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return mustParsePoint(s, 0), nil
}

func mustParsePoint(s string, line int) geom.Point {
	parts := splitCoordinates(s)
	if len(parts) != 2 {
		fatalf(line, "expected 2 coordinates, got %d in %q", len(parts), s)
	}
	return geom.Pt(mustParseCoordinate(parts[0], line), mustParseCoordinate(parts[1], line))
}

func mustParseCoordinate(s string, line int) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fatalf(line, "invalid coordinate %q: %v", s, err.(*strconv.NumError).Err)
	}
	return v
}

func splitCoordinates(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
