package geom

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// An empty path. The zero value of Path is also ready to use.
func NewPath(points ...Point) *Path {
	path := &Path{}
	for _, p := range points {
		path.Append(p)
	}
	return path
}

// Add a new last vertex. Not safe to call while other goroutines are reading
// the same path.
func (path *Path) Append(p Point) {
	path.vertices = append(path.vertices, p)
}

func (path *Path) Len() int {
	return len(path.vertices)
}

// Copy of the vertex sequence
func (path *Path) Vertices() []Point {
	result := make([]Point, len(path.vertices))
	copy(result, path.vertices)
	return result
}

// Vertex at i, treating the path as circular. Panics on an empty path.
func (path *Path) At(i int) Point {
	return path.vertices[CircularIndex(i, len(path.vertices))]
}

// Bounding box of all the vertices. The second return value is false if the
// path has no vertices.
func (path *Path) Bounds() (Box, bool) {
	if len(path.vertices) == 0 {
		return Box{}, false
	}
	box := Box{Min: path.vertices[0], Max: path.vertices[0]}
	for _, p := range path.vertices[1:] {
		box = box.extend(p)
	}
	return box, true
}

// New path with the vertices in the opposite order, which flips the sign of
// the area.
func (path *Path) Reverse() *Path {
	newPath := &Path{}
	for i := len(path.vertices) - 1; i >= 0; i-- {
		newPath.Append(path.vertices[i])
	}
	return newPath
}

// New path starting at vertex k, with the same winding.
func (path *Path) Rotate(k int) *Path {
	newPath := &Path{}
	for i := range path.vertices {
		newPath.Append(path.At(i + k))
	}
	return newPath
}

func (path *Path) String() string {
	parts := make([]string, len(path.vertices))
	for i, p := range path.vertices {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Path [%s]", strings.Join(parts, " "))
}

// String colored by orientation: green for positive area, red for negative,
// cyan for degenerate paths.
func (path *Path) DbgString() string {
	s := path.String()
	area := path.Area()
	switch {
	case area > 0:
		return aurora.Green(s).String()
	case area < 0:
		return aurora.Red(s).String()
	}
	return aurora.Cyan(s).String()
}
