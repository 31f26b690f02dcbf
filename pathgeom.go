// Integer 2D geometry for Go.
//
// This package works with points and closed polygonal paths whose coordinates
// are int64. It computes the signed area of a path and tests whether a point
// lies inside it.
//
// Everything here is synchronous and allocation-light. A Path must not be
// appended to while it is being read from another goroutine; reads may run
// concurrently with each other.
package pathgeom

import "github.com/osuushi/pathgeom/geom"

type Point = geom.Point
type Path = geom.Path
type DivisionMode = geom.DivisionMode

const (
	TruncatingDivision = geom.TruncatingDivision
	RealDivision       = geom.RealDivision
)

func Pt(x, y int64) Point {
	return geom.Pt(x, y)
}

// Component-wise a + b. Overflow wraps.
func Add(a, b Point) Point {
	return a.Add(b)
}

// Component-wise a - b. Overflow wraps.
func Sub(a, b Point) Point {
	return a.Sub(b)
}

func NewPath() *Path {
	return geom.NewPath()
}

// Append p as the new last vertex of path.
func AppendPointToPath(p Point, path *Path) {
	path.Append(p)
}

// Signed area of the polygon. Zero for fewer than three vertices; the sign
// depends on the winding.
func GetArea(path *Path) float64 {
	return path.Area()
}

// Is q inside the polygon by the even-odd rule? Always false for fewer than
// three vertices.
//
// The crossing test uses integer division truncating toward zero, which can
// misplace a crossing by up to one unit. Use Path.ContainsPointWithMode with
// RealDivision for exact crossings.
func IsPointInPolygon(q Point, path *Path) bool {
	return path.ContainsPoint(q)
}
