package geom

import "fmt"

// Convenience constructor for Point
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Component-wise sum. Overflow wraps, as with any int64 arithmetic in Go.
func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y
	return p
}

// Component-wise difference. Overflow wraps, so (a + b) - b == a holds for
// every pair of points.
func (p Point) Sub(other Point) Point {
	p.X -= other.X
	p.Y -= other.Y
	return p
}

func (p Point) Equal(other Point) bool {
	return p == other
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
