package geom

// Signed area by the trapezoid formula. Each vertex pair, including the
// closing pair last -> first, contributes (y[i+1] + y[i]) * (x[i] - x[i+1]).
//
// Paths with fewer than three vertices have an area of exactly zero. The sign
// follows the winding and is never normalized; take math.Abs for the unsigned
// area. Each term is computed in int64, so coordinates large enough to
// overflow a term will wrap.
func (path *Path) Area() float64 {
	n := len(path.vertices)
	if n < 3 {
		return 0
	}

	var area float64
	for i := 0; i < n; i++ {
		current := path.vertices[i]
		next := path.vertices[CircularIndex(i+1, n)]
		area += float64((next.Y + current.Y) * (current.X - next.X))
	}
	return area * 0.5
}
