package geom

// Point in polygon with the even-odd rule, using truncating integer division
// for the crossing test. See ContainsPointWithMode.
func (path *Path) ContainsPoint(q Point) bool {
	return path.ContainsPointWithMode(q, TruncatingDivision)
}

// Point in polygon with the even-odd rule.
//
// Paths with fewer than three vertices contain nothing. Points outside the
// bounding box are rejected before any edges are examined. Otherwise a
// horizontal ray is cast from q toward +x, and every edge it crosses toggles
// the result.
//
// Points lying exactly on an edge may be classified either way. This is the
// usual ray casting ambiguity and is left alone.
func (path *Path) ContainsPointWithMode(q Point, mode DivisionMode) bool {
	n := len(path.vertices)
	if n < 3 {
		return false
	}

	box, _ := path.Bounds()
	if !box.Contains(q) {
		return false
	}

	inside := false
	// Pair each vertex with its predecessor, starting with the closing edge
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := path.vertices[i], path.vertices[j]
		if (vi.Y > q.Y) == (vj.Y > q.Y) {
			continue
		}
		if crossesRightOf(q, vi, vj, mode) {
			inside = !inside
		}
	}
	return inside
}

// Does the edge from vi to vj cross the horizontal through q to the right of
// q? The caller guarantees that the edge straddles q.Y, so the denominator is
// never zero.
func crossesRightOf(q, vi, vj Point, mode DivisionMode) bool {
	if mode == RealDivision {
		crossX := float64(vj.X-vi.X)*float64(q.Y-vi.Y)/float64(vj.Y-vi.Y) + float64(vi.X)
		return float64(q.X) < crossX
	}
	crossX := (vj.X-vi.X)*(q.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
	return q.X < crossX
}

// Number of edges crossed by the ray from q. The parity of this agrees with
// ContainsPointWithMode for points inside the bounding box.
func (path *Path) CrossingCount(q Point, mode DivisionMode) int {
	n := len(path.vertices)
	count := 0
	for i := 0; i < n; i++ {
		vi := path.vertices[i]
		vj := path.At(i - 1)
		if (vi.Y > q.Y) != (vj.Y > q.Y) && crossesRightOf(q, vi, vj, mode) {
			count++
		}
	}
	return count
}
