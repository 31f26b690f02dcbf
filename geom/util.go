package geom

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Grow the box to include p
func (b Box) extend(p Point) Box {
	b.Min.X = min64(b.Min.X, p.X)
	b.Min.Y = min64(b.Min.Y, p.Y)
	b.Max.X = max64(b.Max.X, p.X)
	b.Max.Y = max64(b.Max.Y, p.Y)
	return b
}

// Is the point inside or on the edge of the box?
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Box) Width() int64 {
	return b.Max.X - b.Min.X
}

func (b Box) Height() int64 {
	return b.Max.Y - b.Min.Y
}
