package geom

// Points are plain values. A Path copies every point it is given, so callers
// are free to reuse or modify their own Point variables afterwards.
type Point struct {
	X int64
	Y int64
}

// A closed polygon. There is an implicit edge from the last vertex back to the
// first, and the order of the vertices defines the winding.
type Path struct {
	vertices []Point
}

// Inclusive axis aligned bounds
type Box struct {
	Min, Max Point
}

// How the crossing x coordinate is computed during the ray casting test.
type DivisionMode int

const (
	// Integer division truncating toward zero. This gives the same results as
	// the integer reference algorithm, including its off-by-one crossings.
	TruncatingDivision DivisionMode = iota
	// Float division. Geometrically correct, but it can classify points
	// differently from TruncatingDivision when the crossing is fractional.
	RealDivision
)

func (m DivisionMode) String() string {
	switch m {
	case TruncatingDivision:
		return "truncate"
	case RealDivision:
		return "real"
	}
	return "unknown"
}
