package geom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPointDegenerate(t *testing.T) {
	path := NewPath()
	queries := []Point{Pt(0, 0), Pt(1, 2), Pt(-5, 5)}
	for i := 0; i < 3; i++ {
		for _, q := range queries {
			assert.False(t, path.ContainsPoint(q), "%d vertices, query %v", path.Len(), q)
			assert.False(t, path.ContainsPointWithMode(q, RealDivision), "%d vertices, query %v", path.Len(), q)
		}
		path.Append(Pt(int64(i), int64(2*i)))
	}
}

func TestContainsPointOutsideBoundingBox(t *testing.T) {
	square := UnitSquare()
	assert.False(t, square.ContainsPoint(Pt(0, 2)))
	assert.False(t, square.ContainsPoint(Pt(3, 2)))
	assert.False(t, square.ContainsPoint(Pt(1, 1)))
	assert.False(t, square.ContainsPoint(Pt(1, 4)))
}

func TestContainsPointAccumulating(t *testing.T) {
	vertices := []Point{Pt(1, 2), Pt(2, 2), Pt(2, 3), Pt(1, 3), Pt(-2, 4), Pt(0, -2)}
	query := Pt(0, 2)

	path := NewPath()
	for i, v := range vertices {
		path.Append(v)
		expected := i == len(vertices)-1
		assert.Equal(t, expected, path.ContainsPoint(query), "after %d vertices", path.Len())
	}
}

func TestContainsPointFixtures(t *testing.T) {
	cases := []struct {
		fixture string
		query   Point
		inside  bool
	}{
		{"comb", Pt(1, 5), true},
		{"comb", Pt(3, 5), false},
		{"comb", Pt(5, 1), true},
		{"comb", Pt(9, 9), true},
		{"comb", Pt(3, 1), true},
		{"comb", Pt(7, 7), false},
		{"comb", Pt(11, 5), false},
		{"pentagon", Pt(0, 0), true},
		{"pentagon", Pt(1, 1), false},
		{"pentagon", Pt(-1, 3), true},
		{"pentagon", Pt(2, 4), false},
		{"pentagon", Pt(-2, -2), false},
	}
	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%s %v", c.fixture, c.query), func(t *testing.T) {
			path := LoadFixture(c.fixture)
			assert.Equal(t, c.inside, path.ContainsPoint(c.query))
			// None of these have fractional crossings that matter
			assert.Equal(t, c.inside, path.ContainsPointWithMode(c.query, RealDivision))
		})
	}
}

// Boundary classification is whatever the ray casting produces. These pin the
// current behavior so that it does not drift.
func TestContainsPointBoundary(t *testing.T) {
	comb := LoadFixture("comb")
	assert.True(t, comb.ContainsPoint(Pt(0, 5)))   // left edge
	assert.False(t, comb.ContainsPoint(Pt(10, 5))) // right edge
	assert.True(t, comb.ContainsPoint(Pt(5, 0)))   // bottom edge
	assert.False(t, comb.ContainsPoint(Pt(5, 10))) // top, in a gap
}

func TestDivisionModes(t *testing.T) {
	// The crossing of the edge (0,0)-(1,3) at y=1 is x=1/3, which truncates to 0.
	sliver := LoadFixture("sliver")

	cases := []struct {
		query            Point
		truncated, exact bool
	}{
		{Pt(0, 1), true, false},
		{Pt(2, 1), false, true},
		{Pt(1, 2), false, true},
		{Pt(1, 1), true, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.truncated, sliver.ContainsPointWithMode(c.query, TruncatingDivision), "truncating %v", c.query)
		assert.Equal(t, c.exact, sliver.ContainsPointWithMode(c.query, RealDivision), "real %v", c.query)
		assert.Equal(t, c.truncated, sliver.ContainsPoint(c.query), "default %v", c.query)
	}
}

func TestCrossingCountParity(t *testing.T) {
	comb := LoadFixture("comb")
	box, ok := comb.Bounds()
	assert.True(t, ok)
	for x := box.Min.X; x <= box.Max.X; x++ {
		for y := box.Min.Y; y <= box.Max.Y; y++ {
			q := Pt(x, y)
			for _, mode := range []DivisionMode{TruncatingDivision, RealDivision} {
				assert.Equal(t, comb.CrossingCount(q, mode)%2 == 1, comb.ContainsPointWithMode(q, mode), "%v %v", q, mode)
			}
		}
	}
}

func TestDivisionModeString(t *testing.T) {
	assert.Equal(t, "truncate", TruncatingDivision.String())
	assert.Equal(t, "real", RealDivision.String())
	assert.Equal(t, "unknown", DivisionMode(7).String())
}
