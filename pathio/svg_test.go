package pathio

import (
	"os"
	"strings"
	"testing"

	"github.com/osuushi/pathgeom/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVG(t *testing.T) {
	f, err := os.Open("testdata/shapes.svg")
	require.NoError(t, err)
	defer f.Close()

	paths, err := ReadSVG(f)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	// Polygons come first, then polylines
	assert.Equal(t, 2.0, paths[0].Area())
	assert.Equal(t, -2.0, paths[1].Area())
	assert.Equal(t, []geom.Point{geom.Pt(1, 2), geom.Pt(2, 2), geom.Pt(2, 3), geom.Pt(1, 3)}, paths[2].Vertices())
	assert.Equal(t, 1.0, paths[2].Area())
}

func TestReadSVGErrors(t *testing.T) {
	t.Run("fractional coordinate", func(t *testing.T) {
		_, err := ReadSVG(strings.NewReader(`<svg><polygon points="0,0 1.5,0 0,1"/></svg>`))
		assert.EqualError(t, err, "invalid coordinate \"1.5\": invalid syntax")
	})

	t.Run("odd coordinates", func(t *testing.T) {
		_, err := ReadSVG(strings.NewReader(`<svg><polyline points="0,0 1,0 0"/></svg>`))
		assert.EqualError(t, err, "odd number of coordinates in <polyline> points \"0,0 1,0 0\"")
	})
}
