package geom

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Padding around the shapes, in pixels
const DefaultDrawPadding = 20

// Largest width or height of the drawing, not counting padding. The scale is
// reduced to fit when the paths are too big for it.
const MaxDrawSize = 4096

type RenderOptions struct {
	// Pixels per coordinate unit
	Scale float64
	// Zero means DefaultDrawPadding, negative means no padding
	Padding int
	// Mode used to classify the query points
	Mode DivisionMode
}

func (opts RenderOptions) withDefaults() RenderOptions {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Padding == 0 {
		opts.Padding = DefaultDrawPadding
	} else if opts.Padding < 0 {
		opts.Padding = 0
	}
	return opts
}

// Draw the paths with the even-odd fill rule, and mark each query point green
// if it is inside any of the paths and red otherwise.
func Render(paths []*Path, queries []Point, opts RenderOptions) image.Image {
	opts = opts.withDefaults()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	include := func(p Point) {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}
	for _, path := range paths {
		for _, p := range path.vertices {
			include(p)
		}
	}
	for _, q := range queries {
		include(q)
	}
	if math.IsInf(minX, 1) { // Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	if extent := math.Max(maxX-minX, maxY-minY); opts.Scale*extent > MaxDrawSize {
		opts.Scale = MaxDrawSize / extent
	}

	// Set up the context
	padding := float64(opts.Padding)
	width := int(opts.Scale*(maxX-minX)) + opts.Padding*2
	height := int(opts.Scale*(maxY-minY)) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(padding, padding)
	c.Scale(opts.Scale, opts.Scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, path := range paths {
		if path.Len() == 0 {
			continue
		}
		first := path.vertices[0]
		c.MoveTo(float64(first.X), float64(first.Y))
		for _, p := range path.vertices[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Query markers keep a fixed pixel size regardless of scale
	radius := 3 / opts.Scale
	for _, q := range queries {
		if anyContains(paths, q, opts.Mode) {
			c.SetRGB(0, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(float64(q.X), float64(q.Y), radius)
		c.Fill()
	}

	return c.Image()
}

func anyContains(paths []*Path, q Point, mode DivisionMode) bool {
	for _, path := range paths {
		if path.ContainsPointWithMode(q, mode) {
			return true
		}
	}
	return false
}

func SavePNG(filename string, img image.Image) error {
	return gg.SavePNG(filename, img)
}
