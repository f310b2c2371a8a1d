// Package canvas provides a fixed size immediate-mode raster surface with
// stroke, compositing and clear primitives.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/example/sketchpad/internal/sketch"
	"golang.org/x/image/vector"
)

const (
	DefaultWidth  = 500
	DefaultHeight = 500
	// MaxSide is the largest supported width or height.
	MaxSide = 4096
)

// Canvas is a raster buffer with per-operation paint attributes. A transparent
// pixel is blank.
type Canvas struct {
	img  *image.RGBA
	mask *image.Alpha
	z    *vector.Rasterizer

	lineWidth float64
	lineCap   sketch.LineCap
	op        sketch.CompositeOp
	col       color.Color

	subpaths [][]sketch.Point
}

var _ sketch.Surface = (*Canvas)(nil)

// New creates a blank canvas of the given size. Non-positive dimensions fall
// back to the defaults and larger ones are capped at MaxSide.
func New(width, height int) *Canvas {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	width, height = min(width, MaxSide), min(height, MaxSide)
	r := image.Rect(0, 0, width, height)
	return &Canvas{
		img:       image.NewRGBA(r),
		mask:      image.NewAlpha(r),
		z:         vector.NewRasterizer(width, height),
		lineWidth: 1,
		lineCap:   sketch.CapButt,
		op:        sketch.CompositeSourceOver,
		col:       color.Black,
	}
}

// Image returns the backing raster. Callers must not retain it across
// drawing calls if they need a stable snapshot.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	c.lineWidth = w
}

func (c *Canvas) SetLineCap(lc sketch.LineCap)         { c.lineCap = lc }
func (c *Canvas) SetCompositeOp(op sketch.CompositeOp) { c.op = op }

func (c *Canvas) SetStrokeColor(col color.Color) {
	if col == nil {
		return
	}
	c.col = col
}

// LineWidth returns the current line width.
func (c *Canvas) LineWidth() float64 { return c.lineWidth }

// CompositeOp returns the current compositing rule.
func (c *Canvas) CompositeOp() sketch.CompositeOp { return c.op }

// BeginPath discards the current path.
func (c *Canvas) BeginPath() { c.subpaths = c.subpaths[:0] }

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.subpaths = append(c.subpaths, []sketch.Point{sketch.Pt(x, y)})
}

// LineTo adds a straight segment to the current subpath. Without a current
// subpath it behaves like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.subpaths) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.subpaths) - 1
	c.subpaths[last] = append(c.subpaths[last], sketch.Pt(x, y))
}

// Stroke rasterizes every segment of the current path with the current paint
// attributes. The path is kept so it can be stroked again.
func (c *Canvas) Stroke() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	dirty := image.Rectangle{}
	for _, sp := range c.subpaths {
		for i := 1; i < len(sp); i++ {
			r := addSegment(c.z, sp[i-1], sp[i], c.lineWidth/2, c.lineCap)
			dirty = dirty.Union(r)
		}
	}
	dirty = dirty.Intersect(b)
	if dirty.Empty() {
		return
	}
	switch c.op {
	case sketch.CompositeDestinationOut:
		c.z.DrawOp = draw.Src
		c.z.Draw(c.mask, b, image.Opaque, image.Point{})
		destinationOut(c.img, c.mask, dirty)
	default:
		c.z.DrawOp = draw.Over
		c.z.Draw(c.img, b, image.NewUniform(c.col), image.Point{})
	}
}

// ClearRect makes every pixel inside the rectangle transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.Transparent, image.Point{}, draw.Src)
}

// Blank reports whether every pixel is fully transparent.
func (c *Canvas) Blank() bool {
	for i := 3; i < len(c.img.Pix); i += 4 {
		if c.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// Coverage returns the number of pixels with non-zero alpha.
func (c *Canvas) Coverage() int {
	n := 0
	for i := 3; i < len(c.img.Pix); i += 4 {
		if c.img.Pix[i] != 0 {
			n++
		}
	}
	return n
}
