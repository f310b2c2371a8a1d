// Package render draws the decorations around the drawing surface.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by a frame.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a soft shadow that suits a card on a light
// background.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  8,
		Offset:  image.Pt(0, 4),
		Opacity: 0.25,
	}
}

// FrameOptions configures DrawFrame.
type FrameOptions struct {
	Shadow      ShadowOptions
	Background  color.Color
	Border      color.Color
	BorderWidth int
}

// Outset reports how far the frame may paint outside its rectangle.
func (o FrameOptions) Outset() int {
	n := max(o.BorderWidth, 0)
	if o.Shadow.Opacity > 0 {
		s := max(o.Shadow.Radius, 0) + max(abs(o.Shadow.Offset.X), abs(o.Shadow.Offset.Y))
		n = max(n, s)
	}
	return n
}

// DrawFrame paints the shadow, fill and border of a card occupying r. The
// border is drawn outside r so content placed in r is not covered.
func DrawFrame(dst draw.Image, r image.Rectangle, opts FrameOptions) {
	if r.Empty() {
		return
	}
	drawShadow(dst, r, opts.Shadow)
	if opts.Background != nil {
		draw.Draw(dst, r, image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if opts.Border != nil && opts.BorderWidth > 0 {
		drawBorder(dst, r, opts.BorderWidth, opts.Border)
	}
}

func drawShadow(dst draw.Image, r image.Rectangle, opts ShadowOptions) {
	if opts.Opacity <= 0 {
		return
	}
	opacity := min(opts.Opacity, 1)
	radius := max(opts.Radius, 0)

	padded := r.Inset(-radius)
	mask := image.NewGray(padded.Sub(padded.Min))
	inner := r.Sub(padded.Min)
	draw.Draw(mask, inner, image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
	blurred := blurGray(mask, radius)

	alpha := uint8(opacity*255 + 0.5)
	if alpha == 0 {
		return
	}
	target := padded.Add(opts.Offset)
	draw.DrawMask(dst, target, image.NewUniform(color.RGBA{0, 0, 0, alpha}), image.Point{}, blurred, image.Point{}, draw.Over)
}

func drawBorder(dst draw.Image, r image.Rectangle, width int, col color.Color) {
	src := image.NewUniform(col)
	outer := r.Inset(-width)
	for _, side := range []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, r.Min.Y),
		image.Rect(outer.Min.X, r.Max.Y, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, r.Min.Y, r.Min.X, r.Max.Y),
		image.Rect(r.Max.X, r.Min.Y, outer.Max.X, r.Max.Y),
	} {
		draw.Draw(dst, side, src, image.Point{}, draw.Src)
	}
}

// Composite draws the surface image onto dst with its top-left corner at at.
// Transparent surface pixels show the frame background.
func Composite(dst draw.Image, at image.Point, surface image.Image) {
	b := surface.Bounds()
	draw.Draw(dst, b.Sub(b.Min).Add(at), surface, b.Min, draw.Over)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
