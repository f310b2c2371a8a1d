package canvas

import (
	"image"
	"math"

	"github.com/example/sketchpad/internal/sketch"
	"golang.org/x/image/vector"
)

// arcSteps returns how many segments approximate a half circle of radius r.
func arcSteps(r float64) int {
	n := int(math.Ceil(r)) * 2
	if n < 8 {
		n = 8
	}
	if n > 64 {
		n = 64
	}
	return n
}

// addSegment adds the outline of a stroked segment p0-p1 with half width r to
// z and returns the pixel bounds it may touch. All outlines are emitted with
// the same winding so overlapping segments do not cancel out.
func addSegment(z *vector.Rasterizer, p0, p1 sketch.Point, r float64, lc sketch.LineCap) image.Rectangle {
	if r <= 0 {
		return image.Rectangle{}
	}
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		if lc == sketch.CapButt {
			return image.Rectangle{}
		}
		dx, dy = 1, 0
	} else {
		dx, dy = dx/length, dy/length
	}
	nx, ny := -dy*r, dx*r

	switch lc {
	case sketch.CapRound:
		base := math.Atan2(ny, nx)
		steps := arcSteps(r)
		z.MoveTo(float32(p0.X+nx), float32(p0.Y+ny))
		z.LineTo(float32(p1.X+nx), float32(p1.Y+ny))
		for i := 1; i <= steps; i++ {
			a := base - math.Pi*float64(i)/float64(steps)
			z.LineTo(float32(p1.X+r*math.Cos(a)), float32(p1.Y+r*math.Sin(a)))
		}
		z.LineTo(float32(p0.X-nx), float32(p0.Y-ny))
		for i := 1; i < steps; i++ {
			a := base - math.Pi - math.Pi*float64(i)/float64(steps)
			z.LineTo(float32(p0.X+r*math.Cos(a)), float32(p0.Y+r*math.Sin(a)))
		}
		z.ClosePath()
	default:
		a, b := p0, p1
		if lc == sketch.CapSquare {
			a = sketch.Pt(p0.X-dx*r, p0.Y-dy*r)
			b = sketch.Pt(p1.X+dx*r, p1.Y+dy*r)
		}
		z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		z.ClosePath()
	}

	pad := r*math.Sqrt2 + 1
	minX := math.Min(p0.X, p1.X) - pad
	minY := math.Min(p0.Y, p1.Y) - pad
	maxX := math.Max(p0.X, p1.X) + pad
	maxY := math.Max(p0.Y, p1.Y) + pad
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}
